package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// readSamples parses whitespace or comma separated numbers. Empty lines and
// lines starting with '#' are skipped.
func readSamples(r io.Reader) ([]float64, error) {
	var out []float64

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ';' || unicode.IsSpace(r)
		})
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid sample %q", line, f)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read samples: %w", err)
	}

	return out, nil
}

// openInput returns the named file, or stdin for "" and "-".
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "" || name == "-" {
		return io.NopCloser(stdin), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func loadSamples(args []string, stdin io.Reader) ([]float64, error) {
	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	in, err := openInput(name, stdin)
	if err != nil {
		return nil, err
	}
	defer in.Close()

	return readSamples(in)
}
