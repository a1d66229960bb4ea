// Command specgram frames audio samples and prints their spectra.
//
// Usage:
//
//	specgram spectrum [flags] [file]
//	specgram roundtrip [flags] [file]
//	specgram windows
//
// Examples:
//
//	specgram spectrum --window hann --nfft 256 speech.txt
//	specgram spectrum --kind power -o json < speech.txt
//	specgram roundtrip --config front-end.yaml speech.txt
package main

import (
	"fmt"
	"os"

	"github.com/sri-dsa/Speech-Recognition/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
