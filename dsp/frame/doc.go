// Package frame splits a signal into overlapping, windowed analysis frames
// and reconstructs a signal from frames by normalized overlap-add.
//
// Frame lengths and steps are given in samples. Fractional values are
// accepted and rounded to the nearest integer (ties to even), so callers can
// pass sampleRate*seconds directly:
//
//	frames, err := frame.Frame(x, 16000*0.025, 16000*0.010, window.Hamming{})
//	y, err := frame.Deframe(frames, len(x), 16000*0.025, 16000*0.010, window.Hamming{})
//
// Frames are returned as a gonum *mat.Dense with one frame per row. The
// signal is zero padded at the end so that the last frame is complete; a
// signal shorter than one frame still yields a single frame.
package frame
