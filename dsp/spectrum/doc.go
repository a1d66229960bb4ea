// Package spectrum computes magnitude, power and log-power spectra of a
// frame matrix.
//
// Every row of the input is treated as one real-valued analysis frame. Rows
// are zero padded or truncated to the FFT size nfft and transformed with a
// real-input DFT; only the non-redundant half spectrum of nfft/2+1 bins is
// kept. Results are gonum matrices with one frame per row.
//
// The transform itself is delegated to github.com/MeKo-Christian/algo-fft,
// with gonum's dsp/fourier as the backend for sizes algo-fft cannot plan.
package spectrum
