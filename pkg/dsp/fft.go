package dsp

import (
	"math"
	"math/cmplx"
)

// FFT computes the discrete Fourier transform of data with the recursive
// radix-2 Cooley-Tukey algorithm: split into even and odd halves, transform
// both, combine with the twiddle factor exp(-2*pi*i*k/N). len(data) must be a
// power of two; callers pad with NextPow2 first.
func FFT(data []complex128) []complex128 {
	n := len(data)
	if n <= 1 {
		return data
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = data[i*2]
		odd[i] = data[i*2+1]
	}

	even = FFT(even)
	odd = FFT(odd)

	out := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		t := cmplx.Rect(1, -2*math.Pi*float64(k)/float64(n)) * odd[k]
		out[k] = even[k] + t
		out[k+n/2] = even[k] - t
	}
	return out
}

// FFTReal transforms a real sample block by widening it to complex values
// with zero imaginary part.
func FFTReal(samples []float64) []complex128 {
	data := make([]complex128, len(samples))
	for i, s := range samples {
		data[i] = complex(s, 0)
	}
	return FFT(data)
}

// NextPow2 returns the smallest power of two that is >= n.
func NextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
