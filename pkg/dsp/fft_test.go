package dsp

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/mjibson/go-dsp/fft"
)

const (
	SAMPLE_RATE = 44100.0
	FFT_SIZE    = 4096
	TOLERANCE   = 1e-9
)

func TestFFTKnownValues(t *testing.T) {
	// FFT of [1, 1, 1, 1] is [4, 0, 0, 0]
	out := FFT([]complex128{1, 1, 1, 1})

	if cmplx.Abs(out[0]-4) > TOLERANCE {
		t.Errorf("FFT([1,1,1,1])[0] = %v, want 4", out[0])
	}
	for i := 1; i < 4; i++ {
		if cmplx.Abs(out[i]) > TOLERANCE {
			t.Errorf("FFT([1,1,1,1])[%d] = %v, want 0", i, out[i])
		}
	}
}

func TestFFTBaseCase(t *testing.T) {
	out := FFT([]complex128{42})
	if len(out) != 1 || out[0] != 42 {
		t.Errorf("FFT of a single sample should return it unchanged, got %v", out)
	}

	if len(FFT(nil)) != 0 {
		t.Errorf("FFT of an empty block should be empty")
	}
}

func TestFFTRealSinusoid(t *testing.T) {
	// A sinusoid at an integer bin m concentrates all energy in bin m and its
	// mirror bin N-m.
	const BIN = 200

	samples := make([]float64, FFT_SIZE)
	freq := BIN * SAMPLE_RATE / FFT_SIZE
	for i := range samples {
		samples[i] = math.Sin(2 * math.Pi * freq * float64(i) / SAMPLE_RATE)
	}

	spectrum := FFTReal(samples)

	want := FFT_SIZE / 2.0
	if got := cmplx.Abs(spectrum[BIN]); math.Abs(got-want) > 1e-6 {
		t.Errorf("magnitude at bin %d = %f, want %f", BIN, got, want)
	}
	if got := cmplx.Abs(spectrum[FFT_SIZE-BIN]); math.Abs(got-want) > 1e-6 {
		t.Errorf("magnitude at mirror bin %d = %f, want %f", FFT_SIZE-BIN, got, want)
	}
	for i := 1; i < FFT_SIZE/2; i++ {
		if i == BIN {
			continue
		}
		if got := cmplx.Abs(spectrum[i]); got > 1e-6 {
			t.Errorf("magnitude at bin %d = %g, want near zero", i, got)
		}
	}
}

func TestFFTMatchesReference(t *testing.T) {
	samples := make([]float64, 512)
	for i := range samples {
		samples[i] = math.Sin(2*math.Pi*440*float64(i)/SAMPLE_RATE) +
			0.5*math.Cos(2*math.Pi*1234.5*float64(i)/SAMPLE_RATE)
	}

	got := FFTReal(samples)
	want := fft.FFTReal(samples)

	for i := range got {
		if cmplx.Abs(got[i]-want[i]) > 1e-6 {
			t.Errorf("bin %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNextPow2(t *testing.T) {
	cases := [][2]int{{1, 1}, {2, 2}, {3, 4}, {1024, 1024}, {44100, 65536}}
	for _, c := range cases {
		if got := NextPow2(c[0]); got != c[1] {
			t.Errorf("NextPow2(%d) = %d, want %d", c[0], got, c[1])
		}
	}
}
