package modem

import (
	"fmt"
	"math"

	"github.com/ishan211/audio-analyze/pkg/dsp"
)

// BitState is the outcome of matching one band against the detected peaks.
type BitState int

const (
	BitZero BitState = iota
	BitOne
	// BitUndetected means no peak fell within tolerance of either tone of
	// the band. The bit reads as zero downstream; the state is kept apart
	// for diagnostics.
	BitUndetected
)

func (s BitState) String() string {
	switch s {
	case BitZero:
		return "0"
	case BitOne:
		return "1"
	default:
		return "?"
	}
}

// DefaultMinBlockRatio is the fraction of a full symbol period a final block
// must hold to be decoded at all. Anything shorter is dropped so a biased
// partial symbol cannot enter the output.
const DefaultMinBlockRatio = 0.998

// Demodulator recovers bytes from a received sample stream by spectral
// analysis of fixed symbol periods. Decoding carries no state across symbols:
// every block is an independent pure function of the samples and the band
// table.
type Demodulator struct {
	Bands      BandTable
	SymbolRate float64
	SampleRate float64

	ToleranceHz   float64 // zero means the package default
	MinBlockRatio float64 // zero means DefaultMinBlockRatio
}

// SamplesPerSymbol is the fixed sample block length of one symbol period.
func (d Demodulator) SamplesPerSymbol() int {
	return int(math.Round(d.SampleRate / d.SymbolRate))
}

func (d Demodulator) tolerance() float64 {
	if d.ToleranceHz > 0 {
		return d.ToleranceHz
	}
	return Tolerance
}

func (d Demodulator) minBlockRatio() float64 {
	if d.MinBlockRatio > 0 {
		return d.MinBlockRatio
	}
	return DefaultMinBlockRatio
}

// DemodulateSymbol decodes one symbol period. The block is zero-padded to the
// transform length, transformed, and reduced to the len(Bands) strongest
// peaks. Each band then independently claims the closest peak lying strictly
// within tolerance of one of its tones; a band with no qualifying peak reads
// as zero and is reported BitUndetected.
func (d Demodulator) DemodulateSymbol(block []float64) (byte, []BitState) {
	padded := block
	if n := dsp.NextPow2(len(block)); n != len(block) {
		padded = make([]float64, n)
		copy(padded, block)
	}
	peaks := dsp.TopPeaks(dsp.FFTReal(padded), d.SampleRate, len(d.Bands))

	var bits BitSet8
	states := make([]BitState, len(d.Bands))
	for i, band := range d.Bands {
		states[i] = BitUndetected
		best := d.tolerance()
		for _, peak := range peaks {
			if dist := math.Abs(peak.Freq - band.FreqZero); dist < best {
				best = dist
				states[i] = BitZero
			}
			if dist := math.Abs(peak.Freq - band.FreqOne); dist < best {
				best = dist
				states[i] = BitOne
			}
		}
		if states[i] == BitOne {
			bits.Set(band.Bit)
		}
	}
	return bits.Byte(), states
}

// Demodulate slices the received stream into fixed symbol periods and
// concatenates the recovered bits in arrival order. Symbol boundaries are
// assumed aligned with the start of the stream. A final block holding less
// than MinBlockRatio of a full symbol is dropped silently.
func (d Demodulator) Demodulate(samples []int16) ([]byte, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}

	size := d.SamplesPerSymbol()
	minSamples := int(math.Ceil(d.minBlockRatio() * float64(size)))
	msg := make([]byte, 0, len(samples)/size+1)

	var current BitSet8
	count := 0
	for start := 0; start < len(samples); start += size {
		end := min(start+size, len(samples))
		if end-start < minSamples {
			debugLog("[Demodulation] dropping final block of %d samples, need %d\n", end-start, minSamples)
			break
		}

		block := Int16ToFloat64(samples[start:end])
		if len(block) < size {
			block = append(block, make([]float64, size-len(block))...)
		}

		symbol, states := d.DemodulateSymbol(block)
		debugLog("[Demodulation] block %d: %d samples -> %s\n", start/size, end-start, stateString(states))

		for i := range d.Bands {
			if symbol&(1<<i) != 0 {
				current.Set(count)
			}
			count++
			if count == 8 {
				msg = append(msg, current.Byte())
				current, count = 0, 0
			}
		}
	}
	return msg, nil
}

func (d Demodulator) validate() error {
	if d.SymbolRate <= 0 {
		return fmt.Errorf("symbol rate must be positive, got %v", d.SymbolRate)
	}
	if d.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %v", d.SampleRate)
	}
	if r := d.minBlockRatio(); r > 1 {
		return fmt.Errorf("minimum block ratio must not exceed 1, got %v", r)
	}
	return d.Bands.Validate(d.tolerance())
}

func stateString(states []BitState) string {
	out := make([]byte, len(states))
	for i, s := range states {
		// bit position len-1 first, matching how a binary string reads
		out[len(states)-1-i] = s.String()[0]
	}
	return string(out)
}
