package modem

import (
	"fmt"
	"math"
)

const fullScale = 0x7fff

// Modulator synthesizes the transmit waveform. Each symbol period carries
// len(Bands) bits at once: every band contributes one sinusoid at the tone
// selected by its bit, the contributions are summed and divided by the band
// count so the superposition cannot clip.
type Modulator struct {
	Bands      BandTable
	SymbolRate float64 // symbols per second
	SampleRate float64 // samples per second
	Level      float64 // output level in dBFS, 0 = full scale
}

// SamplesPerSymbol is the fixed sample block length of one symbol period.
func (m Modulator) SamplesPerSymbol() int {
	return int(math.Round(m.SampleRate / m.SymbolRate))
}

// Amplitude converts the configured dBFS level to a full-scale ratio.
func (m Modulator) Amplitude() float64 {
	return math.Pow(10, m.Level/20)
}

// ModulateSymbol synthesizes the sample block for one symbol. bits is indexed
// by band bit position.
func (m Modulator) ModulateSymbol(bits BitSet8) []int16 {
	amplitude := m.Amplitude()
	block := make([]int16, m.SamplesPerSymbol())
	for i := range block {
		t := float64(i) / m.SampleRate
		sum := 0.0
		for _, band := range m.Bands {
			freq := band.FreqZero
			if bits.IsSet(band.Bit) {
				freq = band.FreqOne
			}
			sum += math.Sin(2 * math.Pi * freq * t)
		}
		block[i] = int16(sum / float64(len(m.Bands)) * amplitude * fullScale)
	}
	return block
}

// Modulate frames msg into symbols and concatenates their sample blocks with
// no gap or guard interval. Bits are taken least significant first within
// each byte, so with the 8-band table every symbol carries exactly one byte
// and the lowest band follows the least significant bit.
func (m Modulator) Modulate(msg []byte) ([]int16, error) {
	if err := m.validate(msg); err != nil {
		return nil, err
	}

	bitsPerSymbol := len(m.Bands)
	symbolCount := (len(msg)*8 + bitsPerSymbol - 1) / bitsPerSymbol
	output := make([]int16, 0, symbolCount*m.SamplesPerSymbol())

	var bits BitSet8
	count := 0
	for _, b := range msg {
		for i := 0; i < 8; i++ {
			if b&(1<<i) != 0 {
				bits.Set(count)
			}
			count++
			if count == bitsPerSymbol {
				output = append(output, m.ModulateSymbol(bits)...)
				bits, count = 0, 0
			}
		}
	}
	if count > 0 {
		// trailing bits of a byte not filling a whole symbol go out padded
		// with zeros
		output = append(output, m.ModulateSymbol(bits)...)
	}
	return output, nil
}

func (m Modulator) validate(msg []byte) error {
	if len(msg) == 0 {
		return fmt.Errorf("empty message")
	}
	if m.SymbolRate <= 0 {
		return fmt.Errorf("symbol rate must be positive, got %v", m.SymbolRate)
	}
	if m.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %v", m.SampleRate)
	}
	return m.Bands.Validate(Tolerance)
}
