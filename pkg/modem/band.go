package modem

import (
	"fmt"
	"math"
)

// A Band assigns one bit position a pair of tones: FreqZero is transmitted
// when the bit is clear, FreqOne when it is set. Bit 0 is the least
// significant bit of a byte and owns the lowest band.
type Band struct {
	Bit      int
	FreqZero float64
	FreqOne  float64
}

// BandTable is the modulation alphabet: one Band per bit position, ordered by
// ascending bit position and frequency. It is fixed for the lifetime of the
// process.
type BandTable []Band

// DefaultBands carries one byte per symbol on 8 simultaneous tones.
var DefaultBands = BandTable{
	{Bit: 0, FreqZero: 300, FreqOne: 500},
	{Bit: 1, FreqZero: 700, FreqOne: 900},
	{Bit: 2, FreqZero: 1100, FreqOne: 1300},
	{Bit: 3, FreqZero: 1500, FreqOne: 1700},
	{Bit: 4, FreqZero: 1900, FreqOne: 2100},
	{Bit: 5, FreqZero: 2300, FreqOne: 2500},
	{Bit: 6, FreqZero: 2700, FreqOne: 2900},
	{Bit: 7, FreqZero: 3100, FreqOne: 3300},
}

// SingleToneBands carries one bit per symbol on a single dominant tone: a
// peak near 950 Hz reads as 0, a peak near 1950 Hz as 1.
var SingleToneBands = BandTable{
	{Bit: 0, FreqZero: 950, FreqOne: 1950},
}

// Tolerance is the maximum distance in Hz between a detected peak and a band
// tone for the peak to claim that tone. It must stay below half the minimum
// tone spacing of the band table, otherwise one peak could claim two bands.
const Tolerance = 50.0

// Validate checks the invariants the peak matching step relies on. It is run
// once before any modulation or demodulation starts.
func (t BandTable) Validate(tolerance float64) error {
	if len(t) == 0 || len(t) > 8 {
		return fmt.Errorf("band table must hold 1 to 8 bands, got %d", len(t))
	}
	if tolerance <= 0 {
		return fmt.Errorf("tolerance must be positive, got %v", tolerance)
	}

	minGap := math.Inf(1)
	for i, b := range t {
		if b.Bit != i {
			return fmt.Errorf("band %d carries bit position %d, want %d", i, b.Bit, i)
		}
		if b.FreqZero <= 0 || b.FreqOne <= b.FreqZero {
			return fmt.Errorf("band %d tones (%v, %v) are not ascending positive frequencies", i, b.FreqZero, b.FreqOne)
		}
		minGap = math.Min(minGap, b.FreqOne-b.FreqZero)
		if i > 0 {
			gap := b.FreqZero - t[i-1].FreqOne
			if gap <= 0 {
				return fmt.Errorf("bands %d and %d overlap", i-1, i)
			}
			minGap = math.Min(minGap, gap)
		}
	}

	if 2*tolerance >= minGap {
		return fmt.Errorf("tolerance %v Hz is not below half the minimum tone spacing %v Hz", tolerance, minGap)
	}
	return nil
}
