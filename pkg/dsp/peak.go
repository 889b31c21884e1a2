package dsp

import (
	"math/cmplx"
	"sort"
)

// Peak is one spectral line: the center frequency of a bin and its magnitude.
type Peak struct {
	Freq      float64
	Magnitude float64
}

// peakFloor is the minimum magnitude of a reported peak relative to the
// strongest one. Leakage sidelobes of a rectangular window stay below 0.22
// of their tone's main lobe, while a tone's main lobe never samples below
// 0.63 of full response, so the floor separates real tones from leakage.
const peakFloor = 0.4

// TopPeaks returns up to k spectral peaks, strongest first, drawn from bins
// 1..N/2-1 only: DC and the mirrored half above the Nyquist bin carry no
// information for a real input. Bin i maps to frequency i*sampleRate/N.
// A peak is a bin strictly louder than both neighbors, so one tone yields
// one candidate per lobe rather than a run of adjacent bins; candidates
// below peakFloor of the strongest are leakage or noise and are dropped.
// Ties are broken by the lower bin.
func TopPeaks(spectrum []complex128, sampleRate float64, k int) []Peak {
	n := len(spectrum)
	if n/2 <= 1 {
		return nil
	}

	mag := make([]float64, n/2+1)
	for i := range mag {
		mag[i] = cmplx.Abs(spectrum[i])
	}

	peaks := make([]Peak, 0, n/4)
	for i := 1; i < n/2; i++ {
		if mag[i] > mag[i-1] && mag[i] > mag[i+1] {
			peaks = append(peaks, Peak{
				Freq:      float64(i) * sampleRate / float64(n),
				Magnitude: mag[i],
			})
		}
	}

	sort.SliceStable(peaks, func(a, b int) bool {
		return peaks[a].Magnitude > peaks[b].Magnitude
	})

	for len(peaks) > 0 && peaks[len(peaks)-1].Magnitude < peakFloor*peaks[0].Magnitude {
		peaks = peaks[:len(peaks)-1]
	}
	if k < len(peaks) {
		peaks = peaks[:k]
	}
	return peaks
}
