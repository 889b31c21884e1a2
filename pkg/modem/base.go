package modem

// ByteModem is a modulator/demodulator pair working on 16-bit PCM sample
// streams.
type ByteModem interface {
	Modulate(msg []byte) ([]int16, error)
	Demodulate(samples []int16) ([]byte, error)
}

// FSKModem pairs a Modulator and a Demodulator over the same band table and
// timing so a message survives a modulate/demodulate round trip unchanged.
type FSKModem struct {
	Modulator
	Demodulator
}

var _ ByteModem = FSKModem{}

// NewFSKModem builds a matched modulator/demodulator pair. level is the
// transmit level in dBFS.
func NewFSKModem(bands BandTable, symbolRate, sampleRate, level float64) FSKModem {
	return FSKModem{
		Modulator: Modulator{
			Bands:      bands,
			SymbolRate: symbolRate,
			SampleRate: sampleRate,
			Level:      level,
		},
		Demodulator: Demodulator{
			Bands:      bands,
			SymbolRate: symbolRate,
			SampleRate: sampleRate,
		},
	}
}
