package layers

import (
	"fmt"

	"github.com/ishan211/audio-analyze/pkg/device"
	"github.com/ishan211/audio-analyze/pkg/modem"
)

// PhysicalLayer couples a modulator/demodulator pair to an audio device.
// Outgoing messages are modulated once and drained into the device output
// callback; incoming samples are sliced into symbol periods and decoded on
// the fly, one byte at a time onto OutputChan.
type PhysicalLayer struct {
	Device device.Device

	Encoder Encoder
	Decoder Decoder
}

type Encoder struct {
	Modulator  modem.Modulator
	BufferSize int

	outputBuffer chan []int32
	current      []int32
}

type Decoder struct {
	Demodulator modem.Demodulator
	BufferSize  int

	// SquelchThreshold is the full-scale amplitude a capture buffer must
	// reach before symbol decoding locks on. Until then buffers count as
	// idle channel and are discarded whole, which keeps symbol boundaries
	// aligned with the start of the transmission.
	SquelchThreshold float64

	OutputChan chan byte

	locked bool
	window []float64
	bits   modem.BitSet8
	count  int
}

// DefaultSquelchThreshold separates idle channel noise from a transmission.
const DefaultSquelchThreshold = 0.05

func (p *PhysicalLayer) Open() {
	p.Encoder.outputBuffer = make(chan []int32, max(p.Encoder.BufferSize, 1))
	p.Decoder.OutputChan = make(chan byte, max(p.Decoder.BufferSize, 1))
	p.Decoder.locked = false
	p.Decoder.window = p.Decoder.window[:0]
	p.Decoder.bits, p.Decoder.count = 0, 0

	p.Device.Start(func(in, out []int32) {
		p.Decoder.read(in)
		p.Encoder.write(out)
	})
}

func (p *PhysicalLayer) Close() {
	p.Device.Stop()
}

// Send modulates data and queues the waveform for playback.
func (p *PhysicalLayer) Send(data []byte) error {
	return p.Encoder.send(data)
}

// Receive blocks until n decoded bytes have arrived.
func (p *PhysicalLayer) Receive(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = <-p.Decoder.OutputChan
	}
	return data
}

func (e *Encoder) send(data []byte) error {
	samples, err := e.Modulator.Modulate(data)
	if err != nil {
		return fmt.Errorf("cannot queue message: %v", err)
	}
	e.outputBuffer <- modem.Int16ToInt32(samples)
	return nil
}

// write drains the queued waveform into the device output buffer, padding
// with silence when nothing is pending.
func (e *Encoder) write(out []int32) {
	if e.current == nil {
		select {
		case e.current = <-e.outputBuffer:
		default:
		}
	}

	i := 0
	if e.current != nil {
		i = copy(out, e.current)
		e.current = e.current[i:]
		if len(e.current) == 0 {
			e.current = nil
		}
	}
	for ; i < len(out); i++ {
		out[i] = 0
	}
}

// read accumulates captured samples and decodes every completed symbol
// period. Decoded bits fill a byte least significant first, mirroring the
// encode side.
func (d *Decoder) read(in []int32) {
	if !d.locked {
		threshold := d.SquelchThreshold
		if threshold == 0 {
			threshold = DefaultSquelchThreshold
		}
		limit := int32(threshold * 0x7fffffff)
		for _, sample := range in {
			if sample > limit || sample < -limit {
				d.locked = true
				break
			}
		}
		if !d.locked {
			return
		}
	}

	for _, sample := range in {
		d.window = append(d.window, float64(sample)/0x7fffffff)
	}

	size := d.Demodulator.SamplesPerSymbol()
	for len(d.window) >= size {
		symbol, _ := d.Demodulator.DemodulateSymbol(d.window[:size])
		d.window = d.window[size:]

		for i := range d.Demodulator.Bands {
			if symbol&(1<<i) != 0 {
				d.bits.Set(d.count)
			}
			d.count++
			if d.count == 8 {
				select {
				case d.OutputChan <- d.bits.Byte():
				default:
					// receiver not draining, drop the byte
				}
				d.bits, d.count = 0, 0
			}
		}
	}
}
