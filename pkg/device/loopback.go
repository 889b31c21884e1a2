package device

import "time"

// Loopback is an in-process acoustic wire: whatever the callback writes to
// the output buffer comes back as the next input buffer. NoiseAmplitude adds
// uniform noise on the way, imitating a lossy speaker-to-microphone channel.
type Loopback struct {
	SampleRate     float64 // 0 means run as fast as possible
	NoiseAmplitude float64 // fraction of full scale, 0 means a clean wire

	done chan struct{}
}

func (d *Loopback) Start(callback func(in, out []int32)) {
	d.done = make(chan struct{})

	go func() {
		wire := alloci32(BufferSize)
		out := alloci32(BufferSize)

		update := func() {
			cleari32(out)
			callback(wire, out)
			copy(wire, out)
			if d.NoiseAmplitude > 0 {
				noisei32(wire, d.NoiseAmplitude)
			}
		}

		if d.SampleRate == 0 {
			for {
				select {
				case <-d.done:
					return
				default:
					update()
				}
			}
		}

		ticker := time.NewTicker(time.Second * BufferSize / time.Duration(d.SampleRate))
		defer ticker.Stop()
		for {
			select {
			case <-d.done:
				return
			case <-ticker.C:
				update()
			}
		}
	}()
}

func (d *Loopback) Stop() {
	close(d.done)
}
