package layers

import (
	"reflect"
	"testing"

	"github.com/ishan211/audio-analyze/pkg/device"
	"github.com/ishan211/audio-analyze/pkg/modem"
)

const (
	SAMPLE_RATE = 8192.0
	SYMBOL_RATE = 4.0
	LEVEL_DBFS  = -3.0
)

func testLayer(dev device.Device) *PhysicalLayer {
	return &PhysicalLayer{
		Device: dev,
		Encoder: Encoder{
			Modulator: modem.Modulator{
				Bands:      modem.DefaultBands,
				SymbolRate: SYMBOL_RATE,
				SampleRate: SAMPLE_RATE,
				Level:      LEVEL_DBFS,
			},
		},
		Decoder: Decoder{
			Demodulator: modem.Demodulator{
				Bands:      modem.DefaultBands,
				SymbolRate: SYMBOL_RATE,
				SampleRate: SAMPLE_RATE,
			},
			BufferSize: 64,
		},
	}
}

func TestPhysicalLayerLoopback(t *testing.T) {
	layer := testLayer(&device.Loopback{})

	layer.Open()
	defer layer.Close()

	message := []byte("Hello")
	if err := layer.Send(message); err != nil {
		t.Fatalf("Send: %v", err)
	}

	received := layer.Receive(len(message))
	if !reflect.DeepEqual(received, message) {
		t.Errorf("received %q, want %q", received, message)
	}
}

func TestPhysicalLayerNoisyLoopback(t *testing.T) {
	layer := testLayer(&device.Loopback{NoiseAmplitude: 0.01})

	layer.Open()
	defer layer.Close()

	message := []byte{0x00, 0xFF, 0x41}
	if err := layer.Send(message); err != nil {
		t.Fatalf("Send: %v", err)
	}

	received := layer.Receive(len(message))
	if !reflect.DeepEqual(received, message) {
		t.Errorf("received %v, want %v", received, message)
	}
}

func TestPhysicalLayerRejectsBadMessage(t *testing.T) {
	layer := testLayer(&device.Loopback{})

	layer.Open()
	defer layer.Close()

	if err := layer.Send(nil); err == nil {
		t.Errorf("expected an error for an empty message")
	}
}
