package device

import (
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestLoopbackEchoesOutput(t *testing.T) {
	var mu sync.Mutex
	lastOutput := alloci32(BufferSize)
	checked := 0

	var dev Device = &Loopback{}

	counter := int32(0)
	dev.Start(func(in, out []int32) {
		mu.Lock()
		defer mu.Unlock()

		if checked > 0 && !reflect.DeepEqual(in, lastOutput) {
			t.Errorf("input does not echo the previous output")
		}
		checked++

		for i := range out {
			out[i] = counter
			counter++
		}
		copy(lastOutput, out)
	})

	time.Sleep(10 * time.Millisecond)
	dev.Stop()

	mu.Lock()
	defer mu.Unlock()
	if checked < 2 {
		t.Errorf("callback ran %d times, want at least 2", checked)
	}
}

func TestLoopbackNoiseStaysBounded(t *testing.T) {
	amplitude := 0.1
	buf := alloci32(BufferSize)
	noisei32(buf, amplitude)

	limit := int32(amplitude * 0x7fffffff)
	nonZero := false
	for _, s := range buf {
		if s != 0 {
			nonZero = true
		}
		if s > limit || s < -limit {
			t.Errorf("noise sample %d outside the configured amplitude", s)
		}
	}
	if !nonZero {
		t.Errorf("noise injection left the buffer silent")
	}
}
