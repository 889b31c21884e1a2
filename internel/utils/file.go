package utils

import (
	"bufio"
	"fmt"
	"os"
)

// WaitEnterAsync resolves once the user presses Enter.
func WaitEnterAsync() <-chan struct{} {
	done := make(chan struct{})
	go func() {
		bufio.NewReader(os.Stdin).ReadBytes('\n')
		close(done)
	}()
	return done
}

// ReadPayload loads a message payload from disk.
func ReadPayload(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload: %v", err)
	}
	return data, nil
}

// WritePayload stores a recovered message payload on disk.
func WritePayload(filename string, data []byte) error {
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write payload: %v", err)
	}
	return nil
}

// Printable renders msg for display: bytes outside the printable ASCII range
// show as a placeholder instead of raising an error.
func Printable(msg []byte) string {
	out := make([]byte, len(msg))
	for i, b := range msg {
		if b >= 0x20 && b < 0x7f {
			out[i] = b
		} else {
			out[i] = '.'
		}
	}
	return string(out)
}
