package utils

import (
	"path/filepath"
	"reflect"
	"testing"
)

func TestPayloadRoundTrip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "payload.bin")
	data := []byte{0x00, 0x41, 0xFF}

	if err := WritePayload(filename, data); err != nil {
		t.Fatalf("WritePayload: %v", err)
	}
	got, err := ReadPayload(filename)
	if err != nil {
		t.Fatalf("ReadPayload: %v", err)
	}
	if !reflect.DeepEqual(got, data) {
		t.Errorf("got %v, want %v", got, data)
	}
}

func TestPrintable(t *testing.T) {
	if got := Printable([]byte{'A', 0x00, 'b', 0x7f}); got != "A.b." {
		t.Errorf("got %q, want \"A.b.\"", got)
	}
}
