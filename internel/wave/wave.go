// Package wave reads and writes the uncompressed PCM containers the modem
// exchanges: mono 16-bit WAV on the way out, any channel count on the way in
// with a per-sample averaging downmix.
package wave

import (
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ishan211/audio-analyze/pkg/modem"
)

// Write stores samples as a mono 16-bit PCM WAV file.
func Write(filename string, samples []int16, sampleRate int) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer file.Close()

	encoder := wav.NewEncoder(file, sampleRate, 16, 1, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sampleRate},
		SourceBitDepth: 16,
		Data:           make([]int, len(samples)),
	}
	for i, s := range samples {
		buf.Data[i] = int(s)
	}

	if err := encoder.Write(buf); err != nil {
		return fmt.Errorf("failed to write samples: %v", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finalize container: %v", err)
	}
	return nil
}

// Read loads a PCM WAV file, downmixes it to mono and returns the samples
// together with the container's sample rate.
func Read(filename string) ([]int16, int, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open file: %v", err)
	}
	defer file.Close()

	decoder := wav.NewDecoder(file)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("%s is not a valid WAV file", filename)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read samples: %v", err)
	}

	samples := make([]int16, len(buf.Data))
	for i, s := range buf.Data {
		samples[i] = int16(s)
	}
	samples = modem.DownmixMono(samples, buf.Format.NumChannels)

	return samples, buf.Format.SampleRate, nil
}
