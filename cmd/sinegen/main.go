// sinegen encodes a binary message into a multi-tone FSK WAV file.
//
// Usage:
//
//	sinegen -m 01000001 [-s "1 -3 44.1"] [-single] [-o output.wav]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ishan211/audio-analyze/internel/wave"
	"github.com/ishan211/audio-analyze/pkg/modem"
)

func main() {
	message := flag.String("m", "", "binary message, a string of 0s and 1s (required)")
	settings := flag.String("s", "1 -3 44.1", "symbols per second, level in dBFS, sample rate in kHz")
	output := flag.String("o", "", "output WAV file (default sine_message_<seconds>.wav)")
	single := flag.Bool("single", false, "use the single-tone scheme, one bit per symbol")
	flag.Parse()

	if *message == "" {
		fmt.Fprintln(os.Stderr, "Error: message (-m) is required.")
		flag.Usage()
		os.Exit(1)
	}

	symbolRate, level, rateKHz := 1.0, -3.0, 44.1
	fmt.Sscanf(*settings, "%f %f %f", &symbolRate, &level, &rateKHz)

	msg, err := modem.ParseBitString(*message)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	bands := modem.DefaultBands
	if *single {
		bands = modem.SingleToneBands
	}

	modulator := modem.Modulator{
		Bands:      bands,
		SymbolRate: symbolRate,
		SampleRate: rateKHz * 1000,
		Level:      level,
	}

	samples, err := modulator.Modulate(msg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	filename := *output
	if filename == "" {
		seconds := int(float64(len(samples)) / modulator.SampleRate)
		filename = fmt.Sprintf("sine_message_%d.wav", seconds)
	}

	if err := wave.Write(filename, samples, int(modulator.SampleRate)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated WAV file: %s\n", filename)
}
