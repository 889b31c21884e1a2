// freqanalyze recovers the binary message carried by a multi-tone FSK WAV
// file and prints it as bits and as printable ASCII.
//
// Usage:
//
//	freqanalyze [-s 1] [-single] [-o recovered.bin] input.wav
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ishan211/audio-analyze/internel/utils"
	"github.com/ishan211/audio-analyze/internel/wave"
	"github.com/ishan211/audio-analyze/pkg/modem"
)

func main() {
	symbolRate := flag.Float64("s", 1, "symbols per second of the recording")
	single := flag.Bool("single", false, "use the single-tone scheme, one bit per symbol")
	output := flag.String("o", "", "also write the recovered bytes to this file")
	verbose := flag.Bool("v", false, "print per-block demodulation details")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] input.wav\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	samples, sampleRate, err := wave.Read(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Read %d samples at %d Hz\n", len(samples), sampleRate)

	bands := modem.DefaultBands
	if *single {
		bands = modem.SingleToneBands
	}
	modem.Debug = *verbose

	demodulator := modem.Demodulator{
		Bands:      bands,
		SymbolRate: *symbolRate,
		SampleRate: float64(sampleRate),
	}

	msg, err := demodulator.Demodulate(samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Message: %s\n", modem.FormatBitString(msg))
	fmt.Printf("ASCII:   %s\n", utils.Printable(msg))

	if *output != "" {
		if err := utils.WritePayload(*output, msg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Output written to %s\n", *output)
	}
}
