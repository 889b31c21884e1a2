// airloop sends a message over an audio device and prints what comes back.
// With device_name "loopback" in config.yml the whole path runs in-process;
// with an ASIO device name it plays through the speaker and listens on the
// microphone.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ishan211/audio-analyze/cmd/airloop/config"
	"github.com/ishan211/audio-analyze/internel/utils"
	"github.com/ishan211/audio-analyze/pkg/modem"
)

func main() {
	configFile := flag.String("c", "config.yml", "configuration file")
	message := flag.String("m", "01000001", "binary message to send")
	input := flag.String("i", "", "send the contents of this file instead of -m")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var msg []byte
	if *input != "" {
		msg, err = utils.ReadPayload(*input)
	} else {
		msg, err = modem.ParseBitString(*message)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	layer, err := cfg.CreatePhysicalLayer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	layer.Open()
	defer layer.Close()

	received := make(chan []byte)
	go func() {
		received <- layer.Receive(len(msg))
	}()

	fmt.Printf("Sending %d bytes\n", len(msg))
	if err := layer.Send(msg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Press Enter to stop waiting")
	select {
	case msg := <-received:
		fmt.Printf("Received: %s\n", modem.FormatBitString(msg))
		fmt.Printf("ASCII:    %s\n", utils.Printable(msg))
	case <-utils.WaitEnterAsync():
		fmt.Println("Stopped.")
	}
}
