package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ishan211/audio-analyze/pkg/device"
	"github.com/ishan211/audio-analyze/pkg/layers"
	"github.com/ishan211/audio-analyze/pkg/modem"
)

type Config struct {
	Device struct {
		DeviceName     string  `yaml:"device_name"` // "loopback" for the in-process wire
		SampleRate     float64 `yaml:"sample_rate"`
		InChannel      int     `yaml:"in_channel"`
		OutChannel     int     `yaml:"out_channel"`
		NoiseAmplitude float64 `yaml:"noise_amplitude"`
	} `yaml:"device"`

	Modem struct {
		SymbolRate    float64 `yaml:"symbol_rate"`
		LevelDBFS     float64 `yaml:"level_dbfs"`
		Tolerance     float64 `yaml:"tolerance"`
		MinBlockRatio float64 `yaml:"min_block_ratio"`
		SingleTone    bool    `yaml:"single_tone"`
	} `yaml:"modem"`

	Link struct {
		SquelchThreshold  float64 `yaml:"squelch_threshold"`
		OutputBufferSize  int     `yaml:"output_buffer_size"`
		ReceiveBufferSize int     `yaml:"receive_buffer_size"`
	} `yaml:"link"`
}

func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) bands() modem.BandTable {
	if c.Modem.SingleTone {
		return modem.SingleToneBands
	}
	return modem.DefaultBands
}

func (c *Config) createDevice() device.Device {
	if c.Device.DeviceName == "loopback" {
		return &device.Loopback{
			SampleRate:     c.Device.SampleRate,
			NoiseAmplitude: c.Device.NoiseAmplitude,
		}
	}
	return &device.ASIOMono{
		DeviceName: c.Device.DeviceName,
		SampleRate: c.Device.SampleRate,
		InChannel:  c.Device.InChannel,
		OutChannel: c.Device.OutChannel,
	}
}

// CreatePhysicalLayer wires the configured device, modulator and demodulator
// into a ready-to-open physical layer.
func (c *Config) CreatePhysicalLayer() (*layers.PhysicalLayer, error) {
	bands := c.bands()
	tolerance := c.Modem.Tolerance
	if tolerance == 0 {
		tolerance = modem.Tolerance
	}
	if err := bands.Validate(tolerance); err != nil {
		return nil, fmt.Errorf("invalid band table: %v", err)
	}

	return &layers.PhysicalLayer{
		Device: c.createDevice(),
		Encoder: layers.Encoder{
			Modulator: modem.Modulator{
				Bands:      bands,
				SymbolRate: c.Modem.SymbolRate,
				SampleRate: c.Device.SampleRate,
				Level:      c.Modem.LevelDBFS,
			},
			BufferSize: c.Link.OutputBufferSize,
		},
		Decoder: layers.Decoder{
			Demodulator: modem.Demodulator{
				Bands:         bands,
				SymbolRate:    c.Modem.SymbolRate,
				SampleRate:    c.Device.SampleRate,
				ToleranceHz:   c.Modem.Tolerance,
				MinBlockRatio: c.Modem.MinBlockRatio,
			},
			SquelchThreshold: c.Link.SquelchThreshold,
			BufferSize:       c.Link.ReceiveBufferSize,
		},
	}, nil
}
