package modem

import "fmt"

// Convert []int16 to []float64 in the unit range
func Int16ToFloat64(input []int16) []float64 {
	output := make([]float64, len(input))
	for i, v := range input {
		output[i] = float64(v) / 0x7fff
	}
	return output
}

// Convert []float64 in the unit range to []int16
func Float64ToInt16(input []float64) []int16 {
	output := make([]int16, len(input))
	for i, v := range input {
		output[i] = int16(v * 0x7fff)
	}
	return output
}

// Widen 16-bit PCM to the 32-bit full scale used by audio devices
func Int16ToInt32(input []int16) []int32 {
	output := make([]int32, len(input))
	for i, v := range input {
		output[i] = int32(v) << 16
	}
	return output
}

// Narrow 32-bit device samples to 16-bit PCM
func Int32ToInt16(input []int32) []int16 {
	output := make([]int16, len(input))
	for i, v := range input {
		output[i] = int16(v >> 16)
	}
	return output
}

// DownmixMono folds interleaved multi-channel samples into one channel by
// per-sample averaging.
func DownmixMono(samples []int16, channels int) []int16 {
	if channels <= 1 {
		return samples
	}
	output := make([]int16, len(samples)/channels)
	for i := range output {
		sum := 0
		for ch := 0; ch < channels; ch++ {
			sum += int(samples[i*channels+ch])
		}
		output[i] = int16(sum / channels)
	}
	return output
}

// ParseBitString packs a string of '0' and '1' characters into bytes, most
// significant bit first within each group of 8.
func ParseBitString(s string) ([]byte, error) {
	if len(s)%8 != 0 {
		return nil, fmt.Errorf("binary message length must be a multiple of 8, got %d", len(s))
	}
	output := make([]byte, 0, len(s)/8)
	var b byte
	for i, c := range s {
		switch c {
		case '0':
			b <<= 1
		case '1':
			b = b<<1 | 1
		default:
			return nil, fmt.Errorf("binary message may only contain 0 and 1, got %q at %d", c, i)
		}
		if i%8 == 7 {
			output = append(output, b)
			b = 0
		}
	}
	return output, nil
}

// FormatBitString renders msg the way ParseBitString reads it.
func FormatBitString(msg []byte) string {
	out := make([]byte, 0, len(msg)*8)
	for _, b := range msg {
		out = append(out, BitSet8(b).String()...)
	}
	return string(out)
}
