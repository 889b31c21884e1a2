// Package device abstracts the audio hardware the modem plays into and
// records from. A Device repeatedly hands the callback one input buffer of
// captured samples and one output buffer to fill, both mono at the device
// sample rate.
package device

type Device interface {
	Start(callback func(in, out []int32))
	Stop()
}

const BufferSize = 512
