package device

import "github.com/xsjk/go-asio"

// ASIOMono drives one capture and one playback channel of an ASIO sound
// card. The modem is strictly mono: of the channel arrays the driver hands
// over per buffer, only InChannel and OutChannel are used, every other
// output channel stays silent.
type ASIOMono struct {
	DeviceName string
	SampleRate float64
	InChannel  int
	OutChannel int

	device asio.Device
}

var _ Device = (*ASIOMono)(nil)

// Start loads the named driver, switches it to the configured rate and
// forwards the selected channel pair to callback buffer by buffer.
func (a *ASIOMono) Start(callback func(in, out []int32)) {
	a.device.Load(a.DeviceName)
	a.device.SetSampleRate(a.SampleRate)
	a.device.Open()
	a.device.Start(func(in, out [][]int32) {
		callback(in[a.InChannel], out[a.OutChannel])
	})
}

func (a *ASIOMono) Stop() {
	a.device.Stop()
	a.device.Close()
	a.device.Unload()
}
