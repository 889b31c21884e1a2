package modem

import "fmt"

// Debug turns on per-block demodulation prints.
var Debug = false

func debugLog(format string, a ...any) {
	if Debug {
		fmt.Printf(format, a...)
	}
}
