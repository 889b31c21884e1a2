package device

import "golang.org/x/exp/rand"

func alloci32(n int) []int32 {
	return make([]int32, n)
}

func cleari32(a []int32) {
	for i := range a {
		a[i] = 0
	}
}

// noisei32 adds uniform noise of the given full-scale amplitude, saturating
// at the sample range.
func noisei32(a []int32, amplitude float64) {
	span := int64(amplitude * 0x7fffffff)
	if span <= 0 {
		return
	}
	for i := range a {
		sum := int64(a[i]) + rand.Int63n(2*span+1) - span
		if sum > 0x7fffffff {
			sum = 0x7fffffff
		} else if sum < -0x80000000 {
			sum = -0x80000000
		}
		a[i] = int32(sum)
	}
}
