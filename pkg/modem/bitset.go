package modem

import "strings"

// BitSet8 holds the bit values of one symbol, indexed by band bit position.
type BitSet8 byte

func (b *BitSet8) Set(pos int) {
	*b |= 1 << pos
}

func (b *BitSet8) Clear(pos int) {
	*b &^= 1 << pos
}

func (b BitSet8) IsSet(pos int) bool {
	return b&(1<<pos) != 0
}

func (b BitSet8) Byte() byte {
	return byte(b)
}

// String renders the bits most significant first, the way a binary message
// string reads.
func (b BitSet8) String() string {
	var sb strings.Builder
	for i := 7; i >= 0; i-- {
		if b.IsSet(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
