package midi

import "github.com/pkg/errors"

// readVarLen decodes one variable-length quantity. Each byte contributes
// its low 7 bits; a clear high bit ends the value. Bits shifted past 32 are
// dropped.
func readVarLen(c *cursor) (uint32, error) {
	var result uint32
	for {
		b, err := c.readByte()
		if err != nil {
			return 0, errors.Wrap(err, "reading variable-length quantity")
		}
		result = (result << 7) | uint32(b&0x7F)
		if b&0x80 == 0 {
			return result, nil
		}
	}
}

// DecodeVarLen decodes a variable-length quantity from the start of b and
// reports how many bytes it used.
func DecodeVarLen(b []byte) (uint32, int, error) {
	c := cursor{data: b}
	v, err := readVarLen(&c)
	if err != nil {
		return 0, 0, err
	}
	return v, c.pos, nil
}

// AppendVarLen appends the variable-length encoding of v to dst.
func AppendVarLen(dst []byte, v uint32) []byte {
	var buf [5]byte
	i := len(buf) - 1
	buf[i] = byte(v & 0x7F)
	for v >>= 7; v != 0; v >>= 7 {
		i--
		buf[i] = byte(v&0x7F) | 0x80
	}
	return append(dst, buf[i:]...)
}
