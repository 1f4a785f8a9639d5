package midi

import "encoding/binary"

// BigEndianInt32 converts a 4-byte big-endian header field. b must hold at
// least 4 bytes.
func BigEndianInt32(b []byte) int32 {
	return int32(binary.BigEndian.Uint32(b))
}

// BigEndianInt16 converts a 2-byte big-endian header field.
func BigEndianInt16(b []byte) int16 {
	return int16(binary.BigEndian.Uint16(b))
}
