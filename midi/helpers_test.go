package midi

import "encoding/binary"

func u32(v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return b
}

func u16(v uint16) []byte {
	b := make([]byte, 2)
	binary.BigEndian.PutUint16(b, v)
	return b
}

func header(format, tracks, division uint16) []byte {
	return join([]byte("MThd"), u32(6), u16(format), u16(tracks), u16(division))
}

func chunk(id string, body ...byte) []byte {
	return join([]byte(id), u32(uint32(len(body))), body)
}

func smf(division uint16, tracks ...[]byte) []byte {
	b := header(1, uint16(len(tracks)), division)
	for _, t := range tracks {
		b = append(b, t...)
	}
	return b
}

func join(parts ...[]byte) []byte {
	var b []byte
	for _, p := range parts {
		b = append(b, p...)
	}
	return b
}

var endOfTrack = []byte{0x00, 0xFF, 0x2F, 0x00}
