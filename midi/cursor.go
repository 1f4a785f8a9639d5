package midi

import "github.com/pkg/errors"

// cursor walks a byte slice. Every read that runs off the end fails with
// ErrTruncatedStream.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

func (c *cursor) readByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, errors.Wrapf(ErrTruncatedStream, "reading byte at offset %d", c.pos)
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

func (c *cursor) unreadByte() {
	if c.pos > 0 {
		c.pos--
	}
}

func (c *cursor) readBytes(n int) ([]byte, error) {
	if n < 0 || n > c.remaining() {
		return nil, errors.Wrapf(ErrTruncatedStream, "reading %d bytes at offset %d, %d left", n, c.pos, c.remaining())
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

func (c *cursor) skip(n int) error {
	_, err := c.readBytes(n)
	return err
}

func (c *cursor) readInt32() (int32, error) {
	b, err := c.readBytes(4)
	if err != nil {
		return 0, err
	}
	return BigEndianInt32(b), nil
}

func (c *cursor) readInt16() (int16, error) {
	b, err := c.readBytes(2)
	if err != nil {
		return 0, err
	}
	return BigEndianInt16(b), nil
}
