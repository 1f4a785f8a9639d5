package midi

import "github.com/pkg/errors"

// clock converts absolute ticks to seconds for one file:
// seconds = ticks / ticksPerUnit * secondsPerUnit.
type clock struct {
	ticksPerUnit   float64
	secondsPerUnit float64
}

// newClock interprets the header's time division. A positive division is
// ticks per quarter note at the configured tempo. A negative one is SMPTE:
// the high byte holds -framesPerSecond and the low byte ticks per frame.
func newClock(division int16, secondsPerQuarterNote float64) (clock, error) {
	if division > 0 {
		return clock{ticksPerUnit: float64(division), secondsPerUnit: secondsPerQuarterNote}, nil
	}
	if division == 0 {
		return clock{}, errors.Wrap(ErrInvalidFormat, "time division is zero")
	}

	fps := -int(int8(uint16(division) >> 8))
	ticksPerFrame := int(uint16(division) & 0xFF)
	if ticksPerFrame == 0 {
		return clock{}, errors.Wrapf(ErrInvalidFormat, "smpte division with zero ticks per frame")
	}

	var rate float64
	switch fps {
	case 24, 25, 30:
		rate = float64(fps)
	case 29:
		rate = 29.97
	default:
		return clock{}, errors.Wrapf(ErrInvalidFormat, "unsupported smpte frame rate %d", fps)
	}
	return clock{ticksPerUnit: rate * float64(ticksPerFrame), secondsPerUnit: 1}, nil
}

func (c clock) seconds(ticks uint64) float64 {
	return float64(ticks) / c.ticksPerUnit * c.secondsPerUnit
}
