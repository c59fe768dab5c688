//go:build linux

package hostline

import (
	"github.com/warthog618/gpiod"

	"github.com/ajanata/tinygo-drivers/ds1302"
)

// CdevLine is a line requested from a GPIO character device.
type CdevLine struct {
	line *gpiod.Line
}

func (l *CdevLine) SetDirection(dir ds1302.Direction) error {
	if dir == ds1302.Input {
		return l.line.Reconfigure(gpiod.AsInput)
	}
	return l.line.Reconfigure(gpiod.AsOutput(0))
}

func (l *CdevLine) Set(high bool) error {
	v := 0
	if high {
		v = 1
	}
	return l.line.SetValue(v)
}

// Get reads the line; a failed read reads low.
func (l *CdevLine) Get() bool {
	v, err := l.line.Value()
	return err == nil && v == 1
}

// OpenGPIOD requests the three line offsets from the named chip, e.g. "gpiochip0", as low outputs.
func OpenGPIOD(chip string, ce, sclk, io int) (*Lines, error) {
	c, err := gpiod.NewChip(chip, gpiod.WithConsumer("ds1302"))
	if err != nil {
		return nil, err
	}
	return openLines(func(offset int) (ds1302.Line, func() error, error) {
		l, err := c.RequestLine(offset, gpiod.AsOutput(0))
		if err != nil {
			return nil, nil, err
		}
		return &CdevLine{line: l}, l.Close, nil
	}, ce, sclk, io, c.Close)
}
