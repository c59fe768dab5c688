package hostline

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/ajanata/tinygo-drivers/ds1302"
)

// PeriphLine drives a periph.io pin. The output level is remembered so that switching back to output restores
// it.
type PeriphLine struct {
	pin   gpio.PinIO
	level gpio.Level
}

func NewPeriphLine(pin gpio.PinIO) *PeriphLine {
	return &PeriphLine{pin: pin, level: gpio.Low}
}

func (l *PeriphLine) SetDirection(dir ds1302.Direction) error {
	if dir == ds1302.Input {
		return l.pin.In(gpio.PullNoChange, gpio.NoEdge)
	}
	return l.pin.Out(l.level)
}

func (l *PeriphLine) Set(high bool) error {
	l.level = gpio.Level(high)
	return l.pin.Out(l.level)
}

func (l *PeriphLine) Get() bool {
	return bool(l.pin.Read())
}

// OpenPeriph initializes the periph.io host drivers and looks the pins up by name, e.g. "GPIO17".
func OpenPeriph(ce, sclk, io string) (*Lines, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	lines := &Lines{}
	for _, p := range []struct {
		name string
		dst  *ds1302.Line
	}{
		{ce, &lines.CE},
		{sclk, &lines.SCLK},
		{io, &lines.IO},
	} {
		pin := gpioreg.ByName(p.name)
		if pin == nil {
			return nil, fmt.Errorf("hostline: no pin named %q", p.name)
		}
		*p.dst = NewPeriphLine(pin)
	}
	return lines, nil
}
