//go:build tinygo

package ds1302

import "machine"

// Pin adapts a machine.Pin to a Line.
type Pin machine.Pin

func (p Pin) SetDirection(dir Direction) error {
	mode := machine.PinOutput
	if dir == Input {
		mode = machine.PinInput
	}
	machine.Pin(p).Configure(machine.PinConfig{Mode: mode})
	return nil
}

func (p Pin) Set(high bool) error {
	machine.Pin(p).Set(high)
	return nil
}

func (p Pin) Get() bool {
	return machine.Pin(p).Get()
}
