package ds1302

// Diodes is the number of diodes in the charge path.
type Diodes uint8

const (
	OneDiode  Diodes = 1
	TwoDiodes Diodes = 2
)

// Resistor selects the charge current limiting resistor.
type Resistor uint8

const (
	Resistor2K Resistor = 1
	Resistor4K Resistor = 2
	Resistor8K Resistor = 3
)

// TrickleCharger is the charger configuration. The zero value disables the charger.
type TrickleCharger struct {
	Diodes   Diodes
	Resistor Resistor
}

// Enabled reports whether the configuration closes the charge path.
func (tc TrickleCharger) Enabled() bool {
	return tc.Diodes != 0 && tc.Resistor != 0
}

// SetTrickleCharger programs the trickle charger. Write protection must be off.
func (d *Device) SetTrickleCharger(tc TrickleCharger) error {
	if tc.Diodes > TwoDiodes || tc.Resistor > Resistor8K {
		return ErrInvalidArgument
	}
	v := byte(trickleDisabled)
	if tc.Enabled() {
		v = trickleSelect | byte(tc.Diodes)<<2 | byte(tc.Resistor)
	}
	return d.writeRegister(Trickle, v)
}

// TrickleCharger reads the charger configuration. Any register value that does not close the charge path reads
// as the zero value.
func (d *Device) TrickleCharger() (TrickleCharger, error) {
	r, err := d.readRegister(Trickle)
	if err != nil {
		return TrickleCharger{}, err
	}
	tc := TrickleCharger{
		Diodes:   Diodes(r >> 2 & 0x03),
		Resistor: Resistor(r & 0x03),
	}
	if r&0xF0 != trickleSelect || tc.Diodes > TwoDiodes || !tc.Enabled() {
		return TrickleCharger{}, nil
	}
	return tc, nil
}
