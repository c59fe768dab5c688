// Package ds1302 implements a driver for the DS1302 trickle-charge timekeeping chip, providing the clock and calendar,
// the clock halt and write-protect flags, the trickle charger and the 31 bytes of scratch RAM.
//
// The chip has no hardware serial interface of its own: the driver bit-bangs the three-wire protocol (CE, SCLK and a
// bidirectional I/O line) over any Line implementation. Every transfer runs inside a Guard so that the bus timing is
// not stretched by interrupts or other goroutines.
//
// Datasheet: https://www.analog.com/media/en/technical-documentation/data-sheets/DS1302.pdf
package ds1302

// Device is a DS1302 attached to three lines.
type Device struct {
	ce    Line
	sclk  Line
	io    Line
	delay Delayer
	guard Guard

	// halted mirrors the clock halt flag as last seen or written.
	halted bool
}

// Config holds optional collaborators. Zero values select a busy-wait delay and the process-wide transfer guard.
type Config struct {
	Delay Delayer
	Guard Guard
}

// New creates a driver for the chip wired to the given chip enable, serial clock and data lines.
func New(ce, sclk, io Line) *Device {
	return &Device{
		ce:    ce,
		sclk:  sclk,
		io:    io,
		delay: busyWait{},
		guard: &transferGuard,
	}
}

// Configure drives all three lines as outputs with CE and SCLK low, then reads the clock halt flag.
func (d *Device) Configure(c Config) error {
	if d.ce == nil || d.sclk == nil || d.io == nil ||
		sameLine(d.ce, d.sclk) || sameLine(d.ce, d.io) || sameLine(d.sclk, d.io) {
		return ErrInvalidArgument
	}
	if c.Delay != nil {
		d.delay = c.Delay
	}
	if c.Guard != nil {
		d.guard = c.Guard
	}

	for _, line := range [...]Line{d.ce, d.sclk, d.io} {
		if err := line.SetDirection(Output); err != nil {
			return ioError("configure", err)
		}
	}
	if err := d.chipDeselect(); err != nil {
		return err
	}
	if err := d.sclk.Set(false); err != nil {
		return ioError("clock low", err)
	}

	running, err := d.IsRunning()
	if err != nil {
		return err
	}
	if !running {
		l("ds1302: oscillator halted")
	}
	return nil
}

// sameLine reports whether a and b are the same comparable line. Lines of non-comparable types are never
// considered the same.
func sameLine(a, b Line) (same bool) {
	defer func() {
		if recover() != nil {
			same = false
		}
	}()
	return a == b
}

// Start clears the clock halt flag when run is true and sets it otherwise. The seconds are left untouched.
func (d *Device) Start(run bool) error {
	var v byte
	if !run {
		v = haltBit
	}
	if err := d.updateRegister(Seconds, ^byte(haltBit), v); err != nil {
		return err
	}
	d.halted = !run
	if run {
		l("ds1302: oscillator started")
	} else {
		l("ds1302: oscillator stopped")
	}
	return nil
}

// IsRunning reads the clock halt flag.
func (d *Device) IsRunning() (bool, error) {
	r, err := d.readRegister(Seconds)
	if err != nil {
		return false, err
	}
	d.halted = r&haltBit != 0
	return !d.halted, nil
}

// SetWriteProtect sets or clears the write-protect flag. While it is set the chip ignores writes to every other
// register and to the RAM.
func (d *Device) SetWriteProtect(enabled bool) error {
	var v byte
	if enabled {
		v = protectBit
	}
	return d.updateRegister(Control, ^byte(protectBit), v)
}

// WriteProtect reports the write-protect flag.
func (d *Device) WriteProtect() (bool, error) {
	r, err := d.readRegister(Control)
	if err != nil {
		return false, err
	}
	return r&protectBit != 0, nil
}
