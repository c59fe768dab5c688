package ds1302

// chipSelect raises CE and waits for the chip to latch it before any clock
// edge.
func (d *Device) chipSelect() error {
	if err := d.ce.Set(true); err != nil {
		return ioError("chip select", err)
	}
	d.delay.DelayMicroseconds(ceSetup)
	return nil
}

func (d *Device) chipDeselect() error {
	if err := d.ce.Set(false); err != nil {
		return ioError("chip deselect", err)
	}
	return nil
}

// begin prepares the data line, parks the clock low and selects the chip.
func (d *Device) begin(dir Direction) error {
	if err := d.io.SetDirection(dir); err != nil {
		return ioError("set direction", err)
	}
	if err := d.sclk.Set(false); err != nil {
		return ioError("clock low", err)
	}
	return d.chipSelect()
}

// end deselects the chip. A deselect failure is only reported when the
// transfer itself succeeded.
func (d *Device) end(err *error) {
	if derr := d.chipDeselect(); derr != nil && *err == nil {
		*err = derr
	}
}

// clockPulse produces one bit period.
func (d *Device) clockPulse() error {
	if err := d.sclk.Set(true); err != nil {
		return ioError("clock high", err)
	}
	d.delay.DelayMicroseconds(clockHalf)
	if err := d.sclk.Set(false); err != nil {
		return ioError("clock low", err)
	}
	d.delay.DelayMicroseconds(clockHalf)
	return nil
}

// writeByte shifts b out least significant bit first.
func (d *Device) writeByte(b byte) error {
	for i := uint8(0); i < 8; i++ {
		if err := d.io.Set(b>>i&1 != 0); err != nil {
			return ioError("data out", err)
		}
		if err := d.clockPulse(); err != nil {
			return err
		}
	}
	return nil
}

// readByte shifts a byte in least significant bit first. The chip presents
// each bit on the falling clock edge, so the line is sampled before pulsing.
func (d *Device) readByte() (byte, error) {
	var b byte
	for i := uint8(0); i < 8; i++ {
		if d.io.Get() {
			b |= 1 << i
		}
		if err := d.clockPulse(); err != nil {
			return 0, err
		}
	}
	return b, nil
}

func (d *Device) readRegister(cmd byte) (byte, error) {
	var buf [1]byte
	err := d.burstRead(cmd, buf[:])
	return buf[0], err
}

func (d *Device) writeRegister(cmd, val byte) error {
	buf := [1]byte{val}
	return d.burstWrite(cmd, buf[:])
}

// updateRegister keeps the bits of the register selected by mask and ORs in
// val.
func (d *Device) updateRegister(cmd, mask, val byte) error {
	r, err := d.readRegister(cmd)
	if err != nil {
		return err
	}
	return d.writeRegister(cmd, r&mask|val)
}

// burstRead sends cmd and reads len(dst) bytes in one transaction. With a
// burst command the chip advances its pointer after every byte.
func (d *Device) burstRead(cmd byte, dst []byte) (err error) {
	d.guard.Enter()
	defer d.guard.Exit()

	if err = d.begin(Output); err != nil {
		return err
	}
	defer d.end(&err)

	if err = d.writeByte(cmd | readBit); err != nil {
		return err
	}
	if err = d.io.SetDirection(Input); err != nil {
		return ioError("set direction", err)
	}
	for i := range dst {
		if dst[i], err = d.readByte(); err != nil {
			return err
		}
	}
	return nil
}

// burstWrite sends cmd followed by src in one transaction.
func (d *Device) burstWrite(cmd byte, src []byte) (err error) {
	d.guard.Enter()
	defer d.guard.Exit()

	if err = d.begin(Output); err != nil {
		return err
	}
	defer d.end(&err)

	if err = d.writeByte(cmd &^ readBit); err != nil {
		return err
	}
	for _, b := range src {
		if err = d.writeByte(b); err != nil {
			return err
		}
	}
	return nil
}
