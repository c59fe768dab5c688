package ds1302

func checkRAM(offset uint8, n int) error {
	if n == 0 || int(offset)+n > RAMSize {
		return ErrInvalidArgument
	}
	return nil
}

// ReadRAM fills buf from scratch RAM starting at offset. A burst always starts at the first byte, so the leading
// offset bytes are read and dropped; the whole range is still one transaction.
func (d *Device) ReadRAM(offset uint8, buf []byte) error {
	if err := checkRAM(offset, len(buf)); err != nil {
		return err
	}
	var tmp [RAMSize]byte
	n := int(offset) + len(buf)
	if err := d.burstRead(RAMBurst, tmp[:n]); err != nil {
		return err
	}
	copy(buf, tmp[offset:n])
	return nil
}

// WriteRAM stores data in scratch RAM starting at offset. The RAM burst always starts at byte 0, so for a
// non-zero offset the bytes before it are read back first and rewritten unchanged in the same burst.
func (d *Device) WriteRAM(offset uint8, data []byte) error {
	if err := checkRAM(offset, len(data)); err != nil {
		return err
	}
	if offset == 0 {
		return d.burstWrite(RAMBurst, data)
	}
	var tmp [RAMSize]byte
	if err := d.burstRead(RAMBurst, tmp[:offset]); err != nil {
		return err
	}
	n := copy(tmp[offset:], data)
	return d.burstWrite(RAMBurst, tmp[:int(offset)+n])
}
