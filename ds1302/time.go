package ds1302

import "time"

// DateTime is the content of the clock registers.
type DateTime struct {
	Second  int
	Minute  int
	Hour    int // 0-23
	Day     int // day of month, 1-31
	Month   time.Month
	Weekday time.Weekday // chip day 1-7 maps to 0-6
	Year    int          // 2000-2099
}

// GetTime reads all clock registers in one burst so the fields cannot roll over between bytes. The content is not
// validated.
func (d *Device) GetTime() (DateTime, error) {
	var buf [7]byte
	if err := d.burstRead(ClockBurst, buf[:]); err != nil {
		return DateTime{}, err
	}
	return decodeClock(buf), nil
}

func decodeClock(buf [7]byte) DateTime {
	t := DateTime{
		Second:  decode(buf[0] & secondsMask),
		Minute:  decode(buf[1]),
		Day:     decode(buf[3]),
		Month:   time.Month(decode(buf[4])),
		Weekday: time.Weekday(decode(buf[5]) - 1),
		Year:    decode(buf[6]) + centuryBase,
	}
	if buf[2]&hour12Bit != 0 {
		t.Hour = decode(buf[2]&hour12Mask) - 1
		if buf[2]&pmBit != 0 {
			t.Hour += 12
		}
	} else {
		t.Hour = decode(buf[2] & hour24Mask)
	}
	return t
}

// SetTime writes all clock registers in one burst, in 24-hour mode. The clock halt flag keeps the value last seen
// by Configure, Start or IsRunning, so setting the time never starts or stops the oscillator. The burst also
// writes 0 to the control register, which clears write protection.
func (d *Device) SetTime(t DateTime) error {
	buf := [8]byte{
		encode(t.Second),
		encode(t.Minute),
		encode(t.Hour),
		encode(t.Day),
		encode(int(t.Month)),
		encode(int(t.Weekday) + 1),
		encode(t.Year - centuryBase),
		0,
	}
	if d.halted {
		buf[0] |= haltBit
	}
	if err := d.burstWrite(ClockBurst, buf[:]); err != nil {
		return err
	}
	l("ds1302: clock set")
	return nil
}

// Now returns the current time of the chip in UTC.
func (d *Device) Now() (time.Time, error) {
	t, err := d.GetTime()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second, 0, time.UTC), nil
}

// Set writes t in UTC, matching Now. The weekday is derived from the date.
func (d *Device) Set(t time.Time) error {
	t = t.UTC()
	return d.SetTime(DateTime{
		Second:  t.Second(),
		Minute:  t.Minute(),
		Hour:    t.Hour(),
		Day:     t.Day(),
		Month:   t.Month(),
		Weekday: t.Weekday(),
		Year:    t.Year(),
	})
}
