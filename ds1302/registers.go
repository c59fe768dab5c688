package ds1302

// Command bytes in their write form. Bit 0 selects a read and is set by the
// transfer routines, never by callers.
const (
	Seconds  = 0x80 // seconds, also holds the clock halt flag
	Minutes  = 0x82
	Hours    = 0x84 // bit 7 selects 12-hour mode, bit 5 is PM in that mode
	Date     = 0x86
	Month    = 0x88
	Day      = 0x8A
	Year     = 0x8C
	Control  = 0x8E // write-protect flag in bit 7
	Trickle  = 0x90 // trickle charger select
	RAM      = 0xC0 // first scratch RAM byte, following bytes every 2 addresses
	RAMBurst = 0xFE

	ClockBurst = 0xBE
)

// RAMSize is the number of scratch RAM bytes.
const RAMSize = 31

const (
	readBit = 0x01

	haltBit    = 1 << 7
	protectBit = 1 << 7
	hour12Bit  = 1 << 7
	pmBit      = 1 << 5

	secondsMask = 0x7F
	hour12Mask  = 0x1F
	hour24Mask  = 0x3F

	trickleSelect   = 0xA0 // TCS pattern 1010 enables the charger
	trickleDisabled = 0x5C // power-on value

	centuryBase = 2000
)

// Timing of the bus in microseconds.
const (
	ceSetup   = 4
	clockHalf = 1
)
