package ds1302

import "errors"

var errLine = errors.New("line stuck")

const (
	lineCE = iota
	lineSCLK
	lineIO
)

// fakeChip models a DS1302 at the electrical level: it watches the three lines, decodes the command and data
// bits on rising clock edges and presents read data on falling edges.
type fakeChip struct {
	clock [9]byte // seconds .. control, then trickle charger
	ram   [RAMSize]byte

	lines [3]*fakeLine

	ce, sclk, io bool
	ioInput      bool
	out          bool

	selected bool
	haveCmd  bool
	read     bool
	ramSel   bool
	ptr      int
	shift    byte
	nbits    int
	outBits  int

	// failSet makes the n-th call to Set, counted over all lines, fail.
	failSet int
	sets    int

	pulses    int
	setups    []uint32 // microseconds between CE rising and the first clock edge
	highTimes []uint32 // microseconds the clock stayed high
	elapsed   uint32
	edgeSeen  bool
}

func newFakeChip() *fakeChip {
	c := &fakeChip{}
	for i := range c.lines {
		c.lines[i] = &fakeLine{chip: c, id: i}
	}
	c.clock[0] = haltBit
	c.clock[8] = trickleDisabled
	return c
}

func (c *fakeChip) DelayMicroseconds(us uint32) {
	c.elapsed += us
}

func (c *fakeChip) selectChip() {
	c.selected = true
	c.haveCmd = false
	c.shift, c.nbits = 0, 0
	c.elapsed = 0
	c.edgeSeen = false
}

func (c *fakeChip) risingEdge() {
	if !c.edgeSeen {
		c.setups = append(c.setups, c.elapsed)
		c.edgeSeen = true
	}
	c.elapsed = 0
	c.pulses++
	if c.haveCmd && c.read {
		return
	}
	if c.io {
		c.shift |= 1 << c.nbits
	}
	c.nbits++
	if c.nbits < 8 {
		return
	}
	b := c.shift
	c.shift, c.nbits = 0, 0
	if !c.haveCmd {
		c.haveCmd = true
		c.read = b&readBit != 0
		c.ramSel = b&0x40 != 0
		c.ptr = int(b>>1) & 0x1F
		if c.ptr == 0x1F {
			c.ptr = 0
		}
		c.outBits = 0
		return
	}
	c.store(b)
	c.ptr++
}

func (c *fakeChip) fallingEdge() {
	c.highTimes = append(c.highTimes, c.elapsed)
	c.elapsed = 0
	if !c.haveCmd || !c.read {
		return
	}
	if c.outBits == 8 {
		c.ptr++
		c.outBits = 0
	}
	c.out = c.load()>>c.outBits&1 != 0
	c.outBits++
}

func (c *fakeChip) load() byte {
	if c.ramSel {
		if c.ptr < RAMSize {
			return c.ram[c.ptr]
		}
		return 0
	}
	if c.ptr < len(c.clock) {
		return c.clock[c.ptr]
	}
	return 0
}

func (c *fakeChip) store(b byte) {
	if c.ramSel {
		if c.ptr < RAMSize {
			c.ram[c.ptr] = b
		}
		return
	}
	if c.ptr < len(c.clock) {
		c.clock[c.ptr] = b
	}
}

type fakeLine struct {
	chip *fakeChip
	id   int
	dirs []Direction
}

func (l *fakeLine) SetDirection(dir Direction) error {
	l.dirs = append(l.dirs, dir)
	if l.id == lineIO {
		l.chip.ioInput = dir == Input
	}
	return nil
}

func (l *fakeLine) Set(high bool) error {
	c := l.chip
	c.sets++
	if c.failSet > 0 && c.sets == c.failSet {
		return errLine
	}
	switch l.id {
	case lineCE:
		if high && !c.ce {
			c.selectChip()
		} else if !high {
			c.selected = false
		}
		c.ce = high
	case lineSCLK:
		prev := c.sclk
		c.sclk = high
		if !c.selected {
			return nil
		}
		if high && !prev {
			c.risingEdge()
		} else if !high && prev {
			c.fallingEdge()
		}
	case lineIO:
		c.io = high
	}
	return nil
}

func (l *fakeLine) Get() bool {
	c := l.chip
	switch l.id {
	case lineCE:
		return c.ce
	case lineSCLK:
		return c.sclk
	}
	if c.ioInput && c.selected && c.haveCmd && c.read {
		return c.out
	}
	if c.ioInput {
		return false
	}
	return c.io
}

// countingGuard fails loudly on nesting or unbalanced release.
type countingGuard struct {
	depth   int
	entered int
}

func (g *countingGuard) Enter() {
	if g.depth != 0 {
		panic("guard entered twice")
	}
	g.depth++
	g.entered++
}

func (g *countingGuard) Exit() {
	if g.depth != 1 {
		panic("guard released without being held")
	}
	g.depth--
}
