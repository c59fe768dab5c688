//go:build tinygo

package ds1302

import "runtime/interrupt"

// criticalSection masks interrupts for the length of a transfer.
type criticalSection struct {
	state interrupt.State
}

func (c *criticalSection) Enter() { c.state = interrupt.Disable() }

func (c *criticalSection) Exit() { interrupt.Restore(c.state) }
