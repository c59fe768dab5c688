//go:build !tinygo

package ds1302

import "sync"

// criticalSection serializes transfers between goroutines on hosts, where
// interrupts cannot be masked.
type criticalSection struct {
	mu sync.Mutex
}

func (c *criticalSection) Enter() { c.mu.Lock() }

func (c *criticalSection) Exit() { c.mu.Unlock() }
