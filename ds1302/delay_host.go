//go:build !tinygo

package ds1302

import "time"

type busyWait struct{}

// DelayMicroseconds spins instead of sleeping; the scheduler cannot wake a
// goroutine with microsecond accuracy.
func (busyWait) DelayMicroseconds(us uint32) {
	d := time.Duration(us) * time.Microsecond
	for start := time.Now(); time.Since(start) < d; {
	}
}
