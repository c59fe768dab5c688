//go:build tinygo

package ds1302

import (
	"time"

	"tinygo.org/x/drivers/delay"
)

type busyWait struct{}

func (busyWait) DelayMicroseconds(us uint32) {
	delay.Sleep(time.Duration(us) * time.Microsecond)
}
