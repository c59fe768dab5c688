//go:build !linux

package hostline

import "errors"

// OpenGPIOD is only available on Linux.
func OpenGPIOD(chip string, ce, sclk, io int) (*Lines, error) {
	return nil, errors.New("hostline: gpiod requires linux")
}
