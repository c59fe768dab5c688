// Package hostline provides ds1302.Line implementations for Linux hosts: GPIO character device lines through gpiod
// and named pins through periph.io.
package hostline

import (
	"errors"

	"github.com/ajanata/tinygo-drivers/ds1302"
)

// Lines is an opened set of bus lines.
type Lines struct {
	CE, SCLK, IO ds1302.Line

	closers []func() error
}

func (l *Lines) onClose(f func() error) {
	l.closers = append(l.closers, f)
}

// openLines requests ce, sclk and io with req, in that order. release is run
// last on Close. When a request fails everything already requested is
// released and the request error is returned.
func openLines(req func(offset int) (ds1302.Line, func() error, error), ce, sclk, io int, release func() error) (*Lines, error) {
	ls := &Lines{}
	if release != nil {
		ls.onClose(release)
	}
	for _, r := range []struct {
		offset int
		dst    *ds1302.Line
	}{
		{ce, &ls.CE},
		{sclk, &ls.SCLK},
		{io, &ls.IO},
	} {
		line, closer, err := req(r.offset)
		if err != nil {
			ls.Close()
			return nil, err
		}
		ls.onClose(closer)
		*r.dst = line
	}
	return ls, nil
}

// Close releases every line and the device behind them.
func (l *Lines) Close() error {
	var errs []error
	for i := len(l.closers) - 1; i >= 0; i-- {
		if err := l.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	l.closers = nil
	return errors.Join(errs...)
}
