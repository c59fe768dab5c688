// Package clockface draws the time read from a DS1302 as one line of text on any display.
package clockface

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"github.com/ajanata/tinygo-drivers/ds1302"
)

type Face struct {
	display drivers.Displayer
	font    *tinyfont.Font
	x, y    int16
	height  int16
	fg, bg  color.RGBA
	date    bool
	buf     [19]byte
}

type Config struct {
	// Font defaults to TomThumb, Height to its line height.
	Font   *tinyfont.Font
	Height int16
	// X and Y locate the baseline of the text.
	X, Y       int16
	Foreground color.RGBA
	Background color.RGBA
	// ShowDate prefixes the time with the date.
	ShowDate bool
}

func New(display drivers.Displayer) *Face {
	return &Face{
		display: display,
	}
}

func (f *Face) Configure(c Config) {
	if c.Font == nil {
		c.Font = &tinyfont.TomThumb
		if c.Height == 0 {
			c.Height = 6
		}
	}
	if c.Height == 0 {
		c.Height = 8
	}
	if c.Y == 0 {
		c.Y = c.Height - 1
	}
	if c.Foreground == (color.RGBA{}) {
		c.Foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	f.font = c.Font
	f.x, f.y = c.X, c.Y
	f.height = c.Height
	f.fg, f.bg = c.Foreground, c.Background
	f.date = c.ShowDate
}

// Draw clears the text line and writes t on it.
func (f *Face) Draw(t ds1302.DateTime) error {
	w, _ := f.display.Size()
	for y := f.y - f.height + 1; y <= f.y; y++ {
		for x := int16(0); x < w; x++ {
			f.display.SetPixel(x, y, f.bg)
		}
	}
	tinyfont.WriteLine(f.display, f.font, f.x, f.y, f.Format(t), f.fg)
	return f.display.Display()
}

// Format renders t as "15:04:05", or "2006-01-02 15:04:05" with ShowDate.
func (f *Face) Format(t ds1302.DateTime) string {
	b := f.buf[:0]
	if f.date {
		b = appendDigits(b, t.Year, 4)
		b = append(b, '-')
		b = appendDigits(b, int(t.Month), 2)
		b = append(b, '-')
		b = appendDigits(b, t.Day, 2)
		b = append(b, ' ')
	}
	b = appendDigits(b, t.Hour, 2)
	b = append(b, ':')
	b = appendDigits(b, t.Minute, 2)
	b = append(b, ':')
	b = appendDigits(b, t.Second, 2)
	return string(b)
}

// appendDigits appends the lowest n decimal digits of v, zero padded.
func appendDigits(b []byte, v, n int) []byte {
	if v < 0 {
		v = -v
	}
	start := len(b)
	for i := 0; i < n; i++ {
		b = append(b, '0')
	}
	for i := len(b) - 1; i >= start; i-- {
		b[i] = byte('0' + v%10)
		v /= 10
	}
	return b
}
