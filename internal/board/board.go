// Package board describes how a DS1302 is wired to a Linux host and opens its lines.
package board

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/ajanata/tinygo-drivers/ds1302/hostline"
)

const (
	BackendGPIOD  = "gpiod"
	BackendPeriph = "periph"
)

var ErrInvalid = errors.New("board: invalid configuration")

// Config names the backend and the three lines. With gpiod the lines are offsets on Chip; with periph they are
// pin names such as "GPIO17".
type Config struct {
	Backend string `yaml:"backend"`
	Chip    string `yaml:"chip"`
	CE      string `yaml:"ce"`
	SCLK    string `yaml:"sclk"`
	IO      string `yaml:"io"`
}

// Default is the wiring used by most Raspberry Pi DS1302 modules.
func Default() Config {
	return Config{
		Backend: BackendGPIOD,
		Chip:    "gpiochip0",
		CE:      "17",
		SCLK:    "27",
		IO:      "22",
	}
}

// Parse reads a YAML board description. Missing keys keep their defaults.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("board: %w", err)
	}
	return c, c.Validate()
}

// Load parses the board file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

func (c Config) Validate() error {
	switch c.Backend {
	case BackendGPIOD:
		if c.Chip == "" {
			return fmt.Errorf("%w: gpiod needs a chip", ErrInvalid)
		}
		if _, err := c.offsets(); err != nil {
			return err
		}
	case BackendPeriph:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	if c.CE == "" || c.SCLK == "" || c.IO == "" {
		return fmt.Errorf("%w: ce, sclk and io are required", ErrInvalid)
	}
	if c.CE == c.SCLK || c.CE == c.IO || c.SCLK == c.IO {
		return fmt.Errorf("%w: lines must be distinct", ErrInvalid)
	}
	return nil
}

func (c Config) offsets() ([3]int, error) {
	var o [3]int
	for i, s := range [...]string{c.CE, c.SCLK, c.IO} {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return o, fmt.Errorf("%w: line %q is not an offset", ErrInvalid, s)
		}
		o[i] = n
	}
	return o, nil
}

// Open validates c and requests its lines.
func Open(c Config) (*hostline.Lines, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.Backend == BackendPeriph {
		return hostline.OpenPeriph(c.CE, c.SCLK, c.IO)
	}
	o, _ := c.offsets()
	return hostline.OpenGPIOD(c.Chip, o[0], o[1], o[2])
}
