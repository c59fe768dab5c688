// Command ds1302ctl reads and sets a DS1302 wired to the GPIO lines of a Linux host.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/ajanata/tinygo-drivers/ds1302"
	"github.com/ajanata/tinygo-drivers/internal/board"
)

var (
	boardFile string
	overrides board.Config

	rootCmd = &cobra.Command{
		Use:           "ds1302ctl",
		Short:         "Control a DS1302 real-time clock",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// glog reads its flags from the standard flag set, which cobra has already filled.
			flag.CommandLine.Parse(nil)
			ds1302.Log = glogger{}
		},
	}
)

type glogger struct{}

func (glogger) Println(msg string) error {
	glog.V(1).Info(msg)
	return nil
}

func init() {
	f := rootCmd.PersistentFlags()
	f.StringVarP(&boardFile, "board", "b", "", "YAML board file")
	f.StringVar(&overrides.Backend, "backend", "", "line backend: gpiod or periph")
	f.StringVar(&overrides.Chip, "chip", "", "gpiod chip name")
	f.StringVar(&overrides.CE, "ce", "", "chip enable line")
	f.StringVar(&overrides.SCLK, "sclk", "", "serial clock line")
	f.StringVar(&overrides.IO, "io", "", "data line")
	f.AddGoFlagSet(flag.CommandLine)
}

func main() {
	defer glog.Flush()
	if err := rootCmd.Execute(); err != nil {
		glog.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, "ds1302ctl:", err)
		glog.Flush()
		os.Exit(1)
	}
}

// boardConfig loads the board file when given and applies the flag overrides.
func boardConfig() (board.Config, error) {
	c := board.Default()
	if boardFile != "" {
		var err error
		if c, err = board.Load(boardFile); err != nil {
			return board.Config{}, err
		}
	}
	for _, o := range []struct {
		dst *string
		v   string
	}{
		{&c.Backend, overrides.Backend},
		{&c.Chip, overrides.Chip},
		{&c.CE, overrides.CE},
		{&c.SCLK, overrides.SCLK},
		{&c.IO, overrides.IO},
	} {
		if o.v != "" {
			*o.dst = o.v
		}
	}
	return c, c.Validate()
}

// withDevice opens and configures the chip, runs fn and releases the lines.
func withDevice(fn func(d *ds1302.Device) error) error {
	c, err := boardConfig()
	if err != nil {
		return err
	}
	lines, err := board.Open(c)
	if err != nil {
		return err
	}
	defer lines.Close()
	glog.V(1).Infof("opened %s lines ce=%s sclk=%s io=%s", c.Backend, c.CE, c.SCLK, c.IO)

	d := ds1302.New(lines.CE, lines.SCLK, lines.IO)
	if err := d.Configure(ds1302.Config{}); err != nil {
		return err
	}
	return fn(d)
}
