package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/ajanata/tinygo-drivers/ds1302"
)

var (
	timeCmd = &cobra.Command{
		Use:   "time",
		Short: "Print the time held by the clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(func(d *ds1302.Device) error {
				t, err := d.GetTime()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), formatTime(t))
				return nil
			})
		},
	}

	setCmd = &cobra.Command{
		Use:   "set [RFC3339 time]",
		Short: "Set the clock, to the host time in UTC when no time is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t := time.Now().UTC()
			if len(args) == 1 {
				var err error
				if t, err = time.Parse(time.RFC3339, args[0]); err != nil {
					return err
				}
			}
			return withDevice(func(d *ds1302.Device) error {
				if err := d.Set(t); err != nil {
					return err
				}
				glog.Infof("clock set to %s", t.Format(time.RFC3339))
				return nil
			})
		},
	}

	startCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the oscillator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(func(d *ds1302.Device) error { return d.Start(true) })
		},
	}

	stopCmd = &cobra.Command{
		Use:   "stop",
		Short: "Halt the oscillator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(func(d *ds1302.Device) error { return d.Start(false) })
		},
	}

	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Print oscillator, write protection and trickle charger state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(func(d *ds1302.Device) error {
				running, err := d.IsRunning()
				if err != nil {
					return err
				}
				wp, err := d.WriteProtect()
				if err != nil {
					return err
				}
				tc, err := d.TrickleCharger()
				if err != nil {
					return err
				}
				t, err := d.GetTime()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "running:        %t\n", running)
				fmt.Fprintf(out, "write protect:  %t\n", wp)
				fmt.Fprintf(out, "trickle:        %s\n", formatTrickle(tc))
				fmt.Fprintf(out, "time:           %s\n", formatTime(t))
				return nil
			})
		},
	}

	wpCmd = &cobra.Command{
		Use:       "wp on|off",
		Short:     "Set or clear write protection",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDevice(func(d *ds1302.Device) error { return d.SetWriteProtect(args[0] == "on") })
		},
	}

	trickleCmd = &cobra.Command{
		Use:   "trickle off | trickle <diodes 1-2> <resistor 2k|4k|8k>",
		Short: "Configure the trickle charger",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tc, err := parseTrickle(args)
			if err != nil {
				return err
			}
			return withDevice(func(d *ds1302.Device) error { return d.SetTrickleCharger(tc) })
		},
	}

	ramCmd = &cobra.Command{
		Use:   "ram",
		Short: "Access the scratch RAM",
	}

	ramReadCmd = &cobra.Command{
		Use:   "read [offset [length]]",
		Short: "Dump scratch RAM",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, length := 0, ds1302.RAMSize
			var err error
			if len(args) > 0 {
				if offset, err = strconv.Atoi(args[0]); err != nil {
					return err
				}
				length = ds1302.RAMSize - offset
			}
			if len(args) > 1 {
				if length, err = strconv.Atoi(args[1]); err != nil {
					return err
				}
			}
			if offset < 0 || offset >= ds1302.RAMSize || length < 0 {
				return ds1302.ErrInvalidArgument
			}
			buf := make([]byte, length)
			return withDevice(func(d *ds1302.Device) error {
				if err := d.ReadRAM(uint8(offset), buf); err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), hex.Dump(buf))
				return nil
			})
		},
	}

	ramWriteCmd = &cobra.Command{
		Use:   "write <offset> <hex bytes>",
		Short: "Write scratch RAM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			offset, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			if offset < 0 || offset >= ds1302.RAMSize {
				return ds1302.ErrInvalidArgument
			}
			data, err := hex.DecodeString(args[1])
			if err != nil {
				return err
			}
			return withDevice(func(d *ds1302.Device) error { return d.WriteRAM(uint8(offset), data) })
		},
	}
)

func init() {
	ramCmd.AddCommand(ramReadCmd, ramWriteCmd)
	rootCmd.AddCommand(timeCmd, setCmd, startCmd, stopCmd, statusCmd, wpCmd, trickleCmd, ramCmd)
}

func formatTime(t ds1302.DateTime) string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d %s",
		t.Year, int(t.Month), t.Day, t.Hour, t.Minute, t.Second, t.Weekday)
}

func formatTrickle(tc ds1302.TrickleCharger) string {
	if !tc.Enabled() {
		return "off"
	}
	return fmt.Sprintf("%d diode(s), %dk", tc.Diodes, 1<<tc.Resistor)
}

func parseTrickle(args []string) (ds1302.TrickleCharger, error) {
	if len(args) == 1 {
		if args[0] != "off" {
			return ds1302.TrickleCharger{}, fmt.Errorf("expected off or <diodes> <resistor>")
		}
		return ds1302.TrickleCharger{}, nil
	}
	var tc ds1302.TrickleCharger
	switch args[0] {
	case "1":
		tc.Diodes = ds1302.OneDiode
	case "2":
		tc.Diodes = ds1302.TwoDiodes
	default:
		return tc, fmt.Errorf("diodes must be 1 or 2, got %q", args[0])
	}
	switch args[1] {
	case "2k":
		tc.Resistor = ds1302.Resistor2K
	case "4k":
		tc.Resistor = ds1302.Resistor4K
	case "8k":
		tc.Resistor = ds1302.Resistor8K
	default:
		return tc, fmt.Errorf("resistor must be 2k, 4k or 8k, got %q", args[1])
	}
	return tc, nil
}
