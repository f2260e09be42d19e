package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/pmic/axp209"
	"github.com/mklimuk/pmic/cmd/pmic/console"
)

var adcCmd = cli.Command{
	Name:  "adc",
	Usage: "inspect and control ADC channel sampling",
	Subcommands: cli.Commands{
		&adcStatusCmd,
		&adcEnableCmd,
		&adcDisableCmd,
	},
}

var adcStatusCmd = cli.Command{
	Name:  "status",
	Usage: "list ADC channels and their sampling state",
	Flags: adapterFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		dev := axp209.New(bus)
		status, err := dev.ADCControl(ctx)
		if err != nil {
			return readError("adc control", err)
		}
		w := tabwriter.NewWriter(os.Stdout, 24, 0, 1, ' ', 0)
		_, _ = fmt.Fprintf(w, "CHANNEL\tSAMPLING\n")
		for _, name := range (axp209.AdcStatus(0xFFFF)).Channels() {
			flag, _ := axp209.ChannelFlag(name)
			_, _ = fmt.Fprintf(w, "%s\t%v\n", name, status.Enabled(flag))
		}
		return w.Flush()
	},
}

var adcEnableCmd = cli.Command{
	Name:      "enable",
	Usage:     "enable sampling on the given channels",
	ArgsUsage: "<channel>...",
	Flags:     adapterFlags,
	Action: func(c *cli.Context) error {
		return setChannels(c, true)
	},
}

var adcDisableCmd = cli.Command{
	Name:      "disable",
	Usage:     "disable sampling on the given channels",
	ArgsUsage: "<channel>...",
	Flags:     adapterFlags,
	Action: func(c *cli.Context) error {
		return setChannels(c, false)
	},
}

func setChannels(c *cli.Context, enable bool) error {
	if c.NArg() == 0 {
		return console.Exit(1, "no channels given; see %s for names", console.White("pmic adc status"))
	}
	var flags axp209.AdcStatus
	for _, name := range c.Args().Slice() {
		flag, ok := axp209.ChannelFlag(name)
		if !ok {
			return console.Exit(1, "unknown channel %s", console.Red(name))
		}
		flags = flags.With(flag)
	}
	ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
	bus, err := openBus(c)
	if err != nil {
		return console.Exit(1, "adapter initialization error: %s", console.Red(err))
	}
	dev := axp209.New(bus)
	status, err := dev.ADCControl(ctx)
	if err != nil {
		return readError("adc control", err)
	}
	if enable {
		status = status.With(flags)
	} else {
		status = status.Without(flags)
	}
	err = dev.SetADCControl(ctx, status)
	if err != nil {
		return console.Exit(1, "could not write adc control: %s", console.Red(err))
	}
	console.Infof("sampling channels: %s", console.White(status))
	return nil
}
