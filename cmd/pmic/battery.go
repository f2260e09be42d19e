package main

import (
	"context"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/pmic/axp209"
	"github.com/mklimuk/pmic/cmd/pmic/console"
)

var batteryCmd = cli.Command{
	Name:    "battery",
	Aliases: []string{"bat"},
	Subcommands: cli.Commands{
		&batteryLevelCmd,
		&batteryVoltageCmd,
		&batteryCurrentCmd,
		&batteryCoulombCmd,
	},
}

var batteryLevelCmd = cli.Command{
	Name:  "level",
	Usage: "fuel gauge charge estimate",
	Flags: adapterFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		dev := axp209.New(bus)
		level, err := dev.BatteryLevel(ctx)
		if err != nil {
			return readError("battery level", err)
		}
		if level == axp209.BatteryLevelMissing {
			console.PInfof(console.PictoStop, "battery absent")
			return nil
		}
		console.PInfof(console.PictoBattery, "%s%%", console.White(level))
		return nil
	},
}

var batteryVoltageCmd = cli.Command{
	Name:  "voltage",
	Usage: "battery rail voltage",
	Flags: adapterFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		dev := axp209.New(bus)
		mv, err := dev.BatteryVoltage(ctx)
		if err != nil {
			return readError("battery voltage", err)
		}
		console.PInfof(console.PictoBattery, "%s mV", console.White(mv))
		return nil
	},
}

var batteryCurrentCmd = cli.Command{
	Name:  "current",
	Usage: "battery charge and discharge current",
	Flags: adapterFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		dev := axp209.New(bus)
		charge, err := dev.BatteryChargingCurrent(ctx)
		if err != nil {
			return readError("battery charge current", err)
		}
		discharge, err := dev.BatteryDischargingCurrent(ctx)
		if err != nil {
			return readError("battery discharge current", err)
		}
		console.PInfof(console.PictoBattery, "charge %s mA, discharge %s mA", console.White(charge), console.White(discharge))
		return nil
	},
}

var batteryCoulombCmd = cli.Command{
	Name:  "coulomb",
	Usage: "raw coulomb counter accumulators",
	Flags: adapterFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		dev := axp209.New(bus)
		charge, err := dev.CoulombCharge(ctx)
		if err != nil {
			return readError("coulomb charge counter", err)
		}
		discharge, err := dev.CoulombDischarge(ctx)
		if err != nil {
			return readError("coulomb discharge counter", err)
		}
		console.PInfof(console.PictoLightning, "charge %s, discharge %s", console.White(charge), console.White(discharge))
		return nil
	},
}
