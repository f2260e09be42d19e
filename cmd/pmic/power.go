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

var telemetryCmd = cli.Command{
	Name:    "telemetry",
	Aliases: []string{"t"},
	Usage:   "read all ADC telemetry channels",
	Flags:   adapterFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		dev := axp209.New(bus)

		batV, err := dev.BatteryVoltage(ctx)
		if err != nil {
			return readError("battery voltage", err)
		}
		chargeI, err := dev.BatteryChargingCurrent(ctx)
		if err != nil {
			return readError("battery charge current", err)
		}
		dischargeI, err := dev.BatteryDischargingCurrent(ctx)
		if err != nil {
			return readError("battery discharge current", err)
		}
		level, err := dev.BatteryLevel(ctx)
		if err != nil {
			return readError("battery level", err)
		}
		acinV, err := dev.ACINVoltage(ctx)
		if err != nil {
			return readError("acin voltage", err)
		}
		acinI, err := dev.ACINCurrent(ctx)
		if err != nil {
			return readError("acin current", err)
		}
		vbusV, err := dev.VBUSVoltage(ctx)
		if err != nil {
			return readError("vbus voltage", err)
		}
		vbusI, err := dev.VBUSCurrent(ctx)
		if err != nil {
			return readError("vbus current", err)
		}
		temp, err := dev.Temperature(ctx)
		if err != nil {
			return readError("die temperature", err)
		}
		power, err := dev.BatteryPower(ctx)
		if err != nil {
			return readError("battery power", err)
		}
		ipsout, err := dev.IpsoutVoltage(ctx)
		if err != nil {
			return readError("ipsout voltage", err)
		}

		if level == axp209.BatteryLevelMissing {
			console.PInfof(console.PictoStop, "battery absent")
		} else {
			console.PInfof(console.PictoBattery, "battery level %s%%", console.White(level))
		}
		console.PInfof(console.PictoBattery, "battery %s mV, %s mA in, %s mA out, %s mW",
			console.White(batV), console.White(chargeI), console.White(dischargeI), console.White(power))
		console.PInfof(console.PictoPlug, "acin %s mV, %s mA", console.White(acinV), console.White(acinI))
		console.PInfof(console.PictoPlug, "vbus %s mV, %s mA", console.White(vbusV), console.White(vbusI))
		console.PInfof(console.PictoLightning, "ipsout %s mV", console.White(ipsout))
		console.PInfof(console.PictoThermometer, "die temperature %s°C", console.White(temp))
		return nil
	},
}

var statusCmd = cli.Command{
	Name:  "status",
	Usage: "decode power and battery status registers",
	Flags: adapterFlags,
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		dev := axp209.New(bus)
		power, err := dev.PowerStatus(ctx)
		if err != nil {
			return readError("power status", err)
		}
		battery, err := dev.BatteryStatus(ctx)
		if err != nil {
			return readError("battery status", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 24, 0, 1, ' ', 0)
		_, _ = fmt.Fprintf(w, "acin present\t%v\n", power.Has(axp209.PowerAcinPresent))
		_, _ = fmt.Fprintf(w, "acin usable\t%v\n", power.Has(axp209.PowerAcinUsable))
		_, _ = fmt.Fprintf(w, "vbus present\t%v\n", power.Has(axp209.PowerVbusPresent))
		_, _ = fmt.Fprintf(w, "vbus usable\t%v\n", power.Has(axp209.PowerVbusUsable))
		_, _ = fmt.Fprintf(w, "charging\t%v\n", power.Has(axp209.PowerBatteryCharging))
		_, _ = fmt.Fprintf(w, "battery connected\t%v\n", battery.Has(axp209.BatteryConnected))
		_, _ = fmt.Fprintf(w, "battery activation mode\t%v\n", battery.Has(axp209.BatteryActivationMode))
		_, _ = fmt.Fprintf(w, "over temperature\t%v\n", battery.Has(axp209.BatteryOverTemperature))
		return w.Flush()
	},
}

func readError(what string, err error) error {
	return console.Exit(1, "could not read %s: %s", what, console.Red(err))
}
