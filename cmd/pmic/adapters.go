package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gobot.io/x/gobot/v2/platforms/friendlyelec/nanopi"

	"github.com/mklimuk/pmic"
	"github.com/mklimuk/pmic/adapter"
	"github.com/mklimuk/pmic/i2c"
)

var adapterFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "adapter",
		Aliases: []string{"a"},
		Value:   "mcp2221",
		Usage:   "bus adapter: mcp2221, i2c, nanopi",
	},
	&cli.StringFlag{
		Name:  "dev",
		Value: "/dev/i2c-0",
		Usage: "bus device name (i2c adapter)",
	},
	&cli.IntFlag{
		Name:  "bus",
		Value: 0,
		Usage: "bus number (nanopi adapter)",
	},
	&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
}

func openBus(c *cli.Context) (pmic.I2CBus, error) {
	switch c.String("adapter") {
	case "mcp2221":
		return adapter.NewMCP2221(), nil
	case "i2c":
		return i2c.NewGenericBus(c.String("dev"))
	case "nanopi":
		npi := nanopi.NewNeoAdaptor()
		err := npi.I2cBusAdaptor.Connect()
		if err != nil {
			return nil, fmt.Errorf("adaptor connect error: %w", err)
		}
		return adapter.NewGobotBus(npi, c.Int("bus")), nil
	}
	return nil, fmt.Errorf("unknown adapter %q", c.String("adapter"))
}
