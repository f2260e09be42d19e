package main

import (
	"context"
	"encoding/hex"
	"io"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/mklimuk/pmic"
	"github.com/mklimuk/pmic/axp209"
	"github.com/mklimuk/pmic/cmd/pmic/console"
)

var regCmd = cli.Command{
	Name:  "reg",
	Usage: "raw register access for debugging",
	Subcommands: cli.Commands{
		&regReadCmd,
	},
}

var regReadCmd = cli.Command{
	Name:      "read",
	Usage:     "read device registers; interactive when no register is given",
	ArgsUsage: "[register]",
	Flags: append([]cli.Flag{
		&cli.IntFlag{Name: "count", Value: 2, Usage: "number of bytes to read"},
		&cli.IntFlag{Name: "device", Value: int(axp209.DefaultAddress), Usage: "7-bit device address"},
	}, adapterFlags...),
	Action: func(c *cli.Context) error {
		ctx := console.SetVerbose(context.Background(), c.Bool("verbose"))
		bus, err := openBus(c)
		if err != nil {
			return console.Exit(1, "adapter initialization error: %s", console.Red(err))
		}
		address := byte(c.Int("device"))
		count := c.Int("count")
		if count <= 0 || count > 32 {
			return console.Exit(1, "count out of range: %d", count)
		}
		if c.NArg() > 0 {
			reg, err := parseRegister(c.Args().First())
			if err != nil {
				return console.Exit(1, "invalid register: %s", console.Red(err))
			}
			return dumpRegister(ctx, bus, address, reg, count)
		}
		// interactive mode
		for {
			line, err := console.Prompt("register (hex, empty to quit): ")
			if err == io.EOF || err == nil && line == "" {
				return nil
			}
			if err != nil {
				return console.Exit(1, "prompt error: %s", console.Red(err))
			}
			reg, err := parseRegister(line)
			if err != nil {
				console.Errorf("invalid register: %s", console.Red(err))
				continue
			}
			err = dumpRegister(ctx, bus, address, reg, count)
			if err != nil {
				console.Errorf("read failed: %s", console.Red(err))
			}
		}
	},
}

func parseRegister(s string) (byte, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return byte(v), nil
}

func dumpRegister(ctx context.Context, bus pmic.I2CBus, address, reg byte, count int) error {
	buf := make([]byte, count)
	err := bus.Tx(ctx, address, []byte{reg}, buf)
	if err != nil {
		return err
	}
	console.Printf("%s", hex.Dump(buf))
	return nil
}
