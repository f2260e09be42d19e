package adapter

import (
	"context"
	"fmt"

	"gobot.io/x/gobot/v2/drivers/i2c"

	"github.com/mklimuk/pmic"
)

var _ pmic.I2CBus = &GobotBus{}

// GobotBus exposes a gobot i2c connector as a pmic transport. Useful on
// boards where the PMIC hangs off a platform adaptor (the NanoPi family
// carries the AXP209 on bus 0).
type GobotBus struct {
	connector i2c.Connector
	bus       int
	conns     map[byte]i2c.Connection
}

func NewGobotBus(connector i2c.Connector, bus int) *GobotBus {
	return &GobotBus{
		connector: connector,
		bus:       bus,
		conns:     map[byte]i2c.Connection{},
	}
}

func (b *GobotBus) connection(address byte) (i2c.Connection, error) {
	conn, ok := b.conns[address]
	if ok {
		return conn, nil
	}
	conn, err := b.connector.GetI2cConnection(int(address), b.bus)
	if err != nil {
		return nil, fmt.Errorf("could not get i2c connection to %#x: %w", address, err)
	}
	b.conns[address] = conn
	return conn, nil
}

func (b *GobotBus) Tx(ctx context.Context, address byte, out []byte, in []byte) error {
	conn, err := b.connection(address)
	if err != nil {
		return err
	}
	// single register byte out plus a read maps to an SMBus block read,
	// which gobot executes as one combined transaction
	if len(out) == 1 && len(in) > 0 {
		return conn.ReadBlockData(out[0], in)
	}
	if len(in) == 0 {
		return conn.WriteBytes(out)
	}
	err = conn.WriteBytes(out)
	if err != nil {
		return err
	}
	_, err = conn.Read(in)
	return err
}

func (b *GobotBus) Release(ctx context.Context) error {
	return nil
}

func (b *GobotBus) Close() error {
	var last error
	for _, conn := range b.conns {
		err := conn.Close()
		if err != nil {
			last = err
		}
	}
	return last
}
