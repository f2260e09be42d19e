package i2c

import (
	"context"
	"fmt"

	"github.com/mklimuk/pmic"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

var _ pmic.I2CBus = &GenericBus{}

// GenericBus drives a kernel-exposed I2C bus through periph.io. The
// underlying Tx is a combined write-then-read transaction with a repeated
// start, so register reads are atomic on the wire.
type GenericBus struct {
	bus i2c.BusCloser
}

func NewGenericBus(dev string) (*GenericBus, error) {
	_, err := host.Init()
	if err != nil {
		return nil, fmt.Errorf("could not init host: %w", err)
	}
	bus, err := i2creg.Open(dev)
	if err != nil {
		return nil, fmt.Errorf("could not open i2c bus: %w", err)
	}
	return &GenericBus{
		bus: bus,
	}, nil
}

func (b *GenericBus) Tx(ctx context.Context, address byte, out []byte, in []byte) error {
	return b.bus.Tx(uint16(address), out, in)
}

func (b *GenericBus) Release(ctx context.Context) error {
	return nil
}

func (b *GenericBus) Close() error {
	return b.bus.Close()
}
