package pmic

import (
	"context"
	"fmt"
)

var ErrBusBusy = fmt.Errorf("I2C engine is busy (command not completed)")

// BusTransactor executes a single write-then-read exchange against a 7-bit
// device address. The write and the read form one atomic bus operation; the
// bus is not released between them. A nil or empty incoming buffer makes the
// transaction a plain write.
type BusTransactor interface {
	Tx(ctx context.Context, address byte, out []byte, in []byte) error
}

type BusReleaser interface {
	Release(ctx context.Context) error
}

type I2CBus interface {
	BusTransactor
	BusReleaser
}
