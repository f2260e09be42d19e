package axp209

import (
	"context"
	"encoding/binary"

	"github.com/mklimuk/pmic"
)

// DefaultAddress is the fixed 7-bit bus address of the AXP209.
const DefaultAddress byte = 0x34

// BatteryLevelMissing is the reserved battery level readout reported when no
// battery is connected. It sits outside the legitimate 0-100 range.
const BatteryLevelMissing byte = 0x7F

// AXP209 represents an X-Powers AXP209 power management IC. It exposes the
// chip's ADC telemetry (rail voltages, currents, temperature, battery charge
// state) in physical units.
//
// Every accessor performs one blocking bus transaction; nothing is cached
// between calls. The device owns its transport exclusively and does not
// support concurrent invocation; serialize access externally if the bus
// handle is shared.
type AXP209 struct {
	transport pmic.I2CBus
	address   byte
}

type Config struct {
	Address byte
}

type ConfigOption func(*Config)

func WithAddress(address byte) ConfigOption {
	return func(c *Config) {
		c.Address = address
	}
}

// New creates an AXP209 connector over the given transport. The address
// defaults to 0x34 unless overridden.
func New(trans pmic.I2CBus, opts ...ConfigOption) *AXP209 {
	config := &Config{
		Address: DefaultAddress,
	}
	for _, opt := range opts {
		opt(config)
	}
	return &AXP209{transport: trans, address: config.Address}
}

// readRegister selects reg and reads len(buf) bytes back in one bus
// transaction. Transport errors pass through untouched so callers can match
// them with errors.Is; there is no retry.
func (d *AXP209) readRegister(ctx context.Context, reg byte, buf []byte) error {
	return d.transport.Tx(ctx, d.address, []byte{reg}, buf)
}

func (d *AXP209) readByte(ctx context.Context, reg byte) (byte, error) {
	buf := make([]byte, 1)
	err := d.readRegister(ctx, reg, buf)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

// readADC10 fetches a two-byte ADC sample packed in the 10-bit layout.
func (d *AXP209) readADC10(ctx context.Context, reg byte) (uint16, error) {
	buf := make([]byte, 2)
	err := d.readRegister(ctx, reg, buf)
	if err != nil {
		return 0, err
	}
	return decodeADC10(buf[0], buf[1]), nil
}

// BatteryVoltage returns the battery rail voltage in millivolts.
func (d *AXP209) BatteryVoltage(ctx context.Context) (uint16, error) {
	raw, err := d.readADC10(ctx, regBatteryVoltage)
	if err != nil {
		return 0, err
	}
	return convertBatteryVoltage(raw), nil
}

// BatteryChargingCurrent returns the battery charge current in milliamps.
func (d *AXP209) BatteryChargingCurrent(ctx context.Context) (uint16, error) {
	raw, err := d.readADC10(ctx, regBatteryChargeCurrent)
	if err != nil {
		return 0, err
	}
	return convertBatteryCurrent(raw), nil
}

// BatteryDischargingCurrent returns the battery discharge current in
// milliamps. This channel is the odd one out: its sample is 11 bits wide.
func (d *AXP209) BatteryDischargingCurrent(ctx context.Context) (uint16, error) {
	buf := make([]byte, 2)
	err := d.readRegister(ctx, regBatteryDischargeCurrent, buf)
	if err != nil {
		return 0, err
	}
	return convertBatteryCurrent(decodeADC11(buf[0], buf[1])), nil
}

// ACINVoltage returns the AC input rail voltage in millivolts.
func (d *AXP209) ACINVoltage(ctx context.Context) (uint16, error) {
	raw, err := d.readADC10(ctx, regAcinVoltage)
	if err != nil {
		return 0, err
	}
	return convertInputVoltage(raw), nil
}

// ACINCurrent returns the AC input rail current in milliamps.
func (d *AXP209) ACINCurrent(ctx context.Context) (uint16, error) {
	raw, err := d.readADC10(ctx, regAcinCurrent)
	if err != nil {
		return 0, err
	}
	return convertAcinCurrent(raw), nil
}

// VBUSVoltage returns the USB input rail voltage in millivolts.
func (d *AXP209) VBUSVoltage(ctx context.Context) (uint16, error) {
	raw, err := d.readADC10(ctx, regVbusVoltage)
	if err != nil {
		return 0, err
	}
	return convertInputVoltage(raw), nil
}

// VBUSCurrent returns the USB input rail current in milliamps.
func (d *AXP209) VBUSCurrent(ctx context.Context) (uint16, error) {
	raw, err := d.readADC10(ctx, regVbusCurrent)
	if err != nil {
		return 0, err
	}
	return convertVbusCurrent(raw), nil
}

// Temperature returns the die temperature in degrees Celsius.
func (d *AXP209) Temperature(ctx context.Context) (int16, error) {
	raw, err := d.readADC10(ctx, regTemperature)
	if err != nil {
		return 0, err
	}
	return convertTemperature(raw), nil
}

// BatteryTemperatureSense returns the voltage on the TS battery temperature
// sense pin in millivolts.
func (d *AXP209) BatteryTemperatureSense(ctx context.Context) (uint16, error) {
	raw, err := d.readADC10(ctx, regBatteryTemperature)
	if err != nil {
		return 0, err
	}
	return convertTsVoltage(raw), nil
}

// GPIO0Voltage returns the GPIO0 ADC input voltage in millivolts.
func (d *AXP209) GPIO0Voltage(ctx context.Context) (uint16, error) {
	raw, err := d.readADC10(ctx, regGpio0Voltage)
	if err != nil {
		return 0, err
	}
	return convertGpioVoltage(raw), nil
}

// GPIO1Voltage returns the GPIO1 ADC input voltage in millivolts.
func (d *AXP209) GPIO1Voltage(ctx context.Context) (uint16, error) {
	raw, err := d.readADC10(ctx, regGpio1Voltage)
	if err != nil {
		return 0, err
	}
	return convertGpioVoltage(raw), nil
}

// IpsoutVoltage returns the system IPSOUT rail voltage in millivolts.
func (d *AXP209) IpsoutVoltage(ctx context.Context) (uint16, error) {
	raw, err := d.readADC10(ctx, regIpsoutVoltage)
	if err != nil {
		return 0, err
	}
	return convertIpsoutVoltage(raw), nil
}

// BatteryPower returns the instantaneous battery power in milliwatts. The
// sample is a 24-bit big-endian value spread over three registers.
func (d *AXP209) BatteryPower(ctx context.Context) (uint32, error) {
	buf := make([]byte, 3)
	err := d.readRegister(ctx, regBatteryPower, buf)
	if err != nil {
		return 0, err
	}
	raw := uint32(buf[0])<<16 | uint32(buf[1])<<8 | uint32(buf[2])
	return convertBatteryPower(raw), nil
}

// BatteryLevel returns the fuel gauge charge estimate in percent. The top
// bit of the register is a sampling enable control bit and gets masked off.
// A result equal to BatteryLevelMissing means no battery is connected.
func (d *AXP209) BatteryLevel(ctx context.Context) (byte, error) {
	level, err := d.readByte(ctx, regBatteryLevel)
	if err != nil {
		return 0, err
	}
	return level & 0x7F, nil
}

// BatteryPresent reports whether a battery is connected, derived from the
// battery level readout not being the missing sentinel.
func (d *AXP209) BatteryPresent(ctx context.Context) (bool, error) {
	level, err := d.BatteryLevel(ctx)
	if err != nil {
		return false, err
	}
	return level != BatteryLevelMissing, nil
}

// ADCControl returns the sampling enable state of every ADC channel.
func (d *AXP209) ADCControl(ctx context.Context) (AdcStatus, error) {
	buf := make([]byte, 2)
	err := d.readRegister(ctx, regAdcControl, buf)
	if err != nil {
		return 0, err
	}
	return AdcStatus(binary.BigEndian.Uint16(buf)), nil
}

// SetADCControl writes the sampling enable state of every ADC channel.
func (d *AXP209) SetADCControl(ctx context.Context, status AdcStatus) error {
	return d.transport.Tx(ctx, d.address, []byte{regAdcControl, byte(status >> 8), byte(status)}, nil)
}

// PowerStatus returns the decoded input power status register.
func (d *AXP209) PowerStatus(ctx context.Context) (PowerStatus, error) {
	status, err := d.readByte(ctx, regPowerStatus)
	if err != nil {
		return 0, err
	}
	return PowerStatus(status), nil
}

// BatteryStatus returns the decoded battery mode and charge status register.
func (d *AXP209) BatteryStatus(ctx context.Context) (BatteryStatus, error) {
	status, err := d.readByte(ctx, regBatteryStatus)
	if err != nil {
		return 0, err
	}
	return BatteryStatus(status), nil
}

// OutputControl returns the raw power output control register (0x12).
func (d *AXP209) OutputControl(ctx context.Context) (byte, error) {
	return d.readByte(ctx, regOutputControl)
}

// CoulombCharge returns the raw coulomb counter accumulator for charge
// flowing into the battery.
func (d *AXP209) CoulombCharge(ctx context.Context) (uint32, error) {
	return d.readCoulomb(ctx, regCoulombCharge)
}

// CoulombDischarge returns the raw coulomb counter accumulator for charge
// drawn from the battery.
func (d *AXP209) CoulombDischarge(ctx context.Context) (uint32, error) {
	return d.readCoulomb(ctx, regCoulombDischarge)
}

func (d *AXP209) readCoulomb(ctx context.Context, reg byte) (uint32, error) {
	buf := make([]byte, 4)
	err := d.readRegister(ctx, reg, buf)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}
