package axp209

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockI2CBus is a mock implementation of pmic.I2CBus using testify/mock
type MockI2CBus struct {
	mock.Mock
}

func (m *MockI2CBus) Tx(ctx context.Context, address byte, out []byte, in []byte) error {
	args := m.Called(ctx, address, out, in)
	if data, ok := args.Get(0).([]byte); ok && len(data) <= len(in) {
		copy(in, data)
	}
	return args.Error(1)
}

func (m *MockI2CBus) Release(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestAXP209_BatteryVoltage(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	bus.On("Tx", mock.Anything, DefaultAddress, []byte{regBatteryVoltage}, mock.Anything).
		Return([]byte{0x3E, 0x08}, nil).Once()

	mv, err := dev.BatteryVoltage(ctx)
	assert.NoError(t, err)
	assert.Equal(t, uint16(1100), mv)
	bus.AssertExpectations(t)
}

func TestAXP209_BatteryDischargingCurrent(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	// the discharge channel packs 11 bits, not 10
	bus.On("Tx", mock.Anything, DefaultAddress, []byte{regBatteryDischargeCurrent}, mock.Anything).
		Return([]byte{0xFF, 0x1F}, nil).Once()

	ma, err := dev.BatteryDischargingCurrent(ctx)
	assert.NoError(t, err)
	assert.Equal(t, uint16(4095), ma)
	bus.AssertExpectations(t)
}

func TestAXP209_BatteryChargingCurrent(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	bus.On("Tx", mock.Anything, DefaultAddress, []byte{regBatteryChargeCurrent}, mock.Anything).
		Return([]byte{0x3E, 0x08}, nil).Once()

	ma, err := dev.BatteryChargingCurrent(ctx)
	assert.NoError(t, err)
	assert.Equal(t, uint16(500), ma)
	bus.AssertExpectations(t)
}

func TestAXP209_Temperature(t *testing.T) {
	tests := []struct {
		name     string
		response []byte
		expected int16
	}{
		{"zero sample", []byte{0x00, 0x00}, -145},
		{"mid scale", []byte{0x3E, 0x08}, -45},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bus := new(MockI2CBus)
			dev := New(bus)

			bus.On("Tx", mock.Anything, DefaultAddress, []byte{regTemperature}, mock.Anything).
				Return(test.response, nil).Once()

			temp, err := dev.Temperature(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, test.expected, temp)
			bus.AssertExpectations(t)
		})
	}
}

func TestAXP209_BatteryLevel(t *testing.T) {
	tests := []struct {
		name     string
		response byte
		expected byte
	}{
		// the MSB is a sampling enable control bit, not part of the level
		{"control bit set", 0xFF, 0x7F},
		{"half charged", 0x32, 50},
		{"empty", 0x00, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bus := new(MockI2CBus)
			dev := New(bus)

			bus.On("Tx", mock.Anything, DefaultAddress, []byte{regBatteryLevel}, mock.Anything).
				Return([]byte{test.response}, nil).Once()

			level, err := dev.BatteryLevel(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, test.expected, level)
			bus.AssertExpectations(t)
		})
	}
}

func TestAXP209_BatteryPresent(t *testing.T) {
	tests := []struct {
		name     string
		response byte
		expected bool
	}{
		{"half charged", 0x32, true},
		{"full", 0x64, true},
		{"missing sentinel", 0x7F, false},
		{"missing sentinel with control bit", 0xFF, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bus := new(MockI2CBus)
			dev := New(bus)

			bus.On("Tx", mock.Anything, DefaultAddress, []byte{regBatteryLevel}, mock.Anything).
				Return([]byte{test.response}, nil).Once()

			present, err := dev.BatteryPresent(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, test.expected, present)
			bus.AssertExpectations(t)
		})
	}
}

func TestAXP209_BatteryPower(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)

	// 24-bit big-endian sample 20000 -> 11 mW
	bus.On("Tx", mock.Anything, DefaultAddress, []byte{regBatteryPower}, mock.Anything).
		Return([]byte{0x00, 0x4E, 0x20}, nil).Once()

	mw, err := dev.BatteryPower(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, uint32(11), mw)
	bus.AssertExpectations(t)
}

func TestAXP209_ADCControl(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)

	// 0x82 -> battery voltage + current, 0x83 -> temperature + gpio0
	bus.On("Tx", mock.Anything, DefaultAddress, []byte{regAdcControl}, mock.Anything).
		Return([]byte{0xC0, 0x84}, nil).Once()

	status, err := dev.ADCControl(context.Background())
	assert.NoError(t, err)
	assert.True(t, status.Enabled(AdcBatteryVoltage))
	assert.True(t, status.Enabled(AdcBatteryCurrent))
	assert.True(t, status.Enabled(AdcTemperature))
	assert.True(t, status.Enabled(AdcGpio0Voltage))
	assert.False(t, status.Enabled(AdcAcinVoltage))
	assert.False(t, status.Enabled(AdcVbusCurrent))
	assert.False(t, status.Enabled(AdcGpio1Voltage))
	bus.AssertExpectations(t)
}

func TestAXP209_SetADCControl(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)

	status := AdcStatus(0).With(AdcBatteryVoltage | AdcBatteryCurrent | AdcTemperature)
	bus.On("Tx", mock.Anything, DefaultAddress, []byte{regAdcControl, 0xC0, 0x80}, []byte(nil)).
		Return(nil, nil).Once()

	err := dev.SetADCControl(context.Background(), status)
	assert.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestAXP209_PowerStatus(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)

	bus.On("Tx", mock.Anything, DefaultAddress, []byte{regPowerStatus}, mock.Anything).
		Return([]byte{0xA4}, nil).Once()

	status, err := dev.PowerStatus(context.Background())
	assert.NoError(t, err)
	assert.True(t, status.Has(PowerAcinPresent))
	assert.True(t, status.Has(PowerVbusPresent))
	assert.True(t, status.Has(PowerBatteryCharging))
	assert.False(t, status.Has(PowerAcinUsable))
	assert.False(t, status.Has(PowerVbusUsable))
	bus.AssertExpectations(t)
}

func TestAXP209_BatteryStatus(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)

	bus.On("Tx", mock.Anything, DefaultAddress, []byte{regBatteryStatus}, mock.Anything).
		Return([]byte{0x60}, nil).Once()

	status, err := dev.BatteryStatus(context.Background())
	assert.NoError(t, err)
	assert.True(t, status.Has(BatteryCharging))
	assert.True(t, status.Has(BatteryConnected))
	assert.False(t, status.Has(BatteryOverTemperature))
	bus.AssertExpectations(t)
}

func TestAXP209_CoulombCounters(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus)
	ctx := context.Background()

	bus.On("Tx", mock.Anything, DefaultAddress, []byte{regCoulombCharge}, mock.Anything).
		Return([]byte{0x00, 0x01, 0x00, 0x00}, nil).Once()
	bus.On("Tx", mock.Anything, DefaultAddress, []byte{regCoulombDischarge}, mock.Anything).
		Return([]byte{0x00, 0x00, 0x10, 0x01}, nil).Once()

	charge, err := dev.CoulombCharge(ctx)
	assert.NoError(t, err)
	assert.Equal(t, uint32(65536), charge)

	discharge, err := dev.CoulombDischarge(ctx)
	assert.NoError(t, err)
	assert.Equal(t, uint32(4097), discharge)
	bus.AssertExpectations(t)
}

func TestAXP209_WithAddress(t *testing.T) {
	bus := new(MockI2CBus)
	dev := New(bus, WithAddress(0x35))

	bus.On("Tx", mock.Anything, byte(0x35), []byte{regBatteryLevel}, mock.Anything).
		Return([]byte{0x32}, nil).Once()

	level, err := dev.BatteryLevel(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, byte(50), level)
	bus.AssertExpectations(t)
}

func TestAXP209_BusErrorPropagation(t *testing.T) {
	errBus := errors.New("i2c: device NAK")
	tests := []struct {
		name string
		call func(context.Context, *AXP209) error
	}{
		{"battery voltage", func(ctx context.Context, d *AXP209) error {
			_, err := d.BatteryVoltage(ctx)
			return err
		}},
		{"battery discharge current", func(ctx context.Context, d *AXP209) error {
			_, err := d.BatteryDischargingCurrent(ctx)
			return err
		}},
		{"battery level", func(ctx context.Context, d *AXP209) error {
			_, err := d.BatteryLevel(ctx)
			return err
		}},
		{"battery present", func(ctx context.Context, d *AXP209) error {
			_, err := d.BatteryPresent(ctx)
			return err
		}},
		{"adc control", func(ctx context.Context, d *AXP209) error {
			_, err := d.ADCControl(ctx)
			return err
		}},
		{"battery power", func(ctx context.Context, d *AXP209) error {
			_, err := d.BatteryPower(ctx)
			return err
		}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			bus := new(MockI2CBus)
			dev := New(bus)

			bus.On("Tx", mock.Anything, DefaultAddress, mock.Anything, mock.Anything).
				Return(nil, errBus).Once()

			err := test.call(context.Background(), dev)
			// the transport error surfaces untouched and exactly one
			// transaction is attempted
			assert.Equal(t, errBus, err)
			bus.AssertNumberOfCalls(t, "Tx", 1)
			bus.AssertExpectations(t)
		})
	}
}
