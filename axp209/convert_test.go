package axp209

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeADC10(t *testing.T) {
	tests := []struct {
		given    []byte
		expected uint16
	}{
		{[]byte{0x00, 0x00}, 0},
		{[]byte{0xFF, 0x0F}, 4095},
		// high nibble of the low byte is not part of the sample
		{[]byte{0xFF, 0xFF}, 4095},
		{[]byte{0x3E, 0x08}, 1000},
	}
	for _, test := range tests {
		t.Run(hex.EncodeToString(test.given), func(t *testing.T) {
			assert.Equal(t, test.expected, decodeADC10(test.given[0], test.given[1]))
		})
	}
}

func TestDecodeADC11(t *testing.T) {
	tests := []struct {
		given    []byte
		expected uint16
	}{
		{[]byte{0x00, 0x00}, 0},
		{[]byte{0xFF, 0x1F}, 8191},
		{[]byte{0xFF, 0xFF}, 8191},
		{[]byte{0x1F, 0x08}, 1000},
	}
	for _, test := range tests {
		t.Run(hex.EncodeToString(test.given), func(t *testing.T) {
			assert.Equal(t, test.expected, decodeADC11(test.given[0], test.given[1]))
		})
	}
}

func TestConvertBatteryVoltage(t *testing.T) {
	tests := []struct {
		raw      uint16
		expected uint16
	}{
		{0, 0},
		{1000, 1100},
		{1023, 1125},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, convertBatteryVoltage(test.raw), "raw %d", test.raw)
	}
}

func TestConvertBatteryCurrent(t *testing.T) {
	assert.Equal(t, uint16(0), convertBatteryCurrent(0))
	assert.Equal(t, uint16(500), convertBatteryCurrent(1000))
	assert.Equal(t, uint16(1023), convertBatteryCurrent(2047))
}

func TestConvertInputVoltage(t *testing.T) {
	assert.Equal(t, uint16(0), convertInputVoltage(0))
	assert.Equal(t, uint16(800), convertInputVoltage(700))
	assert.Equal(t, uint16(1142), convertInputVoltage(1000))
}

func TestConvertAcinCurrent(t *testing.T) {
	tests := []struct {
		raw      uint16
		expected uint16
	}{
		{0, 0},
		// truncation happens after the final division by 16
		{1000, 100},
		{1023, 102},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, convertAcinCurrent(test.raw), "raw %d", test.raw)
	}
}

func TestConvertVbusCurrent(t *testing.T) {
	tests := []struct {
		raw      uint16
		expected uint16
	}{
		{0, 0},
		{1000, 83},
		{1023, 85},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, convertVbusCurrent(test.raw), "raw %d", test.raw)
	}
}

func TestConvertTemperature(t *testing.T) {
	tests := []struct {
		raw      uint16
		expected int16
	}{
		{0, -145},
		{1000, -45},
		{1450, 0},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, convertTemperature(test.raw), "raw %d", test.raw)
	}
}

func TestConvertGpioVoltage(t *testing.T) {
	assert.Equal(t, uint16(500), convertGpioVoltage(1000))
}

func TestConvertTsVoltage(t *testing.T) {
	assert.Equal(t, uint16(800), convertTsVoltage(1000))
}

func TestConvertIpsoutVoltage(t *testing.T) {
	assert.Equal(t, uint16(1400), convertIpsoutVoltage(1000))
}

func TestConvertBatteryPower(t *testing.T) {
	assert.Equal(t, uint32(0), convertBatteryPower(0))
	assert.Equal(t, uint32(11), convertBatteryPower(20000))
	assert.Equal(t, uint32(550), convertBatteryPower(1000000))
}
