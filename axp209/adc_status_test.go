package axp209

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdcStatus_Flags(t *testing.T) {
	var status AdcStatus
	status = status.With(AdcBatteryVoltage | AdcGpio1Voltage)
	assert.True(t, status.Enabled(AdcBatteryVoltage))
	assert.True(t, status.Enabled(AdcGpio1Voltage))
	assert.True(t, status.Enabled(AdcBatteryVoltage|AdcGpio1Voltage))
	assert.False(t, status.Enabled(AdcBatteryVoltage|AdcBatteryCurrent))

	status = status.Without(AdcBatteryVoltage)
	assert.False(t, status.Enabled(AdcBatteryVoltage))
	assert.True(t, status.Enabled(AdcGpio1Voltage))
}

func TestAdcStatus_Channels(t *testing.T) {
	status := AdcStatus(0).With(AdcBatteryVoltage | AdcTemperature | AdcGpio0Voltage)
	assert.Equal(t, []string{"battery-voltage", "temperature", "gpio0-voltage"}, status.Channels())
	assert.Equal(t, "battery-voltage,temperature,gpio0-voltage", status.String())
	assert.Equal(t, "none", AdcStatus(0).String())
}

func TestChannelFlag(t *testing.T) {
	flag, ok := ChannelFlag("vbus-current")
	assert.True(t, ok)
	assert.Equal(t, AdcVbusCurrent, flag)

	_, ok = ChannelFlag("bogus")
	assert.False(t, ok)
}
