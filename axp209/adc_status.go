package axp209

import "strings"

// AdcStatus reports which ADC channels the PMIC is sampling. The value
// mirrors registers 0x82 (high byte) and 0x83 (low byte) read as a single
// big-endian word; each bit is an independent enable flag.
type AdcStatus uint16

const (
	AdcBatteryVoltage AdcStatus = 1 << 15
	AdcBatteryCurrent AdcStatus = 1 << 14
	AdcAcinVoltage    AdcStatus = 1 << 13
	AdcAcinCurrent    AdcStatus = 1 << 12
	AdcVbusVoltage    AdcStatus = 1 << 11
	AdcVbusCurrent    AdcStatus = 1 << 10
	AdcApsVoltage     AdcStatus = 1 << 9
	AdcTsPin          AdcStatus = 1 << 8
	AdcTemperature    AdcStatus = 1 << 7
	AdcGpio1Voltage   AdcStatus = 1 << 3
	AdcGpio0Voltage   AdcStatus = 1 << 2
)

var adcChannelNames = []struct {
	flag AdcStatus
	name string
}{
	{AdcBatteryVoltage, "battery-voltage"},
	{AdcBatteryCurrent, "battery-current"},
	{AdcAcinVoltage, "acin-voltage"},
	{AdcAcinCurrent, "acin-current"},
	{AdcVbusVoltage, "vbus-voltage"},
	{AdcVbusCurrent, "vbus-current"},
	{AdcApsVoltage, "aps-voltage"},
	{AdcTsPin, "ts-pin"},
	{AdcTemperature, "temperature"},
	{AdcGpio1Voltage, "gpio1-voltage"},
	{AdcGpio0Voltage, "gpio0-voltage"},
}

// Enabled reports whether every channel in flags is enabled for sampling.
func (s AdcStatus) Enabled(flags AdcStatus) bool {
	return s&flags == flags
}

// With returns a copy of the status with the given channels enabled.
func (s AdcStatus) With(flags AdcStatus) AdcStatus {
	return s | flags
}

// Without returns a copy of the status with the given channels disabled.
func (s AdcStatus) Without(flags AdcStatus) AdcStatus {
	return s &^ flags
}

// Channels lists the names of enabled channels.
func (s AdcStatus) Channels() []string {
	var res []string
	for _, ch := range adcChannelNames {
		if s.Enabled(ch.flag) {
			res = append(res, ch.name)
		}
	}
	return res
}

func (s AdcStatus) String() string {
	channels := s.Channels()
	if len(channels) == 0 {
		return "none"
	}
	return strings.Join(channels, ",")
}

// ChannelFlag resolves a channel name as printed by Channels back to its
// flag. The second return value is false for unknown names.
func ChannelFlag(name string) (AdcStatus, bool) {
	for _, ch := range adcChannelNames {
		if ch.name == name {
			return ch.flag, true
		}
	}
	return 0, false
}
