package axp209

// PowerStatus mirrors the input power status register (0x00). Each bit is an
// independent indication; combine flags with Has.
type PowerStatus byte

const (
	PowerAcinPresent     PowerStatus = 1 << 7
	PowerAcinUsable      PowerStatus = 1 << 6
	PowerVbusPresent     PowerStatus = 1 << 5
	PowerVbusUsable      PowerStatus = 1 << 4
	PowerVbusAboveVhold  PowerStatus = 1 << 3
	PowerBatteryCharging PowerStatus = 1 << 2
	PowerAcinVbusShorted PowerStatus = 1 << 1
	PowerBootSourceVbus  PowerStatus = 1 << 0
)

func (s PowerStatus) Has(flags PowerStatus) bool {
	return s&flags == flags
}

// BatteryStatus mirrors the battery mode and charge status register (0x01).
type BatteryStatus byte

const (
	BatteryOverTemperature BatteryStatus = 1 << 7
	BatteryCharging        BatteryStatus = 1 << 6
	BatteryConnected       BatteryStatus = 1 << 5
	BatteryActivationMode  BatteryStatus = 1 << 3
	BatteryCurrentTooLow   BatteryStatus = 1 << 2
)

func (s BatteryStatus) Has(flags BatteryStatus) bool {
	return s&flags == flags
}
