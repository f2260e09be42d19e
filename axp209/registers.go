package axp209

// Register map of the AXP209. Addresses are fixed one-byte values; see the
// X-Powers AXP209 datasheet for the full table.
const (
	// power status and control
	regPowerStatus   byte = 0x00
	regBatteryStatus byte = 0x01
	regOutputControl byte = 0x12

	// ADC control (0x82 high byte, 0x83 low byte, read as one word)
	regAdcControl byte = 0x82

	// ADC data registers
	regAcinVoltage             byte = 0x56
	regAcinCurrent             byte = 0x58
	regVbusVoltage             byte = 0x5A
	regVbusCurrent             byte = 0x5C
	regTemperature             byte = 0x5E
	regBatteryTemperature      byte = 0x62
	regGpio0Voltage            byte = 0x64
	regGpio1Voltage            byte = 0x66
	regBatteryPower            byte = 0x70 // three bytes, 24-bit value
	regBatteryVoltage          byte = 0x78
	regBatteryChargeCurrent    byte = 0x7A
	regBatteryDischargeCurrent byte = 0x7C
	regIpsoutVoltage           byte = 0x7E

	// coulomb counter
	regCoulombCharge    byte = 0xB0
	regCoulombDischarge byte = 0xB4
	regCoulombControl   byte = 0xB8
	regBatteryLevel     byte = 0xB9
)
