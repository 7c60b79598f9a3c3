package arch

// NESHeaderSize is the size of the iNES header that precedes the PRG-ROM in the output file.
const NESHeaderSize = 0x10

const (
	nesPRGStart      = 0x8000
	loROMBankWindow  = 0x8000
	gameBoyROMEnd    = 0x8000
	loROMBankMask    = 0x7F
	loROMOffsetMask  = 0xFFFF
	loROMBankShift   = 16
	loROMBankByteMax = 0xFF
)

// FileOffset maps a CPU visible address to the offset in the output file of the target.
// The boolean result is false if the address is not represented in the file.
func FileOffset(target Target, address uint32) (int, bool) {
	switch target {
	case NES:
		if address < nesPRGStart {
			return 0, false
		}
		return int(address-nesPRGStart) + NESHeaderSize, true

	case SNES:
		bank := (address >> loROMBankShift) & loROMBankByteMax
		offset := address & loROMOffsetMask
		if offset < loROMBankWindow {
			return 0, false
		}
		return int(bank&loROMBankMask)*loROMBankWindow + int(offset-loROMBankWindow), true

	case GameBoy:
		if address >= gameBoyROMEnd {
			return 0, false
		}
		return int(address), true

	default:
		return int(address), true
	}
}
