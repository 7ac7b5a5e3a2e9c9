package hid

// Location addresses a control bit within the HID report.
//
// Packed layout: iByte (0:3), iBit (4:6), Reserved (7). The Reserved flag
// marks descriptor scaffolding (collections, report sizes and the like)
// that is not reachable through GetItem or SetItem.
type Location uint8

const (
	locByteMask  = 0x0F
	locByteShift = 0
	locBitMask   = 0x70
	locBitShift  = 4
	locFixedFlag = 0x80
)

// Report grid limits. Bit index 7 exists only in byte 0: every other
// report byte packs a constant padding bit at its top. This asymmetry
// mirrors the hardware report layout and is intentional.
const (
	MinValidByte uint = 0
	MaxValidByte uint = 15
	MinValidBit  uint = 0
	MaxValidBit  uint = 7 // only reachable at byte 0

	maxUniformBit uint = 6
)

// MakeLocation packs a byte/bit address. Callers pass already-validated
// indices; GetItem and SetItem range-check before packing.
func MakeLocation(byteIdx, bitIdx uint) Location {
	return Location((uint8(byteIdx)<<locByteShift)&locByteMask |
		(uint8(bitIdx)<<locBitShift)&locBitMask)
}

// ByteIndex returns the report byte the location addresses.
func (l Location) ByteIndex() uint {
	return uint((uint8(l) & locByteMask) >> locByteShift)
}

// BitIndex returns the bit within the report byte.
func (l Location) BitIndex() uint {
	return uint((uint8(l) & locBitMask) >> locBitShift)
}

// Addressable reports whether the location refers to a control bit rather
// than descriptor scaffolding.
func (l Location) Addressable() bool {
	return uint8(l)&locFixedFlag == 0
}

// validLocation applies the grid range checks. An underflowed caller
// value arrives as a huge unsigned number and fails the upper-bound
// checks; it is never wrapped back into range.
func validLocation(byteIdx, bitIdx uint) bool {
	if byteIdx > MaxValidByte {
		return false
	}
	if bitIdx > maxUniformBit {
		return bitIdx == MaxValidBit && byteIdx == 0
	}
	return true
}
