// Package hid maintains a runtime-reconfigurable HID report descriptor.
//
// A HID report descriptor is a byte-coded DSL. This package keeps it as a
// fixed table of short items supplied by the device at startup, lets
// designated control items be rewritten at runtime, and compiles the table
// into the exact descriptor byte stream on demand.
package hid

// ItemType is the HID short item "type" field.
// See HID 1.11 spec: Main=0, Global=1, Local=2, Reserved=3.
type ItemType uint8

const (
	ItemTypeMain     ItemType = 0
	ItemTypeGlobal   ItemType = 1
	ItemTypeLocal    ItemType = 2
	ItemTypeReserved ItemType = 3
)

// Short item prefix field layout: bSize (0:1), bType (2:3), bTag (4:7).
// See HID 1.11 spec, section 6.2.2.2.
const (
	hdrSizeMask  = 0x03
	hdrSizeShift = 0
	hdrTypeMask  = 0x0C
	hdrTypeShift = 2
	hdrTagMask   = 0xF0
	hdrTagShift  = 4
)

// ItemMaxSize is the largest number of data bytes a table item can carry.
// Short items with four data bytes are not supported.
const ItemMaxSize = 2

// UsageTag is the Usage item tag. Usage items (Local type, tag 0) are the
// only item kind accepted for runtime rewrites.
const UsageTag uint8 = 0x0

// Header packs the size, type and tag fields of a short item prefix byte.
func Header(tag uint8, typ ItemType, size uint8) uint8 {
	return (tag<<hdrTagShift)&hdrTagMask |
		(uint8(typ)<<hdrTypeShift)&hdrTypeMask |
		(size<<hdrSizeShift)&hdrSizeMask
}

// HeaderFields extracts the size, type and tag fields from a short item
// prefix byte. It never fails; it only classifies.
func HeaderFields(header uint8) (size uint8, typ ItemType, tag uint8) {
	size = (header & hdrSizeMask) >> hdrSizeShift
	typ = ItemType((header & hdrTypeMask) >> hdrTypeShift)
	tag = (header & hdrTagMask) >> hdrTagShift
	return size, typ, tag
}

// validHeader reports whether a header may be written into the table.
// Only Usage items with at most two data bytes qualify.
func validHeader(header uint8) bool {
	size, typ, tag := HeaderFields(header)
	return size <= ItemMaxSize && typ == ItemTypeLocal && tag == UsageTag
}
