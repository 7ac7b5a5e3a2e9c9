// Package usb contains helpers for wrapping a compiled HID report
// descriptor in the standard USB class descriptors the transport embeds
// in its configuration descriptor.
package usb

import "encoding/binary"

// USB descriptor type constants
const (
	HIDDescType    = 0x21
	ReportDescType = 0x22
	StringDescType = 0x03
)

// HIDDescLen is the fixed length of the HID class descriptor in bytes.
const HIDDescLen = 9

// HIDFunction describes the HID class descriptor (type 0x21) of an
// interface that serves a report descriptor via GET_DESCRIPTOR.
type HIDFunction struct {
	BcdHID      uint16 // HID spec release, BCD (e.g. 0x0111)
	CountryCode uint8
}

// Encode produces the 9-byte HID class descriptor referencing a report
// descriptor of the given length.
func (h HIDFunction) Encode(reportDescLen int) []byte {
	b := make([]byte, HIDDescLen)
	b[0] = HIDDescLen
	b[1] = HIDDescType
	binary.LittleEndian.PutUint16(b[2:4], h.BcdHID)
	b[4] = h.CountryCode
	b[5] = 1 // bNumDescriptors
	b[6] = ReportDescType
	binary.LittleEndian.PutUint16(b[7:9], uint16(reportDescLen))
	return b
}

// EncodeStringDescriptor converts a UTF-8 string to a USB string
// descriptor: bLength, bDescriptorType, then the UTF-16LE payload.
func EncodeStringDescriptor(s string) []byte {
	runes := []rune(s)
	buf := make([]byte, 2+len(runes)*2)
	buf[0] = uint8(len(buf))
	buf[1] = StringDescType
	for i, r := range runes {
		buf[2+i*2] = uint8(r)
		buf[2+i*2+1] = uint8(r >> 8)
	}
	return buf
}
