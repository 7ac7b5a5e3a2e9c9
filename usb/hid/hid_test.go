package hid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hidforge/hidforge/usb/hid"
)

// usageHeader mirrors what a host configuration request sends: a Usage
// item prefix with the given data size.
func usageHeader(size uint8) uint8 {
	return hid.Header(hid.UsageTag, hid.ItemTypeLocal, size)
}

func TestHeaderPacking(t *testing.T) {
	type testCase struct {
		name   string
		tag    uint8
		typ    hid.ItemType
		size   uint8
		packed uint8
	}

	cases := []testCase{
		{name: "Usage, one byte", tag: 0x0, typ: hid.ItemTypeLocal, size: 1, packed: 0x09},
		{name: "Usage, two bytes", tag: 0x0, typ: hid.ItemTypeLocal, size: 2, packed: 0x0A},
		{name: "Usage Page", tag: 0x0, typ: hid.ItemTypeGlobal, size: 1, packed: 0x05},
		{name: "Collection", tag: 0xA, typ: hid.ItemTypeMain, size: 1, packed: 0xA1},
		{name: "End Collection", tag: 0xC, typ: hid.ItemTypeMain, size: 0, packed: 0xC0},
		{name: "Report Size", tag: 0x7, typ: hid.ItemTypeGlobal, size: 1, packed: 0x75},
		{name: "Report Count", tag: 0x9, typ: hid.ItemTypeGlobal, size: 1, packed: 0x95},
		{name: "Input", tag: 0x8, typ: hid.ItemTypeMain, size: 1, packed: 0x81},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.packed, hid.Header(tc.tag, tc.typ, tc.size))

			size, typ, tag := hid.HeaderFields(tc.packed)
			assert.Equal(t, tc.size, size)
			assert.Equal(t, tc.typ, typ)
			assert.Equal(t, tc.tag, tag)
		})
	}
}

func TestHeaderFieldsClassifyOnly(t *testing.T) {
	// Every byte value decomposes; nothing is rejected here.
	for h := 0; h <= 0xFF; h++ {
		size, typ, tag := hid.HeaderFields(uint8(h))
		assert.LessOrEqual(t, size, uint8(3))
		assert.LessOrEqual(t, uint8(typ), uint8(3))
		assert.LessOrEqual(t, tag, uint8(15))
	}
}

func TestLocationPacking(t *testing.T) {
	loc := hid.MakeLocation(13, 5)
	assert.Equal(t, uint(13), loc.ByteIndex())
	assert.Equal(t, uint(5), loc.BitIndex())
	assert.True(t, loc.Addressable())

	fixed := hid.FixedItem(usageHeader(0)).Location
	assert.False(t, fixed.Addressable())
}
