// Package audio supplies the default HID report descriptor table for the
// USB audio controller: a 16-byte input report of consumer-page controls,
// one control per report bit.
//
// Byte 0 carries the eight transport controls and is the only byte whose
// bit 7 is a control; bytes 1-15 carry seven controls each and pad their
// top bit with a constant. The engine never invents items; everything it
// serves comes from this table.
package audio

import "github.com/hidforge/hidforge/usb/hid"

// Compiled sizes of the default table. Prepare must reproduce these
// exactly; the transport allocates against them.
const (
	ReportLength     = 16
	DescriptorLength = 363
)

// selectionUsageBase is the first Consumer page usage assigned to the
// generic control block in bytes 1-15.
const selectionUsageBase uint8 = 0x80

// usageHeader is the prefix of a Usage item carrying one data byte.
var usageHeader = hid.Header(hid.UsageTag, hid.ItemTypeLocal, 1)

// transportControls are the byte 0 defaults, bit 0 first.
var transportControls = [8]uint8{
	hid.UsageMute,
	hid.UsageVolumeIncrement,
	hid.UsageVolumeDecrement,
	hid.UsagePlayPause,
	hid.UsageScanNext,
	hid.UsageScanPrevious,
	hid.UsageStop,
	hid.UsageLoudness,
}

// DefaultItems builds the default table in canonical descriptor order.
func DefaultItems() []hid.Item {
	items := []hid.Item{
		hid.UsagePageItem(hid.UsagePageConsumer),
		hid.UsageItem(hid.UsageConsumerControl),
		hid.CollectionItem(hid.CollectionApplication),
		hid.LogicalMinimumItem(0),
		hid.LogicalMaximumItem(1),
		hid.ReportSizeItem(1),
		hid.ReportCountItem(8),
	}

	for bit := hid.MinValidBit; bit <= hid.MaxValidBit; bit++ {
		items = append(items, hid.ControlItem(
			hid.UsagePageConsumer, usageHeader, []uint8{transportControls[bit]}, 0, bit))
	}
	items = append(items, hid.InputItem(hid.MainData|hid.MainVar|hid.MainAbs))

	usage := selectionUsageBase
	for b := uint(1); b <= hid.MaxValidByte; b++ {
		items = append(items, hid.ReportCountItem(7))
		for bit := hid.MinValidBit; bit <= 6; bit++ {
			items = append(items, hid.ControlItem(
				hid.UsagePageConsumer, usageHeader, []uint8{usage}, b, bit))
			usage++
		}
		items = append(items,
			hid.InputItem(hid.MainData|hid.MainVar|hid.MainAbs),
			hid.ReportCountItem(1),
			hid.InputItem(hid.MainConst), // padding bit
		)
	}

	items = append(items, hid.EndCollectionItem())
	return items
}

// ConfigurableLocations lists the grid positions the host may rewrite:
// the transport controls in byte 0 and the last control block in byte 15.
func ConfigurableLocations() []hid.Location {
	locs := make([]hid.Location, 0, 15)
	for bit := hid.MinValidBit; bit <= hid.MaxValidBit; bit++ {
		locs = append(locs, hid.MakeLocation(0, bit))
	}
	for bit := hid.MinValidBit; bit <= 6; bit++ {
		locs = append(locs, hid.MakeLocation(hid.MaxValidByte, bit))
	}
	return locs
}

// NewDescriptor builds the engine instance for the default table.
func NewDescriptor() (*hid.Descriptor, error) {
	return hid.New(DefaultItems(), ConfigurableLocations())
}
