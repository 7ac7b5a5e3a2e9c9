package hid

// Item is one short item of the report descriptor table.
//
// Header is the item prefix byte; Data holds up to ItemMaxSize data bytes,
// of which the prefix's size field says how many are in use. Page is the
// USB HID Usage Page the control belongs to; it is meaningful only for
// addressable items.
type Item struct {
	Page     uint8
	Header   uint8
	Data     [ItemMaxSize]uint8
	Location Location
}

// ControlItem builds an addressable item for the control at the given
// report position.
func ControlItem(page, header uint8, data []uint8, byteIdx, bitIdx uint) Item {
	it := Item{Page: page, Header: header, Location: MakeLocation(byteIdx, bitIdx)}
	copy(it.Data[:], data)
	return it
}

// FixedItem builds a non-addressable scaffolding item.
func FixedItem(header uint8, data ...uint8) Item {
	it := Item{Header: header, Location: Location(locFixedFlag)}
	copy(it.Data[:], data)
	return it
}
