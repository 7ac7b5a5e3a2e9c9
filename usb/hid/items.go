package hid

// Builders for common scaffolding items.

// Global and Main item tags used by the builders below and by the report
// length bookkeeping in Prepare.
const (
	tagUsagePage      uint8 = 0x0
	tagLogicalMinimum uint8 = 0x1
	tagLogicalMaximum uint8 = 0x2
	tagReportSize     uint8 = 0x7
	tagInput          uint8 = 0x8
	tagReportCount    uint8 = 0x9
	tagCollection     uint8 = 0xA
	tagEndCollection  uint8 = 0xC
)

// UsagePageItem sets the current usage page (Global item, tag 0x0).
func UsagePageItem(page uint8) Item {
	return FixedItem(Header(tagUsagePage, ItemTypeGlobal, 1), page)
}

// UsageItem sets the current usage (Local item, tag 0x0).
func UsageItem(usage uint8) Item {
	return FixedItem(Header(UsageTag, ItemTypeLocal, 1), usage)
}

// CollectionItem begins a collection (Main item, tag 0xA). The matching
// EndCollectionItem must follow later in the table.
func CollectionItem(kind CollectionKind) Item {
	return FixedItem(Header(tagCollection, ItemTypeMain, 1), uint8(kind))
}

// EndCollectionItem ends a collection (Main item, tag 0xC, no data).
func EndCollectionItem() Item {
	return FixedItem(Header(tagEndCollection, ItemTypeMain, 0))
}

// LogicalMinimumItem sets the logical minimum (Global item, tag 0x1).
func LogicalMinimumItem(v uint8) Item {
	return FixedItem(Header(tagLogicalMinimum, ItemTypeGlobal, 1), v)
}

// LogicalMaximumItem sets the logical maximum (Global item, tag 0x2).
func LogicalMaximumItem(v uint8) Item {
	return FixedItem(Header(tagLogicalMaximum, ItemTypeGlobal, 1), v)
}

// ReportSizeItem sets the report size in bits (Global item, tag 0x7).
func ReportSizeItem(bits uint8) Item {
	return FixedItem(Header(tagReportSize, ItemTypeGlobal, 1), bits)
}

// ReportCountItem sets the report count (Global item, tag 0x9).
func ReportCountItem(n uint8) Item {
	return FixedItem(Header(tagReportCount, ItemTypeGlobal, 1), n)
}

// InputItem encodes an Input main item (tag 0x8).
func InputItem(flags MainFlags) Item {
	return FixedItem(Header(tagInput, ItemTypeMain, 1), uint8(flags))
}
