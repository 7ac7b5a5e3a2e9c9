package hid

// Common Usage Pages.
// Values per HID Usage Tables.
const (
	UsagePageGenericDesktop uint8 = 0x01
	UsagePageKeyboard       uint8 = 0x07
	UsagePageLEDs           uint8 = 0x08
	UsagePageButton         uint8 = 0x09
	UsagePageTelephony      uint8 = 0x0B
	UsagePageConsumer       uint8 = 0x0C
)

// Consumer page usages.
const (
	UsageConsumerControl uint8 = 0x01
	UsageScanNext        uint8 = 0xB5
	UsageScanPrevious    uint8 = 0xB6
	UsageStop            uint8 = 0xB7
	UsagePlayPause       uint8 = 0xCD
	UsageMute            uint8 = 0xE2
	UsageBassBoost       uint8 = 0xE5
	UsageLoudness        uint8 = 0xE7
	UsageVolumeIncrement uint8 = 0xE9
	UsageVolumeDecrement uint8 = 0xEA
)

// CollectionKind values.
type CollectionKind uint8

const (
	CollectionPhysical    CollectionKind = 0x00
	CollectionApplication CollectionKind = 0x01
	CollectionLogical     CollectionKind = 0x02
)

type MainFlags uint8

const (
	MainData  MainFlags = 0x00
	MainConst MainFlags = 0x01

	MainArray MainFlags = 0x00
	MainVar   MainFlags = 0x02

	MainAbs MainFlags = 0x00
	MainRel MainFlags = 0x04

	MainNonVolatile MainFlags = 0x00
	MainVolatile    MainFlags = 0x80
)
