package hid

import (
	"fmt"
	"sync"
)

// Control is the addressable view of a table item returned by GetItem.
type Control struct {
	Page   uint8
	Header uint8
	Data   [ItemMaxSize]uint8
}

// Descriptor owns the report item table and the compiled descriptor
// buffer. Construct one per device with New; the zero value is not
// usable.
//
// The table and the buffer share one mutex. SetItem refuses to wait on
// it and reports StatusInUse instead, so a configuration request racing
// a rebuild can never tear the table or the buffer; GetItem, Prepare and
// Reset block for the bounded duration of a table walk at most.
type Descriptor struct {
	mu           sync.Mutex
	items        []Item
	index        map[Location]int
	configurable map[Location]struct{}

	buf       []byte // compiled descriptor; nil while unprepared
	reportLen int    // report bytes derived by the last Prepare
}

// New builds a Descriptor from the device's default item table. The slice
// order is the canonical serialization order. Every addressable item must
// carry a distinct in-grid location; configurable lists the locations
// SetItem may rewrite and never changes afterwards.
func New(items []Item, configurable []Location) (*Descriptor, error) {
	d := &Descriptor{
		items:        make([]Item, len(items)),
		index:        make(map[Location]int, len(items)),
		configurable: make(map[Location]struct{}, len(configurable)),
	}
	copy(d.items, items)
	for i, it := range d.items {
		if size, _, _ := HeaderFields(it.Header); size > ItemMaxSize {
			return nil, fmt.Errorf("hid: item %d: unsupported data size %d", i, size)
		}
		if !it.Location.Addressable() {
			continue
		}
		byteIdx, bitIdx := it.Location.ByteIndex(), it.Location.BitIndex()
		if !validLocation(byteIdx, bitIdx) {
			return nil, fmt.Errorf("hid: item %d: location %d.%d outside the report grid", i, byteIdx, bitIdx)
		}
		if prev, ok := d.index[it.Location]; ok {
			return nil, fmt.Errorf("hid: items %d and %d share location %d.%d", prev, i, byteIdx, bitIdx)
		}
		d.index[it.Location] = i
	}
	for _, loc := range configurable {
		if _, ok := d.index[loc]; !ok {
			return nil, fmt.Errorf("hid: configurable location %d.%d has no item", loc.ByteIndex(), loc.BitIndex())
		}
		d.configurable[loc] = struct{}{}
	}
	return d, nil
}

// GetItem returns the current contents of the control at the given report
// position. The returned Control is zero whenever the status is not
// StatusGood.
func (d *Descriptor) GetItem(byteIdx, bitIdx uint) (Control, Status) {
	if !validLocation(byteIdx, bitIdx) {
		return Control{}, StatusBadLocation
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	i, ok := d.index[MakeLocation(byteIdx, bitIdx)]
	if !ok {
		return Control{}, StatusBadLocation
	}
	it := d.items[i]
	return Control{Page: it.Page, Header: it.Header, Data: it.Data}, StatusGood
}

// SetItem rewrites the control at the given report position. On
// StatusGood the new contents are visible to GetItem immediately; the
// compiled descriptor only reflects them after the next Prepare.
//
// Malformed input is rejected before configurability is consulted, so a
// caller probing arbitrary locations sees the same header verdict
// everywhere. A structurally valid write to a non-configurable location
// reports StatusBadLocation: for writing purposes that address does not
// exist. SetItem does not cross-check len(data) against the header's
// size field; it copies at most size bytes.
func (d *Descriptor) SetItem(byteIdx, bitIdx uint, page, header uint8, data []uint8) Status {
	if !validLocation(byteIdx, bitIdx) {
		return StatusBadLocation
	}
	if !validHeader(header) {
		return StatusBadHeader
	}
	if !d.mu.TryLock() {
		return StatusInUse
	}
	defer d.mu.Unlock()
	loc := MakeLocation(byteIdx, bitIdx)
	i, ok := d.index[loc]
	if !ok {
		return StatusBadLocation
	}
	if _, ok := d.configurable[loc]; !ok {
		return StatusBadLocation
	}
	if page != d.items[i].Page {
		return StatusBadPage
	}
	size, _, _ := HeaderFields(header)
	d.items[i].Header = header
	copy(d.items[i].Data[:size], data)
	return StatusGood
}

// Configurable reports whether SetItem may rewrite the given report
// position. GetItem succeeds on non-configurable locations too; this
// query is the only way to tell the two kinds of StatusBadLocation
// apart. The configurable set never changes after New.
func (d *Descriptor) Configurable(byteIdx, bitIdx uint) bool {
	if !validLocation(byteIdx, bitIdx) {
		return false
	}
	_, ok := d.configurable[MakeLocation(byteIdx, bitIdx)]
	return ok
}

// Prepare compiles the table into the descriptor byte stream, replacing
// any previous compilation. Safe to call any number of times.
//
// Items serialize in table order: the prefix byte, then as many data
// bytes as its size field names, least significant byte first. The walk
// also tracks the Report Size and Report Count globals and accumulates
// the report bit count over Input items, which is how ReportLength knows
// its answer.
func (d *Descriptor) Prepare() {
	d.mu.Lock()
	defer d.mu.Unlock()

	buf := make([]byte, 0, d.serializedLen())
	var rsize, rcount, bits uint
	for _, it := range d.items {
		size, typ, tag := HeaderFields(it.Header)
		buf = append(buf, it.Header)
		buf = append(buf, it.Data[:size]...)

		switch {
		case typ == ItemTypeGlobal && tag == tagReportSize:
			rsize = itemValue(size, it.Data)
		case typ == ItemTypeGlobal && tag == tagReportCount:
			rcount = itemValue(size, it.Data)
		case typ == ItemTypeMain && tag == tagInput:
			bits += rsize * rcount
		}
	}
	d.buf = buf
	d.reportLen = int((bits + 7) / 8)
}

// Reset discards the compiled descriptor. GetItem and SetItem keep
// working on the table; a later Prepare picks their changes up. Safe to
// call any number of times.
func (d *Descriptor) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.buf = nil
	d.reportLen = 0
}

// Bytes returns the compiled descriptor, or nil if no Prepare has run
// since the last Reset. Prepare replaces the buffer rather than
// rewriting it, so a returned slice stays valid; callers must not modify
// it.
func (d *Descriptor) Bytes() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.buf
}

// Length returns the compiled descriptor's length in bytes, or 0 while
// unprepared.
func (d *Descriptor) Length() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.buf)
}

// ReportLength returns the byte length of the HID report the compiled
// descriptor describes, or 0 while unprepared.
func (d *Descriptor) ReportLength() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.buf == nil {
		return 0
	}
	return d.reportLen
}

func (d *Descriptor) serializedLen() int {
	n := 0
	for _, it := range d.items {
		size, _, _ := HeaderFields(it.Header)
		n += 1 + int(size)
	}
	return n
}

// itemValue decodes up to two little-endian data bytes.
func itemValue(size uint8, data [ItemMaxSize]uint8) uint {
	switch size {
	case 1:
		return uint(data[0])
	case 2:
		return uint(data[1])<<8 | uint(data[0])
	}
	return 0
}
