package hid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidforge/hidforge/usb/hid"
)

// testSerialized is the canonical byte stream for testItems.
var testSerialized = []byte{
	0x05, 0x0C, // Usage Page (Consumer)
	0x09, 0x01, // Usage (Consumer Control)
	0xA1, 0x01, // Collection (Application)
	0x75, 0x01, // Report Size (1)
	0x95, 0x05, // Report Count (5)
	0x09, 0xE2, // Usage (Mute)              0.0
	0x09, 0xE9, // Usage (Volume Increment)  0.7
	0x0A, 0x38, 0x02, // Usage (AC Pan)      1.0
	0x09, 0xB5, // Usage (Scan Next)         15.0
	0x09, 0xEA, // Usage (Volume Decrement)  15.6
	0x81, 0x02, // Input (Data,Var,Abs)
	0xC0, // End Collection
}

func TestUnpreparedDescriptor(t *testing.T) {
	d := newTestDescriptor(t)
	assert.Nil(t, d.Bytes())
	assert.Equal(t, 0, d.Length())
	assert.Equal(t, 0, d.ReportLength())
}

func TestPrepareDescriptor(t *testing.T) {
	d := newTestDescriptor(t)
	d.Prepare()

	assert.Equal(t, testSerialized, d.Bytes())
	assert.Equal(t, len(testSerialized), d.Length())
	// Five one-bit controls round up to a single report byte.
	assert.Equal(t, 1, d.ReportLength())
}

func TestResetDescriptor(t *testing.T) {
	d := newTestDescriptor(t)
	d.Prepare()
	d.Reset()

	assert.Nil(t, d.Bytes())
	assert.Equal(t, 0, d.Length())
	assert.Equal(t, 0, d.ReportLength())

	// Reset is idempotent and Prepare recovers from it.
	d.Reset()
	d.Prepare()
	assert.Equal(t, testSerialized, d.Bytes())
}

func TestSetWithoutPrepareLeavesDescriptorAbsent(t *testing.T) {
	d := newTestDescriptor(t)

	st := d.SetItem(0, 0, hid.UsagePageConsumer, usageHeader(1), []uint8{0xE7})
	require.Equal(t, hid.StatusGood, st)

	assert.Nil(t, d.Bytes())
}

func TestSetVisibleOnlyAfterNextPrepare(t *testing.T) {
	d := newTestDescriptor(t)
	d.Prepare()
	stale := d.Bytes()
	require.Equal(t, uint8(0xE2), stale[11])

	st := d.SetItem(0, 0, hid.UsagePageConsumer, usageHeader(1), []uint8{0xE7})
	require.Equal(t, hid.StatusGood, st)

	// The stale compilation still shows the old value.
	assert.Equal(t, uint8(0xE2), stale[11])
	assert.Equal(t, uint8(0xE2), d.Bytes()[11])

	d.Prepare()
	assert.Equal(t, uint8(0xE7), d.Bytes()[11])
	// The buffer handed out before the rebuild is untouched.
	assert.Equal(t, uint8(0xE2), stale[11])
}

func TestPrepareIsIdempotent(t *testing.T) {
	d := newTestDescriptor(t)
	d.Prepare()
	first := d.Bytes()
	d.Prepare()
	assert.Equal(t, first, d.Bytes())
}
