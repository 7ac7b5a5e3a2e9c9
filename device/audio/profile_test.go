package audio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidforge/hidforge/device/audio"
	"github.com/hidforge/hidforge/usb/hid"
)

func writeTempProfile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadProfileYAML(t *testing.T) {
	path := writeTempProfile(t, "profile.yaml", `
controls:
  - byte: 0
    bit: 1
    usage: 0xE7
  - byte: 15
    bit: 0
    usage: 0x238
`)

	p, err := audio.LoadProfile(path)
	require.NoError(t, err)
	require.Len(t, p.Controls, 2)

	d, err := audio.NewDescriptor()
	require.NoError(t, err)
	require.NoError(t, p.Apply(d))

	ctrl, st := d.GetItem(0, 1)
	require.Equal(t, hid.StatusGood, st)
	assert.Equal(t, uint8(0xE7), ctrl.Data[0])

	// Two-byte usage IDs serialize least significant byte first.
	ctrl, st = d.GetItem(15, 0)
	require.Equal(t, hid.StatusGood, st)
	size, _, _ := hid.HeaderFields(ctrl.Header)
	assert.Equal(t, uint8(2), size)
	assert.Equal(t, [2]uint8{0x38, 0x02}, ctrl.Data)
}

func TestLoadProfileTOML(t *testing.T) {
	path := writeTempProfile(t, "profile.toml", `
[[controls]]
byte = 0
bit = 2
usage = 0xB7
`)

	p, err := audio.LoadProfile(path)
	require.NoError(t, err)

	d, err := audio.NewDescriptor()
	require.NoError(t, err)
	require.NoError(t, p.Apply(d))

	ctrl, st := d.GetItem(0, 2)
	require.Equal(t, hid.StatusGood, st)
	assert.Equal(t, uint8(0xB7), ctrl.Data[0])
}

func TestApplyRejectsReadOnlyLocation(t *testing.T) {
	d, err := audio.NewDescriptor()
	require.NoError(t, err)

	p := audio.Profile{Controls: []audio.ControlOverride{{Byte: 3, Bit: 3, Usage: 0xE7}}}
	err = p.Apply(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad location")
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := audio.LoadProfile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
