package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"

	"github.com/hidforge/hidforge/usb/hid"
)

// Profile is a set of control overrides loaded from a YAML or TOML file.
//
// Example (YAML):
//
//	controls:
//	  - byte: 0
//	    bit: 1
//	    usage: 0xE7
type Profile struct {
	Controls []ControlOverride `yaml:"controls" toml:"controls"`
}

// ControlOverride rewrites one control of the report grid. Page defaults
// to the Consumer page when omitted. Usage IDs above 0xFF produce a
// two-byte Usage item, least significant byte first.
type ControlOverride struct {
	Byte  uint   `yaml:"byte" toml:"byte"`
	Bit   uint   `yaml:"bit" toml:"bit"`
	Page  uint8  `yaml:"page,omitempty" toml:"page,omitempty"`
	Usage uint16 `yaml:"usage" toml:"usage"`
}

// LoadProfile reads overrides from path, choosing the decoder by file
// extension: .toml is TOML, everything else is parsed as YAML.
func LoadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("audio: read profile: %w", err)
	}
	var p Profile
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if err := toml.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("audio: parse profile %s: %w", path, err)
		}
		return &p, nil
	}
	if err := yaml.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("audio: parse profile %s: %w", path, err)
	}
	return &p, nil
}

// Apply writes every override into the table. The first rejected write
// stops the walk; overrides before it stay applied.
func (p *Profile) Apply(d *hid.Descriptor) error {
	for _, c := range p.Controls {
		page := c.Page
		if page == 0 {
			page = hid.UsagePageConsumer
		}
		data, size := UsageData(c.Usage)
		header := hid.Header(hid.UsageTag, hid.ItemTypeLocal, size)
		if st := d.SetItem(c.Byte, c.Bit, page, header, data); st != hid.StatusGood {
			return fmt.Errorf("audio: set %d.%d: %s", c.Byte, c.Bit, st)
		}
	}
	return nil
}

// UsageData encodes a usage ID least significant byte first, returning
// the bytes and the matching header size field.
func UsageData(u uint16) ([]uint8, uint8) {
	if u <= 0xFF {
		return []uint8{uint8(u)}, 1
	}
	return []uint8{uint8(u), uint8(u >> 8)}, 2
}
