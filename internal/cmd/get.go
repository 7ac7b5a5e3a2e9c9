package cmd

import (
	"fmt"
	"log/slog"

	"github.com/hidforge/hidforge/usb/hid"
)

type Get struct {
	Byte uint `arg:"" help:"Report byte index"`
	Bit  uint `arg:"" help:"Report bit index"`

	Profile string `help:"Apply control overrides from a YAML or TOML profile first" type:"existingfile" env:"HIDFORGE_PROFILE"`
}

// Run is called by Kong when the get command is executed.
func (c *Get) Run(logger *slog.Logger) error {
	desc, err := buildDescriptor(c.Profile, logger)
	if err != nil {
		return err
	}
	ctrl, st := desc.GetItem(c.Byte, c.Bit)
	if st != hid.StatusGood {
		return fmt.Errorf("get %d.%d: %s", c.Byte, c.Bit, st)
	}
	size, typ, tag := hid.HeaderFields(ctrl.Header)
	fmt.Printf("location:     %d.%d\n", c.Byte, c.Bit)
	fmt.Printf("usage page:   0x%02X\n", ctrl.Page)
	fmt.Printf("header:       0x%02X (tag %d, type %d, size %d)\n", ctrl.Header, tag, typ, size)
	fmt.Printf("data:         % 02X\n", ctrl.Data[:size])
	fmt.Printf("configurable: %t\n", desc.Configurable(c.Byte, c.Bit))
	return nil
}
