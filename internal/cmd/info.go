package cmd

import (
	"fmt"
	"log/slog"

	"github.com/hidforge/hidforge/usb"
	"github.com/hidforge/hidforge/usb/hid"
)

type Info struct {
	Profile string `help:"Apply control overrides from a YAML or TOML profile first" type:"existingfile" env:"HIDFORGE_PROFILE"`
}

// Run is called by Kong when the info command is executed.
func (c *Info) Run(logger *slog.Logger) error {
	desc, err := buildDescriptor(c.Profile, logger)
	if err != nil {
		return err
	}
	desc.Prepare()

	fmt.Printf("descriptor length: %d bytes\n", desc.Length())
	fmt.Printf("report length:     %d bytes\n", desc.ReportLength())

	classDesc := usb.HIDFunction{BcdHID: 0x0111}.Encode(desc.Length())
	fmt.Printf("class descriptor:  % 02X\n", classDesc)

	fmt.Println("configurable locations:")
	for b := hid.MinValidByte; b <= hid.MaxValidByte; b++ {
		for bit := hid.MinValidBit; bit <= hid.MaxValidBit; bit++ {
			if desc.Configurable(b, bit) {
				fmt.Printf("  %d.%d\n", b, bit)
			}
		}
	}
	return nil
}
