package cmd

import (
	"log/slog"
	"os"

	"github.com/hidforge/hidforge/device/audio"
)

type Set struct {
	Byte uint `arg:"" help:"Report byte index"`
	Bit  uint `arg:"" help:"Report bit index"`

	Usage   uint16 `help:"Usage ID to write" required:""`
	Page    uint8  `help:"Usage page" default:"12"`
	Profile string `help:"Apply control overrides from a YAML or TOML profile first" type:"existingfile" env:"HIDFORGE_PROFILE"`
	NoColor bool   `help:"Disable colored output"`
}

// Run is called by Kong when the set command is executed.
func (c *Set) Run(logger *slog.Logger) error {
	desc, err := buildDescriptor(c.Profile, logger)
	if err != nil {
		return err
	}
	p := audio.Profile{Controls: []audio.ControlOverride{{
		Byte:  c.Byte,
		Bit:   c.Bit,
		Page:  c.Page,
		Usage: c.Usage,
	}}}
	if err := p.Apply(desc); err != nil {
		return err
	}
	logger.Info("control rewritten", "byte", c.Byte, "bit", c.Bit, "usage", c.Usage)
	desc.Prepare()
	writeHexDump(os.Stdout, desc.Bytes(), useColor(c.NoColor))
	return nil
}
