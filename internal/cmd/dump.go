package cmd

import (
	"log/slog"
	"os"
)

type Dump struct {
	Profile string `help:"Apply control overrides from a YAML or TOML profile before compiling" type:"existingfile" env:"HIDFORGE_PROFILE"`
	NoColor bool   `help:"Disable colored output"`
}

// Run is called by Kong when the dump command is executed.
func (c *Dump) Run(logger *slog.Logger) error {
	desc, err := buildDescriptor(c.Profile, logger)
	if err != nil {
		return err
	}
	desc.Prepare()
	logger.Debug("descriptor compiled", "bytes", desc.Length(), "reportBytes", desc.ReportLength())
	writeHexDump(os.Stdout, desc.Bytes(), useColor(c.NoColor))
	return nil
}
