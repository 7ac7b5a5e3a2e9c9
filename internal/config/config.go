// Package config defines the CLI structure and configuration for hidforge.
package config

import (
	"github.com/hidforge/hidforge/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"HIDFORGE_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"HIDFORGE_LOG_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Config string `help:"Path to a configuration file" env:"HIDFORGE_CONFIG"`

	Dump cmd.Dump `cmd:"" help:"Compile the report descriptor and hex-dump it"`
	Get  cmd.Get  `cmd:"" help:"Show one report item"`
	Set  cmd.Set  `cmd:"" help:"Rewrite one report item and show the recompiled descriptor"`
	Info cmd.Info `cmd:"" help:"Show descriptor sizes and configurable locations"`
}
