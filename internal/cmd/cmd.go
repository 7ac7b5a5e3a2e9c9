// Package cmd implements the hidforge CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/hidforge/hidforge/device/audio"
	"github.com/hidforge/hidforge/usb/hid"
)

// buildDescriptor assembles the default audio control table and applies
// the profile overrides, if any.
func buildDescriptor(profilePath string, logger *slog.Logger) (*hid.Descriptor, error) {
	desc, err := audio.NewDescriptor()
	if err != nil {
		return nil, err
	}
	if profilePath != "" {
		p, err := audio.LoadProfile(profilePath)
		if err != nil {
			return nil, err
		}
		if err := p.Apply(desc); err != nil {
			return nil, err
		}
		logger.Info("profile applied", "file", profilePath, "overrides", len(p.Controls))
	}
	return desc, nil
}

func useColor(noColor bool) bool {
	return !noColor && term.IsTerminal(int(os.Stdout.Fd()))
}

// writeHexDump prints b as 16-byte rows with an offset column.
func writeHexDump(w io.Writer, b []byte, color bool) {
	for off := 0; off < len(b); off += 16 {
		end := min(off+16, len(b))
		if color {
			fmt.Fprintf(w, "\033[90m%04x\033[0m ", off)
		} else {
			fmt.Fprintf(w, "%04x ", off)
		}
		for i := off; i < end; i++ {
			fmt.Fprintf(w, " %02x", b[i])
		}
		fmt.Fprintln(w)
	}
}
