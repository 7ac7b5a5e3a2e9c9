package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteHexDump(t *testing.T) {
	var buf bytes.Buffer
	writeHexDump(&buf, []byte{
		0x05, 0x0C, 0x09, 0x01, 0xA1, 0x01, 0x15, 0x00,
		0x25, 0x01, 0x75, 0x01, 0x95, 0x08, 0x09, 0xE2,
		0x09, 0xE9,
	}, false)

	want := "0000  05 0c 09 01 a1 01 15 00 25 01 75 01 95 08 09 e2\n" +
		"0010  09 e9\n"
	assert.Equal(t, want, buf.String())
}
