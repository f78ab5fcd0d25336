package ram

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/marcinbor85/gohex"
)

// Load reads a dump file into memory. Files with a .hex or .ihx extension
// are decoded as Intel HEX records; anything else is treated as a raw
// binary capture.
func Load(path string) (*Dump, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hex", ".ihx":
		return loadIntelHex(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	return NewDump(data), nil
}

// loadIntelHex flattens the hex image starting at its lowest data segment,
// padding gaps with zeros, so both 0-based and absolute-addressed captures
// load the same way.
func loadIntelHex(path string) (*Dump, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	defer file.Close()

	mem := gohex.NewMemory()
	if err := mem.ParseIntelHex(file); err != nil {
		return nil, fmt.Errorf("parse intel hex %s: %w", path, err)
	}
	segments := mem.GetDataSegments()
	if len(segments) == 0 {
		return NewDump(nil), nil
	}
	origin := segments[0].Address
	end := segments[0].Address + uint32(len(segments[0].Data))
	for _, segment := range segments[1:] {
		if segment.Address < origin {
			origin = segment.Address
		}
		if stop := segment.Address + uint32(len(segment.Data)); stop > end {
			end = stop
		}
	}
	return NewDump(mem.ToBinary(origin, end-origin, 0x00)), nil
}
