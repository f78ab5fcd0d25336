package ram

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DumpHuman renders data as rows of hex bytes with a printable-ASCII
// column, addressed from addr. Bytes in [32,127) print verbatim, everything
// else as '.'.
func DumpHuman(addr uint32, data []byte, columns int) string {
	if columns <= 0 {
		columns = 16
	}
	lines := make([]string, 0, (len(data)/columns)+1)
	for offset := 0; offset < len(data); offset += columns {
		end := offset + columns
		if end > len(data) {
			end = len(data)
		}
		chunk := data[offset:end]
		hex := make([]string, len(chunk))
		for i, b := range chunk {
			hex[i] = fmt.Sprintf("%02X", b)
		}
		hexWidth := columns*3 - 1
		hexText := strings.Join(hex, " ")
		if len(hexText) < hexWidth {
			hexText += strings.Repeat(" ", hexWidth-len(hexText))
		}
		line := fmt.Sprintf("0x%08X: %s  %s", addr+uint32(offset), hexText, formatASCIIChunk(chunk))
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// DumpJSON encodes an addressed byte range as a single JSON payload.
func DumpJSON(addr uint32, data []byte) (string, error) {
	type payload struct {
		Address uint32 `json:"address"`
		Buffer  []byte `json:"buffer"`
	}
	encoded, err := json.Marshal(payload{Address: addr, Buffer: data})
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func formatASCIIChunk(chunk []byte) string {
	var ascii strings.Builder
	ascii.Grow(len(chunk))
	for _, b := range chunk {
		if b >= 32 && b < 127 {
			ascii.WriteByte(b)
		} else {
			ascii.WriteByte('.')
		}
	}
	return ascii.String()
}
