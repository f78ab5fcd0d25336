package ram

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAddr parses a 32-bit address in hex, accepting $ and 0x prefixes.
func ParseAddr(value string) (uint32, error) {
	text := strings.TrimSpace(strings.ToLower(value))
	text = strings.TrimPrefix(text, "$")
	text = strings.TrimPrefix(text, "0x")
	v, err := strconv.ParseUint(text, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid address: %s", value)
	}
	return uint32(v), nil
}

// ParsePositiveInt parses a decimal (or $/0x hex) integer greater than zero.
func ParsePositiveInt(value string) (int, error) {
	text := strings.TrimSpace(strings.ToLower(value))
	if strings.HasPrefix(text, "$") {
		text = "0x" + text[1:]
	}
	parsed, err := strconv.ParseInt(text, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid length: %s", value)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("length must be > 0")
	}
	return int(parsed), nil
}
