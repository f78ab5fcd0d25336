package watch

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"psxdump/internal/ram"
)

// Entry is one named address tracked for display.
type Entry struct {
	Name    string
	Address uint32
	Size    int
}

// ParseError reports a malformed watch line. One bad line abandons the
// whole load; there is no partial result.
type ParseError struct {
	Line  int
	Field string
	Value string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("watch line %d: invalid %s %q", e.Line, e.Field, e.Value)
}

// LoadFile reads a watch file from disk.
func LoadFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read watch file: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse reads name,address,size lines. Blank lines and '#' comments are
// skipped, as are lines with fewer than three comma-separated fields.
// Addresses are hex with an optional 0x prefix, sizes decimal. Entries
// keep file order; duplicate names are not collapsed.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 3 {
			continue
		}
		addrText := strings.TrimSpace(parts[1])
		addr, err := ram.ParseAddr(addrText)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Field: "address", Value: addrText}
		}
		sizeText := strings.TrimSpace(parts[2])
		size, err := strconv.Atoi(sizeText)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Field: "size", Value: sizeText}
		}
		entries = append(entries, Entry{
			Name:    strings.TrimSpace(parts[0]),
			Address: addr,
			Size:    size,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read watch file: %w", err)
	}
	return entries, nil
}
