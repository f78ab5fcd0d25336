package cli

import (
	"errors"
	"fmt"
	"os"

	"psxdump/internal/ram"
	"psxdump/internal/watch"
)

func fail(err error) int {
	fmt.Fprintln(os.Stderr, formatCliError(err))
	return 1
}

func formatCliError(err error) string {
	if err == nil {
		return ""
	}
	var parseErr *watch.ParseError
	if errors.As(err, &parseErr) {
		return formatCliBadge("PARSE", parseErr.Error())
	}
	switch {
	case errors.Is(err, ram.ErrOutOfRange):
		return formatCliBadge("RANGE", err.Error())
	case errors.Is(err, ram.ErrUnsupportedSize):
		return formatCliBadge("SIZE", err.Error())
	}
	return formatCliBadge("ERR", err.Error())
}

func formatCliBadge(code string, msg string) string {
	return "[" + code + "] " + msg
}

// loadDump reads one dump and reports the non-fatal size mismatch warning.
// The Loaded line is suppressed in raw output mode to keep stdout binary
// clean.
func loadDump(path string, quiet bool) (*ram.Dump, bool) {
	dump, err := ram.Load(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatCliError(err))
		return nil, false
	}
	if dump.Len() != ram.Size {
		fmt.Fprintf(os.Stderr, "Warning: expected %d bytes, got %d\n", ram.Size, dump.Len())
	}
	if !quiet {
		fmt.Printf("Loaded: %s (%d bytes)\n", path, dump.Len())
	}
	return dump, true
}
