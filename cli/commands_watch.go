package cli

import (
	"fmt"
	"strings"

	"psxdump/internal/ram"
	"psxdump/internal/watch"
)

func cmdWatch(dump *ram.Dump, path string) int {
	entries, err := watch.LoadFile(path)
	if err != nil {
		return fail(err)
	}
	fmt.Printf("\nMemory watches from %s:\n", path)
	fmt.Println(strings.Repeat("-", 50))
	for _, entry := range entries {
		value, err := dump.ReadValue(entry.Address, entry.Size)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("%-20s 0x%08X (%dB): %d\n", entry.Name, entry.Address, entry.Size, value)
	}
	return 0
}
