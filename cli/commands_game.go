package cli

import (
	"fmt"
	"strings"

	"psxdump/internal/gamedb"
	"psxdump/internal/ram"
)

func cmdGame(dump *ram.Dump, id string) int {
	fields, ok := gamedb.Lookup(id)
	if !ok {
		return fail(fmt.Errorf("unknown game %q (known: %s)", id, strings.Join(gamedb.IDs(), ", ")))
	}
	fmt.Printf("\nKnown addresses for %s:\n", id)
	fmt.Println(strings.Repeat("-", 40))
	for _, field := range fields {
		value, err := dump.ReadValue(field.Address, field.Size)
		if err != nil {
			return fail(err)
		}
		fmt.Printf("%-20s 0x%08X: %d\n", field.Label, field.Address, value)
	}
	return 0
}
