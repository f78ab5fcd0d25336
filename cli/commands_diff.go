package cli

import (
	"fmt"
	"strings"

	"psxdump/internal/ram"
)

func cmdDiff(first *ram.Dump, args cliArgs) int {
	second, ok := loadDump(args.Files[1], false)
	if !ok {
		return 1
	}
	diffs := ram.Compare(first, second)
	fmt.Printf("\nFound %d byte differences\n", len(diffs))
	limit := args.DiffLimit
	if limit <= 0 {
		limit = 100
	}
	if len(diffs) > limit {
		fmt.Printf("(showing first %d)\n", limit)
		diffs = diffs[:limit]
	}
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("%-14s %-8s %-8s %s\n", "Address", "Before", "After", "Delta")
	fmt.Println(strings.Repeat("-", 50))
	for _, diff := range diffs {
		fmt.Printf("0x%08X     0x%02X     0x%02X     %+d\n", diff.Address, diff.Before, diff.After, diff.Delta())
	}
	return 0
}
