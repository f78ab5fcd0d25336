package cli

import (
	"fmt"
	"os"
	"strings"

	"psxdump/internal/ram"
)

func cmdRead(dump *ram.Dump, args cliArgs) int {
	addr, err := ram.ParseAddr(args.Address)
	if err != nil {
		return fail(err)
	}
	value, err := dump.ReadValue(addr, args.Size)
	if err != nil {
		return fail(err)
	}
	if !args.Raw {
		fmt.Printf("\n0x%08X (%d bytes): %d (0x%0*X)\n", addr, args.Size, value, args.Size*2, value)
	}
	if args.Hex || args.JSON || args.Raw {
		return dumpHex(dump, addr, args)
	}
	return 0
}

func dumpHex(dump *ram.Dump, addr uint32, args cliArgs) int {
	data, err := dump.Slice(addr, args.HexLength)
	if err != nil {
		return fail(err)
	}
	switch {
	case args.Raw:
		if _, err := os.Stdout.Write(data); err != nil {
			return fail(err)
		}
		return 0
	case args.JSON:
		payload, err := ram.DumpJSON(addr, data)
		if err != nil {
			return fail(err)
		}
		fmt.Println(payload)
		return 0
	}
	columns := 0
	if args.Columns != nil {
		columns = *args.Columns
	}
	fmt.Printf("\nHex dump at 0x%08X:\n", addr)
	fmt.Println(strings.Repeat("-", 60))
	fmt.Println(ram.DumpHuman(addr, data, columns))
	return 0
}
