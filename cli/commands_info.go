package cli

import (
	"fmt"

	"psxdump/internal/ram"
)

func cmdInfo(dump *ram.Dump) int {
	fmt.Printf("\nRAM dump info:\n")
	fmt.Printf("  Size: %d bytes (%.2f MB)\n", dump.Len(), float64(dump.Len())/1024/1024)
	fmt.Printf("  Non-zero bytes: %d\n", dump.NonZero())
	fmt.Println()
	fmt.Println("Use --address 0x80XXXXXX to read specific memory")
	fmt.Println("Use --game crash3 to see known addresses")
	fmt.Println("Use --diff file1.bin file2.bin to compare dumps")
	return 0
}
