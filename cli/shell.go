package cli

import (
	"fmt"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"

	"psxdump/internal/ram"
)

// shell is the interactive mode over one already-loaded dump. The file is
// read once at startup and never reloaded.
type shell struct {
	dump *ram.Dump
	path string
}

func cmdShell(dump *ram.Dump, args cliArgs) int {
	sh := &shell{dump: dump, path: args.Files[0]}
	p := prompt.New(
		sh.executor,
		sh.completer,
		prompt.OptionTitle("psxdump"),
		prompt.OptionPrefix("psxdump> "),
	)
	p.Run()
	return 0
}

func (s *shell) executor(in string) {
	fields := strings.Fields(strings.TrimSpace(in))
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "read":
		s.read(fields[1:])
	case "hex":
		s.hex(fields[1:])
	case "game":
		if len(fields) < 2 {
			fmt.Println("Usage: game <id>")
			return
		}
		cmdGame(s.dump, fields[1])
	case "watch":
		if len(fields) < 2 {
			fmt.Println("Usage: watch <file>")
			return
		}
		cmdWatch(s.dump, fields[1])
	case "info":
		cmdInfo(s.dump)
	case "exit", "quit":
		os.Exit(0)
	default:
		fmt.Println("Command not found.")
	}
}

func (s *shell) read(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: read <hex-address> [size]")
		return
	}
	addr, err := ram.ParseAddr(args[0])
	if err != nil {
		fmt.Println(formatCliError(err))
		return
	}
	size := 4
	if len(args) > 1 {
		size, err = ram.ParsePositiveInt(args[1])
		if err != nil {
			fmt.Println(formatCliError(err))
			return
		}
	}
	value, err := s.dump.ReadValue(addr, size)
	if err != nil {
		fmt.Println(formatCliError(err))
		return
	}
	fmt.Printf("0x%08X (%d bytes): %d (0x%0*X)\n", addr, size, value, size*2, value)
}

func (s *shell) hex(args []string) {
	if len(args) == 0 {
		fmt.Println("Usage: hex <hex-address> [length]")
		return
	}
	addr, err := ram.ParseAddr(args[0])
	if err != nil {
		fmt.Println(formatCliError(err))
		return
	}
	length := 64
	if len(args) > 1 {
		length, err = ram.ParsePositiveInt(args[1])
		if err != nil {
			fmt.Println(formatCliError(err))
			return
		}
	}
	data, err := s.dump.Slice(addr, length)
	if err != nil {
		fmt.Println(formatCliError(err))
		return
	}
	fmt.Println(ram.DumpHuman(addr, data, 0))
}

func (s *shell) completer(prompt.Document) []prompt.Suggest {
	return []prompt.Suggest{
		{Text: "read", Description: "Read a value at an address"},
		{Text: "hex", Description: "Hex dump at an address"},
		{Text: "game", Description: "Show known addresses for a game"},
		{Text: "watch", Description: "Show values from a watch file"},
		{Text: "info", Description: "Dump summary stats"},
		{Text: "exit", Description: "Quit the shell"},
	}
}
