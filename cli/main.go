package cli

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
)

// Main parses argv and runs exactly one of the tool's modes, returning the
// process exit code.
func Main(argv []string) int {
	args, err := parseCLI(argv)
	if err != nil {
		fmt.Fprintln(os.Stderr, formatCliError(err))
		return 2
	}
	mode := selectCommand(args)
	dump, ok := loadDump(args.Files[0], args.Raw)
	if !ok {
		return 1
	}
	switch mode {
	case cmdShellMode:
		return cmdShell(dump, args)
	case cmdDiffMode:
		return cmdDiff(dump, args)
	case cmdReadMode:
		return cmdRead(dump, args)
	case cmdGameMode:
		return cmdGame(dump, args.Game)
	case cmdWatchMode:
		return cmdWatch(dump, args.WatchFile)
	default:
		return cmdInfo(dump)
	}
}

func parseCLI(argv []string) (cliArgs, error) {
	var args cliArgs
	parser, err := kong.New(
		&args,
		kong.Name("psxdump"),
		kong.Description("Read and analyze PS1 RAM dumps from emulator captures."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:   true,
			FlagsLast: true,
		}),
	)
	if err != nil {
		return args, err
	}
	if _, err := parser.Parse(argv); err != nil {
		return args, err
	}
	return args, nil
}

// selectCommand reduces the flag surface to a single mode. Precedence:
// shell, then diff (two files), then address, then game, then watch, with
// summary stats as the fallback. A --diff with only one file falls through.
func selectCommand(args cliArgs) command {
	switch {
	case args.Shell:
		return cmdShellMode
	case args.Diff && len(args.Files) >= 2:
		return cmdDiffMode
	case args.Address != "":
		return cmdReadMode
	case args.Game != "":
		return cmdGameMode
	case args.WatchFile != "":
		return cmdWatchMode
	default:
		return cmdInfoMode
	}
}
