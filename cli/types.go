package cli

type cliArgs struct {
	Files     []string `arg:"" name:"file" help:"RAM dump file(s); the second file is only used by --diff."`
	Address   string   `short:"a" help:"Address to read (hex, e.g. 0x80068F58)."`
	Size      int      `short:"s" default:"4" help:"Value size in bytes (1, 2 or 4)."`
	Hex       bool     `short:"x" name:"hex" help:"Show a hex dump at --address."`
	HexLength int      `name:"hex-length" default:"64" help:"Hex dump length in bytes."`
	Columns   *int     `short:"c" name:"columns" help:"Bytes per hex dump line (default: 16)."`
	JSON      bool     `name:"json" xor:"format" help:"Output the hex dump range as JSON."`
	Raw       bool     `name:"raw" xor:"format" help:"Write the hex dump range as raw bytes."`
	Diff      bool     `short:"d" help:"Compare two dumps byte by byte."`
	DiffLimit int      `name:"diff-limit" default:"100" help:"Maximum differences to list."`
	WatchFile string   `short:"w" name:"watch-file" help:"File with memory watches."`
	Game      string   `short:"g" help:"Show known addresses for a game (crash2, crash3)."`
	Shell     bool     `name:"shell" help:"Open an interactive shell on the loaded dump."`
}

// command is the closed set of run modes; exactly one executes per
// invocation.
type command int

const (
	cmdInfoMode command = iota
	cmdShellMode
	cmdDiffMode
	cmdReadMode
	cmdGameMode
	cmdWatchMode
)
