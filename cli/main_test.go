package cli

import "testing"

func TestSelectCommandPrecedence(t *testing.T) {
	one := []string{"a.bin"}
	two := []string{"a.bin", "b.bin"}

	cases := []struct {
		name     string
		args     cliArgs
		expected command
	}{
		{"default", cliArgs{Files: one}, cmdInfoMode},
		{"address", cliArgs{Files: one, Address: "0x80068F58"}, cmdReadMode},
		{"game", cliArgs{Files: one, Game: "crash3"}, cmdGameMode},
		{"watch", cliArgs{Files: one, WatchFile: "w.txt"}, cmdWatchMode},
		{"diff", cliArgs{Files: two, Diff: true}, cmdDiffMode},
		{"diff needs two files", cliArgs{Files: one, Diff: true}, cmdInfoMode},
		{"diff beats address", cliArgs{Files: two, Diff: true, Address: "0x80000000"}, cmdDiffMode},
		{"address beats game", cliArgs{Files: one, Address: "0x80000000", Game: "crash3"}, cmdReadMode},
		{"game beats watch", cliArgs{Files: one, Game: "crash3", WatchFile: "w.txt"}, cmdGameMode},
		{"shell beats all", cliArgs{Files: two, Shell: true, Diff: true, Address: "0x80000000"}, cmdShellMode},
	}
	for _, c := range cases {
		if actual := selectCommand(c.args); actual != c.expected {
			t.Errorf("%s: got mode %d, expected %d", c.name, actual, c.expected)
		}
	}
}

func TestParseCLIDefaults(t *testing.T) {
	args, err := parseCLI([]string{"dump.bin"})
	if err != nil {
		t.Fatalf("parseCLI error: %v", err)
	}
	if args.Size != 4 {
		t.Errorf("got size: %d\nexpected size: 4", args.Size)
	}
	if args.HexLength != 64 {
		t.Errorf("got hex length: %d\nexpected hex length: 64", args.HexLength)
	}
	if args.DiffLimit != 100 {
		t.Errorf("got diff limit: %d\nexpected diff limit: 100", args.DiffLimit)
	}
}

func TestParseCLIShortFlags(t *testing.T) {
	args, err := parseCLI([]string{"a.bin", "b.bin", "-d", "-a", "0x80068F58", "-s", "2", "-x"})
	if err != nil {
		t.Fatalf("parseCLI error: %v", err)
	}
	if !args.Diff || !args.Hex {
		t.Errorf("got args: %+v\nexpected diff and hex set", args)
	}
	if args.Address != "0x80068F58" || args.Size != 2 {
		t.Errorf("got address %q size %d\nexpected 0x80068F58 size 2", args.Address, args.Size)
	}
	if len(args.Files) != 2 {
		t.Errorf("got %d files, expected 2", len(args.Files))
	}
}

func TestParseCLIRejectsNoFiles(t *testing.T) {
	if _, err := parseCLI(nil); err == nil {
		t.Error("parseCLI with no files expected error, got nil")
	}
}
