// Package gamedb holds built-in tables of well-known RAM addresses for
// supported games.
package gamedb

import (
	"sort"
	"strings"
)

// Field is one known memory location for a game. Table order is display
// order.
type Field struct {
	Name    string
	Address uint32
	Size    int
	Label   string
}

var games = map[string][]Field{
	"crash3": {
		{Name: "lives", Address: 0x80068F58, Size: 1, Label: "Lives"},
		{Name: "wumpa", Address: 0x80068F5C, Size: 2, Label: "Wumpa Fruits"},
		{Name: "crystals", Address: 0x80068F60, Size: 4, Label: "Crystals"},
	},
	"crash2": {
		{Name: "lives", Address: 0x800673A0, Size: 1, Label: "Lives"},
		{Name: "wumpa", Address: 0x800673A4, Size: 2, Label: "Wumpa Fruits"},
	},
}

// Lookup returns the known fields for a game id.
func Lookup(id string) ([]Field, bool) {
	fields, ok := games[strings.ToLower(strings.TrimSpace(id))]
	return fields, ok
}

// IDs lists the supported game ids, sorted.
func IDs() []string {
	ids := make([]string, 0, len(games))
	for id := range games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
