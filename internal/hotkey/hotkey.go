// Package hotkey registers one global key combination out of a fixed,
// ordered candidate list and dispatches its pressed transitions.
package hotkey

import "strings"

type Modifier int

const (
	ModCtrl Modifier = iota
	ModShift
	ModAlt
	ModSuper
)

type Key int

const (
	KeySpace Key = iota
	KeyF1
	KeyQ
)

// Candidate is one (modifier-set, key) pair the registrar may try.
type Candidate struct {
	Mods []Modifier
	Key  Key
}

// DefaultCandidates is the registration priority list. Alt-bearing combos
// are not eligible: releasing Alt activates the window system menu, which
// steals focus back from the popup.
var DefaultCandidates = []Candidate{
	{Mods: []Modifier{ModCtrl, ModShift}, Key: KeySpace},
	{Mods: []Modifier{ModCtrl, ModShift}, Key: KeyF1},
	{Mods: []Modifier{ModCtrl, ModShift}, Key: KeyQ},
}

var modifierLabels = map[Modifier]string{
	ModCtrl:  "Ctrl",
	ModShift: "Shift",
	ModAlt:   "Alt",
	ModSuper: "Win",
}

var keyLabels = map[Key]string{
	KeySpace: "Space",
	KeyF1:    "F1",
	KeyQ:     "Q",
}

// Label renders the candidate as a human-readable combination, e.g.
// "Ctrl+Shift+Space".
func (c Candidate) Label() string {
	parts := make([]string, 0, len(c.Mods)+1)
	for _, m := range c.Mods {
		parts = append(parts, modifierLabels[m])
	}
	key, ok := keyLabels[c.Key]
	if !ok {
		key = "?"
	}
	parts = append(parts, key)
	return strings.Join(parts, "+")
}
