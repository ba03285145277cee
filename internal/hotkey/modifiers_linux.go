//go:build linux

package hotkey

import xhotkey "golang.design/x/hotkey"

var modifierMap = map[Modifier]xhotkey.Modifier{
	ModCtrl:  xhotkey.ModCtrl,
	ModShift: xhotkey.ModShift,
	ModAlt:   xhotkey.Mod1,
	ModSuper: xhotkey.Mod4,
}
