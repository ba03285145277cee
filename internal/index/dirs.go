package index

import (
	"os"
	"path/filepath"
)

// StartMenuDirs returns the shortcut roots to scan, in priority order:
// the system-wide start menu, the per-user start menu, then the user
// desktop. An unset environment variable just omits its root. Order
// matters downstream: the scanner keeps the first occurrence of a name,
// so earlier roots win duplicates.
func StartMenuDirs() []string {
	var dirs []string

	if v := os.Getenv("PROGRAMDATA"); v != "" {
		dirs = append(dirs, filepath.Join(v, "Microsoft", "Windows", "Start Menu", "Programs"))
	}
	if v := os.Getenv("APPDATA"); v != "" {
		dirs = append(dirs, filepath.Join(v, "Microsoft", "Windows", "Start Menu", "Programs"))
	}
	if v := os.Getenv("USERPROFILE"); v != "" {
		dirs = append(dirs, filepath.Join(v, "Desktop"))
	}

	return dirs
}
