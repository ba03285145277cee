package index

// AppEntry is one launchable item discovered during a scan. Entries are
// plain values recomputed in full on every scan; Name is unique within a
// result set and doubles as the dedup key.
type AppEntry struct {
	Name     string `json:"name"`
	Path     string `json:"path"`     // the shortcut file, not its target
	Icon     string `json:"icon"`     // base64 PNG, empty until resolved
	Category string `json:"category"` // display grouping hint only
}
