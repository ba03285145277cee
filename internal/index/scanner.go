package index

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"quicklaunch/internal/config"
)

const shortcutExt = ".lnk"

// fallbackCategory is used when a shortcut's parent directory name is
// unusable as a grouping hint.
const fallbackCategory = "Other"

// Scanner walks shortcut roots and produces the deduplicated, sorted entry
// set. Per-entry failures (unreadable dirs, broken links) never abort a
// scan; they just drop that entry.
type Scanner struct {
	maxDepth   int
	noiseWords []string
}

// NewScanner creates a scanner from config.
func NewScanner(cfg *config.Config) *Scanner {
	return &Scanner{
		maxDepth:   cfg.Scan.MaxDepth,
		noiseWords: cfg.Scan.NoiseWords,
	}
}

// Scan enumerates every root in order and returns the combined entry set.
// Missing roots contribute nothing. Duplicate names keep the first
// occurrence in traversal order, so earlier roots take priority. The result
// is sorted ascending by name (byte-wise).
func (s *Scanner) Scan(dirs []string) []AppEntry {
	scanStart := time.Now()

	var apps []AppEntry
	seen := make(map[string]bool)

	for _, dir := range dirs {
		if _, err := os.Stat(dir); err != nil {
			log.Printf("[SCANNER] Skipping missing root: %s", dir)
			continue
		}

		visited := make(map[string]bool)
		s.walk(dir, 0, visited, func(path string) {
			entry, ok := s.toEntry(path)
			if !ok {
				return
			}
			if seen[entry.Name] {
				return
			}
			seen[entry.Name] = true
			apps = append(apps, entry)
		})
	}

	sort.Slice(apps, func(i, j int) bool {
		return apps[i].Name < apps[j].Name
	})

	log.Printf("[SCANNER] Scan completed: %d entries from %d roots in %v",
		len(apps), len(dirs), time.Since(scanStart))
	return apps
}

// walk recursively enumerates dir, following symlinks, to at most maxDepth
// levels below the root. visited holds resolved directory paths to break
// symlink cycles.
func (s *Scanner) walk(dir string, depth int, visited map[string]bool, visit func(path string)) {
	real, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return
	}
	if visited[real] {
		return
	}
	visited[real] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())

		isDir := e.IsDir()
		if e.Type()&fs.ModeSymlink != 0 {
			st, err := os.Stat(path)
			if err != nil {
				continue // broken link
			}
			isDir = st.IsDir()
		}

		if isDir {
			if depth+1 < s.maxDepth {
				s.walk(path, depth+1, visited, visit)
			}
			continue
		}
		visit(path)
	}
}

// toEntry converts a walked file into an AppEntry, rejecting non-shortcuts
// and noise entries.
func (s *Scanner) toEntry(path string) (AppEntry, bool) {
	if !strings.EqualFold(filepath.Ext(path), shortcutExt) {
		return AppEntry{}, false
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	// Substring match, deliberately not whole-word: "Helper" is rejected
	// because it contains "help".
	lower := strings.ToLower(name)
	for _, word := range s.noiseWords {
		if strings.Contains(lower, word) {
			return AppEntry{}, false
		}
	}

	return AppEntry{
		Name:     name,
		Path:     path,
		Category: categoryOf(path),
	}, true
}

// categoryOf derives the display grouping hint from the shortcut's
// immediate parent directory.
func categoryOf(path string) string {
	cat := filepath.Base(filepath.Dir(path))
	if cat == "" || cat == "." || cat == string(filepath.Separator) {
		return fallbackCategory
	}
	return cat
}
