package core

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/sahilm/fuzzy"

	"quicklaunch/internal/config"
	"quicklaunch/internal/icon"
	"quicklaunch/internal/index"
	"quicklaunch/internal/launch"
	"quicklaunch/internal/window"
)

// UIRunner schedules fn on the UI-owning thread. Commands run on worker
// goroutines and must never touch the surface directly.
type UIRunner func(fn func())

// Commands is the boundary the presentation layer calls into. Errors cross
// it as plain descriptive strings wrapped in error values.
type Commands struct {
	cfg        *config.Config
	scanner    *index.Scanner
	icons      icon.Resolver
	controller *window.Controller
	ui         UIRunner

	mu         sync.RWMutex
	apps       []index.AppEntry
	appsLoaded bool
}

func NewCommands(cfg *config.Config, scanner *index.Scanner, icons icon.Resolver,
	controller *window.Controller, ui UIRunner) *Commands {
	return &Commands{
		cfg:        cfg,
		scanner:    scanner,
		icons:      icons,
		controller: controller,
		ui:         ui,
	}
}

// GetApps rescans the shortcut roots in full and returns the fresh set.
func (c *Commands) GetApps() ([]index.AppEntry, error) {
	apps := c.scanner.Scan(index.StartMenuDirs())

	c.mu.Lock()
	c.apps = apps
	c.appsLoaded = true
	c.mu.Unlock()

	return apps, nil
}

// SearchApps fuzzy-filters the indexed set by name. An empty query returns
// the head of the sorted set. The set is scanned on first use.
func (c *Commands) SearchApps(query string) ([]index.AppEntry, error) {
	c.mu.RLock()
	loaded := c.appsLoaded
	c.mu.RUnlock()

	if !loaded {
		if _, err := c.GetApps(); err != nil {
			return nil, err
		}
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	maxResults := c.cfg.Search.MaxResults
	if query == "" {
		if len(c.apps) > maxResults {
			return c.apps[:maxResults], nil
		}
		return c.apps, nil
	}

	names := make([]string, len(c.apps))
	for i, a := range c.apps {
		names[i] = a.Name
	}

	matches := fuzzy.Find(query, names)
	minScore := c.cfg.Search.MinScore
	filtered := matches[:0]
	for _, m := range matches {
		if m.Score >= minScore {
			filtered = append(filtered, m)
		}
	}

	// Exact prefix matches rank above pure fuzzy score.
	lowQuery := strings.ToLower(query)
	sort.SliceStable(filtered, func(i, j int) bool {
		iPrefix := strings.HasPrefix(strings.ToLower(filtered[i].Str), lowQuery)
		jPrefix := strings.HasPrefix(strings.ToLower(filtered[j].Str), lowQuery)
		if iPrefix != jPrefix {
			return iPrefix
		}
		return filtered[i].Score > filtered[j].Score
	})

	results := make([]index.AppEntry, 0, maxResults)
	for _, m := range filtered {
		results = append(results, c.apps[m.Index])
		if len(results) >= maxResults {
			break
		}
	}

	log.Printf("[SEARCH] query=%q matched=%d returned=%d", query, len(matches), len(results))
	return results, nil
}

// GetIcon fetches a best-effort icon for one entry's shortcut path.
func (c *Commands) GetIcon(path string) (string, error) {
	return c.icons.Resolve(path)
}

// LaunchApp spawns the entry's target and returns immediately.
func (c *Commands) LaunchApp(path string) error {
	if err := launch.Start(path); err != nil {
		return fmt.Errorf("launch failed: %v", err)
	}
	return nil
}

// HideWindow hides the popup.
func (c *Commands) HideWindow() error {
	return c.onUI(c.controller.Hide)
}

// ShowWindow shows the popup centered and transfers focus to it.
func (c *Commands) ShowWindow() error {
	return c.onUI(c.controller.ShowCentered)
}

// SaveWindowPos captures the popup's current position.
func (c *Commands) SaveWindowPos() error {
	return c.onUI(c.controller.SavePos)
}

// RestoreWindowPos moves the popup to the saved position, or recenters.
func (c *Commands) RestoreWindowPos() error {
	return c.onUI(c.controller.RestorePos)
}

// onUI runs fn on the UI thread and waits for its result.
func (c *Commands) onUI(fn func() error) error {
	errCh := make(chan error, 1)
	c.ui(func() { errCh <- fn() })
	return <-errCh
}
