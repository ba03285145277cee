// Package window owns the popup's visibility state machine. It talks to the
// actual surface only through the Surface interface, and to the
// presentation layer only through the event bus.
package window

import (
	"log"
	"sync"

	"quicklaunch/internal/event"
)

// State of the popup surface.
type State int

const (
	Hidden State = iota
	Shown
)

func (s State) String() string {
	if s == Shown {
		return "Shown"
	}
	return "Hidden"
}

// Surface abstracts the single popup window. Implementations must be called
// from the UI thread; the controller's callers do that hop.
type Surface interface {
	Show() error
	Hide() error
	Focus()
	Move(x, y int)
	// Size returns the surface's outer size in physical pixels.
	Size() (w, h int)
	// Position returns the surface's current outer position.
	Position() (x, y int)
	// Monitor returns the current monitor's size; ok is false when no
	// monitor information is available.
	Monitor() (w, h int, ok bool)
}

// Controller toggles the popup between Hidden and Shown. The popup starts
// Hidden so it never flashes at launch.
type Controller struct {
	mu           sync.Mutex
	surface      Surface
	bus          *event.Bus
	store        *PosStore
	state        State
	centerOffset int
}

func NewController(surface Surface, bus *event.Bus, store *PosStore, centerOffset int) *Controller {
	return &Controller{
		surface:      surface,
		bus:          bus,
		store:        store,
		state:        Hidden,
		centerOffset: centerOffset,
	}
}

// State reports the current visibility state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Toggle hides when Shown and shows (centered, focused) when Hidden.
func (c *Controller) Toggle() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == Shown {
		return c.hideLocked()
	}
	return c.showLocked()
}

// ShowCentered is the explicit show request: it recenters, shows, and takes
// focus regardless of the current state.
func (c *Controller) ShowCentered() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showLocked()
}

// Hide hides the popup unconditionally.
func (c *Controller) Hide() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hideLocked()
}

func (c *Controller) showLocked() error {
	c.centerLocked()
	if err := c.surface.Show(); err != nil {
		return err
	}
	c.surface.Focus()
	c.state = Shown
	log.Printf("[WINDOW] %s", c.state)
	c.bus.Emit(event.ResetSearch, "")
	return nil
}

func (c *Controller) hideLocked() error {
	if err := c.surface.Hide(); err != nil {
		return err
	}
	c.state = Hidden
	log.Printf("[WINDOW] %s", c.state)
	return nil
}

// centerLocked applies the centering policy: horizontal center, vertical
// center biased centerOffset pixels upward. Without monitor info the
// position is left unchanged.
func (c *Controller) centerLocked() {
	mw, mh, ok := c.surface.Monitor()
	if !ok {
		return
	}
	w, h := c.surface.Size()
	x := (mw - w) / 2
	y := mh/2 - h/2 - c.centerOffset
	c.surface.Move(x, y)
}

// SavePos captures the surface's current position into the store.
func (c *Controller) SavePos() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	x, y := c.surface.Position()
	c.store.Save(Pos{X: x, Y: y})
	return nil
}

// RestorePos moves the surface to the last saved position, falling back to
// the centering policy when nothing was saved.
func (c *Controller) RestorePos() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.store.Load(); ok {
		c.surface.Move(p.X, p.Y)
		return nil
	}
	c.centerLocked()
	return nil
}
