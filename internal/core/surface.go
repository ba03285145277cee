package core

import (
	"fmt"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/gtk"
)

// gtkSurface adapts the GTK window to window.Surface. Every method must run
// on the GTK main thread.
type gtkSurface struct {
	win *gtk.Window
}

func (s *gtkSurface) Show() error {
	if s.win == nil {
		return fmt.Errorf("popup surface is gone")
	}
	s.win.ShowAll()
	return nil
}

func (s *gtkSurface) Hide() error {
	if s.win == nil {
		return fmt.Errorf("popup surface is gone")
	}
	s.win.Hide()
	return nil
}

func (s *gtkSurface) Focus() {
	s.win.Present()
}

func (s *gtkSurface) Move(x, y int) {
	s.win.Move(x, y)
}

func (s *gtkSurface) Size() (int, int) {
	return s.win.GetSize()
}

func (s *gtkSurface) Position() (int, int) {
	return s.win.GetPosition()
}

func (s *gtkSurface) Monitor() (int, int, bool) {
	display, err := gdk.DisplayGetDefault()
	if err != nil || display == nil {
		return 0, 0, false
	}
	monitor, err := display.GetPrimaryMonitor()
	if err != nil || monitor == nil {
		return 0, 0, false
	}
	geo := monitor.GetGeometry()
	if geo == nil {
		return 0, 0, false
	}
	return geo.GetWidth(), geo.GetHeight(), true
}
