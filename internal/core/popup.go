package core

import (
	"encoding/base64"
	"fmt"
	"log"
	"sync/atomic"

	"github.com/gotk3/gotk3/gdk"
	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"quicklaunch/internal/config"
	"quicklaunch/internal/event"
	"quicklaunch/internal/index"
)

const iconSize = 24

// Popup is the single search surface. It is a thin consumer of Commands:
// all indexing, icon, and launch work happens behind the boundary.
type Popup struct {
	cfg           *config.Config
	window        *gtk.Window
	searchEntry   *gtk.Entry
	resultList    *gtk.ListBox
	commands      *Commands
	bus           *event.Bus
	currentItems  []index.AppEntry
	searchVersion int64
}

// NewPopup constructs the popup surface hidden. Construction failure is the
// one fatal condition in this program; the caller aborts on error.
func NewPopup(cfg *config.Config, bus *event.Bus) (*Popup, error) {
	window, err := gtk.WindowNew(gtk.WINDOW_TOPLEVEL)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	window.SetTitle(cfg.AppName)
	window.SetDecorated(false)
	window.SetSkipTaskbarHint(true)
	window.SetSkipPagerHint(true)
	window.SetDefaultSize(cfg.Window.Width, cfg.Window.Height)
	window.SetName("quicklaunch-window")

	box, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to create box: %w", err)
	}
	window.Add(box)

	searchEntry, err := gtk.EntryNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create search entry: %w", err)
	}
	searchEntry.SetPlaceholderText("Search applications...")
	searchEntry.SetName("quicklaunch-entry")
	box.PackStart(searchEntry, false, false, 0)

	scrolled, err := gtk.ScrolledWindowNew(nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create scrolled window: %w", err)
	}
	scrolled.SetPolicy(gtk.POLICY_NEVER, gtk.POLICY_AUTOMATIC)
	scrolled.SetVExpand(true)
	box.PackStart(scrolled, true, true, 0)

	resultList, err := gtk.ListBoxNew()
	if err != nil {
		return nil, fmt.Errorf("failed to create result list: %w", err)
	}
	resultList.SetName("result-list")
	scrolled.Add(resultList)

	p := &Popup{
		cfg:         cfg,
		window:      window,
		searchEntry: searchEntry,
		resultList:  resultList,
		bus:         bus,
	}

	p.setupSignals()
	p.subscribeEvents()
	return p, nil
}

// Surface returns the popup as the controller's surface.
func (p *Popup) Surface() *gtkSurface {
	return &gtkSurface{win: p.window}
}

// Bind attaches the command boundary. Must happen before the popup is shown.
func (p *Popup) Bind(commands *Commands) {
	p.commands = commands
}

func (p *Popup) setupSignals() {
	p.searchEntry.Connect("changed", func() {
		text, _ := p.searchEntry.GetText()
		p.onSearchChanged(text)
	})

	p.searchEntry.Connect("activate", func() {
		p.activateRow(0)
	})

	p.window.Connect("key-press-event", func(win *gtk.Window, ev *gdk.Event) bool {
		keyEvent := gdk.EventKeyNewFromEvent(ev)
		if keyEvent.KeyVal() == gdk.KEY_Escape {
			go p.hide()
			return true
		}
		return false
	})

	p.resultList.Connect("row-activated", func(list *gtk.ListBox, row *gtk.ListBoxRow) {
		p.activateRow(row.GetIndex())
	})

	p.window.Connect("focus-out-event", func(win *gtk.Window, ev *gdk.Event) bool {
		go p.hide()
		return false
	})
}

func (p *Popup) subscribeEvents() {
	p.bus.Subscribe(event.ResetSearch, func(string) {
		glib.IdleAdd(func() {
			p.searchEntry.SetText("")
			p.searchEntry.GrabFocus()
		})
	})

	p.bus.Subscribe(event.HotkeyRegistered, func(label string) {
		glib.IdleAdd(func() {
			p.searchEntry.SetPlaceholderText(fmt.Sprintf("Search applications... (%s)", label))
		})
	})

	p.bus.Subscribe(event.HotkeyFailed, func(msg string) {
		log.Printf("[POPUP] %s", msg)
		glib.IdleAdd(func() {
			p.searchEntry.SetPlaceholderText("Search applications... (open via tray)")
		})
	})
}

// onSearchChanged kicks a search off the UI thread and drops stale results.
func (p *Popup) onSearchChanged(text string) {
	if p.commands == nil {
		return
	}
	version := atomic.AddInt64(&p.searchVersion, 1)

	go func() {
		results, err := p.commands.SearchApps(text)
		if err != nil {
			log.Printf("[POPUP] Search failed: %v", err)
			return
		}
		glib.IdleAdd(func() {
			if atomic.LoadInt64(&p.searchVersion) != version {
				return // superseded by newer input
			}
			p.updateResults(results)
		})
	}()
}

func (p *Popup) updateResults(items []index.AppEntry) {
	p.resultList.GetChildren().Foreach(func(child interface{}) {
		if w, ok := child.(*gtk.Widget); ok {
			w.Destroy()
		}
	})

	p.currentItems = items
	for _, item := range items {
		row, err := p.buildRow(item)
		if err != nil {
			log.Printf("[POPUP] Failed to build row for %s: %v", item.Name, err)
			continue
		}
		p.resultList.Add(row)
	}
	p.resultList.ShowAll()

	if first := p.resultList.GetRowAtIndex(0); first != nil {
		p.resultList.SelectRow(first)
	}
}

func (p *Popup) buildRow(item index.AppEntry) (*gtk.ListBoxRow, error) {
	row, err := gtk.ListBoxRowNew()
	if err != nil {
		return nil, err
	}

	hbox, err := gtk.BoxNew(gtk.ORIENTATION_HORIZONTAL, 8)
	if err != nil {
		return nil, err
	}
	row.Add(hbox)

	image, err := gtk.ImageNew()
	if err != nil {
		return nil, err
	}
	image.SetSizeRequest(iconSize, iconSize)
	hbox.PackStart(image, false, false, 4)

	vbox, err := gtk.BoxNew(gtk.ORIENTATION_VERTICAL, 0)
	if err != nil {
		return nil, err
	}
	hbox.PackStart(vbox, true, true, 0)

	name, err := gtk.LabelNew(item.Name)
	if err != nil {
		return nil, err
	}
	name.SetHAlign(gtk.ALIGN_START)
	vbox.PackStart(name, false, false, 0)

	category, err := gtk.LabelNew(item.Category)
	if err != nil {
		return nil, err
	}
	category.SetHAlign(gtk.ALIGN_START)
	category.SetOpacity(0.6)
	vbox.PackStart(category, false, false, 0)

	p.loadRowIcon(image, item.Path)
	return row, nil
}

// loadRowIcon fetches the entry's icon off the UI thread and applies it
// when (and if) it arrives. Rows without icons keep the empty image.
func (p *Popup) loadRowIcon(image *gtk.Image, path string) {
	go func() {
		b64, err := p.commands.GetIcon(path)
		if err != nil || b64 == "" {
			return
		}
		raw, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return
		}
		glib.IdleAdd(func() {
			loader, err := gdk.PixbufLoaderNew()
			if err != nil {
				return
			}
			pixbuf, err := loader.WriteAndReturnPixbuf(raw)
			if err != nil {
				return
			}
			if scaled, err := pixbuf.ScaleSimple(iconSize, iconSize, gdk.INTERP_BILINEAR); err == nil {
				pixbuf = scaled
			}
			image.SetFromPixbuf(pixbuf)
		})
	}()
}

func (p *Popup) activateRow(idx int) {
	if idx < 0 || idx >= len(p.currentItems) {
		return
	}
	item := p.currentItems[idx]

	go func() {
		if err := p.commands.LaunchApp(item.Path); err != nil {
			log.Printf("[POPUP] %v", err)
			return
		}
		p.hide()
	}()
}

// hide routes every popup-initiated hide through one place so failures are
// always logged. Never call it from the UI thread; HideWindow blocks on it.
func (p *Popup) hide() {
	if p.commands == nil {
		return
	}
	if err := p.commands.HideWindow(); err != nil {
		log.Printf("[POPUP] Failed to hide popup: %v", err)
	}
}
