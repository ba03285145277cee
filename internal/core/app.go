package core

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"quicklaunch/internal/config"
	"quicklaunch/internal/event"
	"quicklaunch/internal/hotkey"
	"quicklaunch/internal/icon"
	"quicklaunch/internal/index"
	"quicklaunch/internal/window"
)

// App is the main application
type App struct {
	config     *config.Config
	bus        *event.Bus
	popup      *Popup
	commands   *Commands
	controller *window.Controller
	registrar  *hotkey.Registrar
	tray       *Tray
	sigChan    chan os.Signal

	quitOnce sync.Once
}

// NewApp wires all components. The popup is built hidden up front; failing
// to build it is the only fatal condition.
func NewApp(cfg *config.Config) (*App, error) {
	gtk.Init(nil)
	SetupStyles()
	if home, err := os.UserHomeDir(); err == nil {
		LoadCustomCSS(filepath.Join(home, ".config", "quicklaunch", "style.css"))
	}

	bus := event.NewBus()

	popup, err := NewPopup(cfg, bus)
	if err != nil {
		return nil, fmt.Errorf("failed to create popup: %w", err)
	}

	controller := window.NewController(popup.Surface(), bus, window.NewPosStore(), cfg.Window.CenterOffset)

	icons, err := icon.NewResolver(cfg)
	if err != nil {
		log.Printf("Failed to create icon resolver: %v", err)
		icons = icon.NoopResolver{}
	}

	ui := UIRunner(func(fn func()) { glib.IdleAdd(fn) })
	commands := NewCommands(cfg, index.NewScanner(cfg), icons, controller, ui)
	popup.Bind(commands)

	a := &App{
		config:     cfg,
		bus:        bus,
		popup:      popup,
		commands:   commands,
		controller: controller,
		sigChan:    make(chan os.Signal, 1),
	}
	a.tray = NewTray(commands, a.toggle, a.Quit)
	return a, nil
}

// Run starts the application and blocks in the GTK main loop.
func (a *App) Run() error {
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-a.sigChan
		log.Printf("Received signal: %v", sig)
		a.Quit()
	}()

	log.Println("QuickLaunch starting...")

	// Warm the index off the UI thread so the first search is instant.
	go func() {
		apps, err := a.commands.GetApps()
		if err != nil {
			log.Printf("Initial scan failed: %v", err)
			return
		}
		log.Printf("Initial scan indexed %d shortcuts", len(apps))
	}()

	if a.config.Hotkey.Enabled {
		a.registrar = hotkey.NewRegistrar(hotkey.NewSystemBinder(), a.bus)
		a.registrar.Register(func() {
			glib.IdleAdd(func() {
				if err := a.controller.Toggle(); err != nil {
					log.Printf("Toggle failed: %v", err)
				}
			})
		})
	} else {
		log.Println("Global hotkey disabled by config")
	}

	go a.tray.Run()

	gtk.Main()
	return nil
}

func (a *App) toggle() {
	glib.IdleAdd(func() {
		if err := a.controller.Toggle(); err != nil {
			log.Printf("Toggle failed: %v", err)
		}
	})
}

// Quit gracefully quits the application. Safe to call more than once.
func (a *App) Quit() {
	a.quitOnce.Do(func() {
		log.Println("QuickLaunch shutting down...")
		if a.registrar != nil {
			a.registrar.Unregister()
		}
		a.tray.Stop()
		glib.IdleAdd(func() {
			gtk.MainQuit()
		})
	})
}
