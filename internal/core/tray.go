package core

import (
	_ "embed"
	"log"

	"github.com/energye/systray"
)

//go:embed assets/icon.ico
var trayIcon []byte

// Tray keeps the launcher reachable when no global hotkey could bind. A left
// click on the icon toggles the popup; the menu offers explicit open and quit.
type Tray struct {
	commands *Commands
	onToggle func()
	onQuit   func()
}

func NewTray(commands *Commands, onToggle, onQuit func()) *Tray {
	return &Tray{
		commands: commands,
		onToggle: onToggle,
		onQuit:   onQuit,
	}
}

// Run starts the tray loop. It blocks until systray.Quit is called, so the
// caller runs it on its own goroutine alongside the GTK main loop.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

func (t *Tray) onReady() {
	systray.SetIcon(trayIcon)
	systray.SetTitle("QuickLaunch")
	systray.SetTooltip("QuickLaunch - press the hotkey or click to search")

	systray.SetOnClick(func(menu systray.IMenu) {
		t.onToggle()
	})

	mOpen := systray.AddMenuItem("Open QuickLaunch", "Show the search popup")
	systray.AddSeparator()
	mQuit := systray.AddMenuItem("Quit", "Quit QuickLaunch")

	go func() {
		for range mOpen.ClickedCh {
			if err := t.commands.ShowWindow(); err != nil {
				log.Printf("[TRAY] Failed to show popup: %v", err)
			}
		}
	}()

	go func() {
		<-mQuit.ClickedCh
		systray.Quit()
	}()
}

func (t *Tray) onExit() {
	t.onQuit()
}

// Stop tears the tray down.
func (t *Tray) Stop() {
	systray.Quit()
}
