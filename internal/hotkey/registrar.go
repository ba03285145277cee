package hotkey

import (
	"log"

	"quicklaunch/internal/event"
	"quicklaunch/internal/failover"
)

// Binding is a live global hotkey. The OS fires both transitions of the
// combination; consumers read them from separate channels.
type Binding interface {
	Keydown() <-chan struct{}
	Keyup() <-chan struct{}
	Unregister()
}

// Binder turns a candidate into a live binding. Registration fails when
// another process already owns the combination.
type Binder interface {
	Bind(c Candidate) (Binding, error)
}

// Registrar walks the candidate list at startup, keeps the first binding
// that succeeds, and reports the outcome on the event bus. No candidate
// registering is not fatal; the tray remains as the fallback entry point.
type Registrar struct {
	binder     Binder
	bus        *event.Bus
	candidates []Candidate
	binding    Binding
	label      string
}

func NewRegistrar(binder Binder, bus *event.Bus) *Registrar {
	return &Registrar{
		binder:     binder,
		bus:        bus,
		candidates: DefaultCandidates,
	}
}

// Register tries each candidate in order and starts dispatching onPress for
// the winner. It returns whether any candidate bound. onPress runs on the
// dispatch goroutine; callers hand off to the UI thread themselves.
func (r *Registrar) Register(onPress func()) bool {
	winner, failures, ok := failover.TryInOrder(r.candidates, func(c Candidate) error {
		b, err := r.binder.Bind(c)
		if err != nil {
			return err
		}
		r.binding = b
		return nil
	})

	for _, err := range failures {
		log.Printf("[HOTKEY] Candidate unavailable: %v", err)
	}

	if !ok {
		log.Printf("[HOTKEY] No global hotkey registered")
		r.bus.Emit(event.HotkeyFailed,
			"No global hotkey could be registered; use the tray icon to open the launcher")
		return false
	}

	r.label = winner.Label()
	log.Printf("[HOTKEY] Registered: %s", r.label)
	r.bus.Emit(event.HotkeyRegistered, r.label)

	go r.dispatch(r.binding, onPress)
	return true
}

// Label returns the registered combination's label, empty if none bound.
func (r *Registrar) Label() string {
	return r.label
}

// Unregister releases the binding, if any.
func (r *Registrar) Unregister() {
	if r.binding != nil {
		r.binding.Unregister()
		r.binding = nil
	}
}

// dispatch forwards pressed transitions only. Acting on the released
// transition as well would toggle twice per physical keystroke.
func (r *Registrar) dispatch(b Binding, onPress func()) {
	for {
		select {
		case _, ok := <-b.Keydown():
			if !ok {
				return
			}
			onPress()
		case _, ok := <-b.Keyup():
			if !ok {
				return
			}
			// released transition: ignored
		}
	}
}
