package hotkey

import (
	"errors"
	"testing"
	"time"

	"quicklaunch/internal/event"
)

type fakeBinding struct {
	keydown chan struct{}
	keyup   chan struct{}
}

func newFakeBinding() *fakeBinding {
	return &fakeBinding{
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
	}
}

func (b *fakeBinding) Keydown() <-chan struct{} { return b.keydown }
func (b *fakeBinding) Keyup() <-chan struct{}   { return b.keyup }
func (b *fakeBinding) Unregister()              {}

// fakeBinder fails the first failCount candidates.
type fakeBinder struct {
	failCount int
	attempts  int
	binding   *fakeBinding
}

func (f *fakeBinder) Bind(c Candidate) (Binding, error) {
	f.attempts++
	if f.attempts <= f.failCount {
		return nil, errors.New("hotkey already in use: " + c.Label())
	}
	f.binding = newFakeBinding()
	return f.binding, nil
}

func TestRegister_ThirdCandidateWins(t *testing.T) {
	bus := event.NewBus()

	var registered []string
	var failed []string
	bus.Subscribe(event.HotkeyRegistered, func(p string) { registered = append(registered, p) })
	bus.Subscribe(event.HotkeyFailed, func(p string) { failed = append(failed, p) })

	binder := &fakeBinder{failCount: 2}
	r := NewRegistrar(binder, bus)

	if !r.Register(func() {}) {
		t.Fatal("Expected registration to succeed on third candidate")
	}

	if binder.attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", binder.attempts)
	}
	if len(registered) != 1 || registered[0] != DefaultCandidates[2].Label() {
		t.Errorf("Expected hotkey-registered with %q, got %v", DefaultCandidates[2].Label(), registered)
	}
	if len(failed) != 0 {
		t.Errorf("Expected no hotkey-failed event, got %v", failed)
	}
}

func TestRegister_Exhaustion(t *testing.T) {
	bus := event.NewBus()

	var registered []string
	var failed []string
	bus.Subscribe(event.HotkeyRegistered, func(p string) { registered = append(registered, p) })
	bus.Subscribe(event.HotkeyFailed, func(p string) { failed = append(failed, p) })

	binder := &fakeBinder{failCount: len(DefaultCandidates)}
	r := NewRegistrar(binder, bus)

	if r.Register(func() {}) {
		t.Fatal("Expected registration to fail for all candidates")
	}

	if len(failed) != 1 {
		t.Errorf("Expected one hotkey-failed event, got %d", len(failed))
	}
	if len(registered) != 0 {
		t.Errorf("Expected no hotkey-registered event, got %v", registered)
	}
	if r.Label() != "" {
		t.Errorf("Expected empty label after exhaustion, got %q", r.Label())
	}
}

func TestDispatch_IgnoresReleasedTransition(t *testing.T) {
	bus := event.NewBus()
	binder := &fakeBinder{}
	r := NewRegistrar(binder, bus)

	presses := make(chan struct{}, 4)
	if !r.Register(func() { presses <- struct{}{} }) {
		t.Fatal("Expected registration to succeed")
	}

	// A release alone must not toggle.
	binder.binding.keyup <- struct{}{}
	select {
	case <-presses:
		t.Fatal("Released transition produced a press")
	case <-time.After(50 * time.Millisecond):
	}

	// A press must toggle exactly once.
	binder.binding.keydown <- struct{}{}
	select {
	case <-presses:
	case <-time.After(time.Second):
		t.Fatal("Pressed transition produced no press")
	}

	select {
	case <-presses:
		t.Fatal("Single keystroke produced a second press")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDispatch_ExitsWhenBindingCloses(t *testing.T) {
	r := NewRegistrar(&fakeBinder{}, event.NewBus())
	b := newFakeBinding()

	exited := make(chan struct{})
	go func() {
		r.dispatch(b, func() {})
		close(exited)
	}()

	close(b.keydown)
	close(b.keyup)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("Dispatch loop kept running after the binding closed")
	}
}

func TestCandidateLabel(t *testing.T) {
	tests := []struct {
		candidate Candidate
		want      string
	}{
		{Candidate{Mods: []Modifier{ModCtrl, ModShift}, Key: KeySpace}, "Ctrl+Shift+Space"},
		{Candidate{Mods: []Modifier{ModCtrl, ModShift}, Key: KeyF1}, "Ctrl+Shift+F1"},
		{Candidate{Mods: []Modifier{ModCtrl, ModShift}, Key: KeyQ}, "Ctrl+Shift+Q"},
	}

	for _, tc := range tests {
		if got := tc.candidate.Label(); got != tc.want {
			t.Errorf("Label: expected %q, got %q", tc.want, got)
		}
	}
}

func TestDefaultCandidates_NoAltCombos(t *testing.T) {
	for _, c := range DefaultCandidates {
		for _, m := range c.Mods {
			if m == ModAlt {
				t.Errorf("Candidate %s uses Alt; Alt release opens the window menu", c.Label())
			}
		}
	}
}
