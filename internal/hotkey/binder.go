package hotkey

import (
	xhotkey "golang.design/x/hotkey"
)

var keyMap = map[Key]xhotkey.Key{
	KeySpace: xhotkey.KeySpace,
	KeyF1:    xhotkey.KeyF1,
	KeyQ:     xhotkey.KeyQ,
}

// SystemBinder registers combinations with the OS via golang.design/x/hotkey.
type SystemBinder struct{}

func NewSystemBinder() *SystemBinder {
	return &SystemBinder{}
}

func (SystemBinder) Bind(c Candidate) (Binding, error) {
	mods := make([]xhotkey.Modifier, 0, len(c.Mods))
	for _, m := range c.Mods {
		mods = append(mods, modifierMap[m])
	}

	hk := xhotkey.New(mods, keyMap[c.Key])
	if err := hk.Register(); err != nil {
		return nil, err
	}

	b := &systemBinding{
		hk:      hk,
		keydown: make(chan struct{}, 1),
		keyup:   make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go b.forward()
	return b, nil
}

type systemBinding struct {
	hk      *xhotkey.Hotkey
	keydown chan struct{}
	keyup   chan struct{}
	done    chan struct{}
}

// forward bridges the library's event channels onto ours so that Binding
// stays a plain interface the registrar (and tests) can consume. It is the
// only sender on keydown/keyup and closes both on exit, which is what
// terminates the registrar's dispatch loop after Unregister.
func (b *systemBinding) forward() {
	defer close(b.keydown)
	defer close(b.keyup)

	for {
		select {
		case <-b.hk.Keydown():
			select {
			case b.keydown <- struct{}{}:
			default:
			}
		case <-b.hk.Keyup():
			select {
			case b.keyup <- struct{}{}:
			default:
			}
		case <-b.done:
			return
		}
	}
}

func (b *systemBinding) Keydown() <-chan struct{} { return b.keydown }
func (b *systemBinding) Keyup() <-chan struct{}   { return b.keyup }

func (b *systemBinding) Unregister() {
	close(b.done)
	b.hk.Unregister()
}
