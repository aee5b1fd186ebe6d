// Package panel provides the collaborators that react to a clicked orbital
// node by presenting its content.
package panel

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ncruces/zenity"

	"github.com/iburimskiy/orbitfield/internal/config"
	"github.com/iburimskiy/orbitfield/internal/sky"
	"github.com/iburimskiy/orbitfield/internal/ui"
)

// Notifier is implemented by dispatchers whose panels close on their own.
// The host drains Closed() on its tick and fades the overlay out.
type Notifier interface {
	Closed() <-chan sky.Topic
}

// Reporter is implemented by dispatchers that can fail after Open returns.
type Reporter interface {
	Errors() <-chan error
}

// Lookup resolves the text shown for a topic.
type Lookup func(sky.Topic) config.Panel

// Dialog shows each panel as a native info dialog. The dialog blocks, so it
// runs on its own goroutine and reports closure over a channel.
type Dialog struct {
	lookup Lookup
	show   func(config.Panel) error
	busy   atomic.Bool
	closed chan sky.Topic
	errs   chan error
}

// NewDialog returns a zenity-backed dispatcher.
func NewDialog(lookup Lookup) *Dialog {
	return &Dialog{
		lookup: lookup,
		show:   showInfo,
		closed: make(chan sky.Topic, 1),
		errs:   make(chan error, 1),
	}
}

func showInfo(p config.Panel) error {
	return zenity.Info(p.Body,
		zenity.Title(p.Title),
		zenity.OKLabel("close"),
		zenity.InfoIcon,
	)
}

// Open shows the panel for t unless one is already up.
func (d *Dialog) Open(t sky.Topic) {
	if !d.busy.CompareAndSwap(false, true) {
		return
	}
	p := config.Panel{Title: string(t)}
	if d.lookup != nil {
		p = d.lookup(t)
	}

	go func() {
		defer d.busy.Store(false)
		if err := d.show(p); err != nil && !errors.Is(err, zenity.ErrCanceled) {
			ui.Warnf("panel %s: %v", t, err)
			select {
			case d.errs <- fmt.Errorf("panel %s: %w", t, err):
			default:
			}
		}
		select {
		case d.closed <- t:
		default:
		}
	}()
}

// Closed delivers the topic of each dismissed dialog.
func (d *Dialog) Closed() <-chan sky.Topic { return d.closed }

// Errors delivers dialog failures other than the user cancelling.
func (d *Dialog) Errors() <-chan error { return d.errs }

// Log only records the opened topic.
type Log struct{}

func (Log) Open(t sky.Topic) { ui.Logf("open panel %s", t) }

// Func adapts a function to sky.PanelDispatcher.
type Func func(sky.Topic)

func (f Func) Open(t sky.Topic) {
	if f != nil {
		f(t)
	}
}

// Multi fans an open request out to every non-nil dispatcher.
type Multi []sky.PanelDispatcher

func (m Multi) Open(t sky.Topic) {
	for _, d := range m {
		if d != nil {
			d.Open(t)
		}
	}
}

// Closed forwards the first Notifier in the set, if any.
func (m Multi) Closed() <-chan sky.Topic {
	for _, d := range m {
		if n, ok := d.(Notifier); ok {
			return n.Closed()
		}
	}
	return nil
}

// Errors forwards the first Reporter in the set, if any.
func (m Multi) Errors() <-chan error {
	for _, d := range m {
		if r, ok := d.(Reporter); ok {
			return r.Errors()
		}
	}
	return nil
}
