// Package input maps discrete key and text events onto viewer navigation.
package input

import (
	"errors"
	"fmt"
)

// Kind identifies the type of an input event.
type Kind int

const (
	// KindKey is a symbolic key press ("Up", "PgDn", ...).
	KindKey Kind = iota

	// KindText is literal text input.
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindText:
		return "text"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Recognized navigation key names. These match the names produced by the
// terminal surface.
const (
	KeyUp       = "Up"
	KeyDown     = "Down"
	KeyPageUp   = "PgUp"
	KeyPageDown = "PgDn"
)

// DefaultPageStep is the number of lines PgUp and PgDn move the cursor.
const DefaultPageStep = 10

// ErrUnsupportedEventKind reports an event kind the dispatcher does not
// understand. It indicates a misconfigured event source upstream, not a
// recoverable runtime condition.
var ErrUnsupportedEventKind = errors.New("input: unsupported event kind")

// Event is one discrete input event.
type Event struct {
	Kind Kind

	// Key is the symbolic key name for KindKey events.
	Key string

	// Text is the literal input for KindText events.
	Text string

	// Origin identifies the event source, for diagnostics.
	Origin string
}

// Navigator is the cursor surface the dispatcher drives. *view.View
// implements it.
type Navigator interface {
	CursorLine() int
	SetCursorLine(n int)
	Lines() int
}

// Options configures a Dispatcher. Zero values select the defaults.
type Options struct {
	// PageStep is the PgUp/PgDn cursor distance.
	PageStep int

	// OnText receives text events. Reserved as an extension point; the
	// viewer itself ignores text input.
	OnText func(text string)
}

// Dispatcher routes input events to a Navigator.
type Dispatcher struct {
	nav      Navigator
	pageStep int
	onText   func(string)
}

// NewDispatcher creates a dispatcher driving the given navigator.
func NewDispatcher(nav Navigator, opts Options) *Dispatcher {
	step := opts.PageStep
	if step < 1 {
		step = DefaultPageStep
	}
	return &Dispatcher{
		nav:      nav,
		pageStep: step,
		onText:   opts.OnText,
	}
}

// HandleEvent routes an event by kind. Unknown kinds are a protocol
// violation and return ErrUnsupportedEventKind rather than being dropped.
func (d *Dispatcher) HandleEvent(ev Event) error {
	switch ev.Kind {
	case KindKey:
		d.HandleKey(ev.Key)
		return nil
	case KindText:
		d.HandleText(ev.Text)
		return nil
	default:
		return fmt.Errorf("%w: %v from %q", ErrUnsupportedEventKind, ev.Kind, ev.Origin)
	}
}

// HandleKey applies a navigation key. Unrecognized names are ignored, and
// every key is a no-op on an empty document.
//
// Up and Down wrap around the document ends. PgUp and PgDn move by the page
// step, clamp at the ends, and never wrap; at a boundary they do nothing.
func (d *Dispatcher) HandleKey(name string) {
	last := d.nav.Lines() - 1
	if last < 0 {
		return
	}
	cur := d.nav.CursorLine()

	switch name {
	case KeyDown:
		if cur < last {
			d.nav.SetCursorLine(cur + 1)
		} else {
			d.nav.SetCursorLine(0)
		}

	case KeyUp:
		if cur > 0 {
			d.nav.SetCursorLine(cur - 1)
		} else {
			d.nav.SetCursorLine(last)
		}

	case KeyPageDown:
		if cur < last {
			d.nav.SetCursorLine(min(cur+d.pageStep, last))
		}

	case KeyPageUp:
		if cur > 0 {
			d.nav.SetCursorLine(max(cur-d.pageStep, 0))
		}
	}
}

// HandleText forwards literal input to the text extension point.
func (d *Dispatcher) HandleText(text string) {
	if d.onText != nil {
		d.onText(text)
	}
}
