package interop

import (
	"fmt"

	"github.com/hay-kot/popwire/pkg/popup"
)

// Event is a lifecycle notification sent by the engine for a popup.
type Event uint8

const (
	EventWillOpen Event = iota
	EventDidOpen
	EventDidRender
	EventWillClose
	EventDidClose
	EventDidDestroy
)

var eventNames = [...]string{
	EventWillOpen:   "willOpen",
	EventDidOpen:    "didOpen",
	EventDidRender:  "didRender",
	EventWillClose:  "willClose",
	EventDidClose:   "didClose",
	EventDidDestroy: "didDestroy",
}

// String returns the record key the event corresponds to.
func (e Event) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return fmt.Sprintf("Event(%d)", uint8(e))
}

// ParseEvent maps a record key such as "didOpen" to its Event.
func ParseEvent(s string) (Event, error) {
	for i, name := range eventNames {
		if name == s {
			return Event(i), nil
		}
	}
	return 0, fmt.Errorf("event %q: %w", s, popup.ErrUnknownLiteral)
}

func (e Event) hook(o *popup.Options) popup.Hook {
	switch e {
	case EventWillOpen:
		return o.WillOpen
	case EventDidOpen:
		return o.DidOpen
	case EventDidRender:
		return o.DidRender
	case EventWillClose:
		return o.WillClose
	case EventDidClose:
		return o.DidClose
	case EventDidDestroy:
		return o.DidDestroy
	default:
		return nil
	}
}
