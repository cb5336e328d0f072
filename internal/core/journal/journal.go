// Package journal defines the record of simulated popup runs.
package journal

import (
	"time"

	"github.com/hay-kot/popwire/pkg/popup"
)

// Entry records one popup run: which preset was fired, how it was closed and
// what result the host received.
type Entry struct {
	ID        string        `json:"id"` // popup ID from the envelope
	Preset    string        `json:"preset"`
	Surface   string        `json:"surface"`
	Action    string        `json:"action"`
	Events    []string      `json:"events,omitempty"`
	Result    *popup.Result `json:"result,omitempty"`
	Rejected  string        `json:"rejected,omitempty"`
	Vetoed    bool          `json:"vetoed,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Failed returns true if the popup stayed open: its input was rejected or
// its gate vetoed the close.
func (e *Entry) Failed() bool {
	return e.Rejected != "" || e.Vetoed
}

// Outcome returns a short description of how the run ended.
func (e *Entry) Outcome() string {
	switch {
	case e.Rejected != "":
		return "rejected: " + e.Rejected
	case e.Vetoed:
		return "vetoed"
	case e.Result == nil:
		return "open"
	case e.Result.IsConfirmed:
		return "confirmed"
	case e.Result.IsDenied:
		return "denied"
	case e.Result.IsDismissed:
		return "dismissed (" + e.Result.Dismiss.String() + ")"
	default:
		return "unknown"
	}
}
