package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hay-kot/popwire/pkg/popup"
)

func TestEntry_Outcome(t *testing.T) {
	confirmed := popup.Confirmed(true)
	denied := popup.Denied(false)
	dismissed := popup.Dismissed(popup.DismissEsc)

	tests := []struct {
		name   string
		entry  Entry
		want   string
		failed bool
	}{
		{name: "confirmed", entry: Entry{Result: &confirmed}, want: "confirmed"},
		{name: "denied", entry: Entry{Result: &denied}, want: "denied"},
		{name: "dismissed", entry: Entry{Result: &dismissed}, want: "dismissed (esc)"},
		{name: "rejected", entry: Entry{Rejected: "Invalid URL"}, want: "rejected: Invalid URL", failed: true},
		{name: "vetoed", entry: Entry{Vetoed: true}, want: "vetoed", failed: true},
		{name: "open", entry: Entry{}, want: "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.Outcome())
			assert.Equal(t, tt.failed, tt.entry.Failed())
		})
	}
}
