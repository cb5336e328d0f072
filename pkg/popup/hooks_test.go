package popup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerdict_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		verdict   Verdict
		wantValue any
		wantClose bool
	}{
		{"zero value is default", Verdict{}, "typed", true},
		{"default", UseDefault(), "typed", true},
		{"veto", Veto(), nil, false},
		{"value", UseValue(42), 42, true},
		{"explicit false value", UseValue(false), false, true},
		{"explicit nil value", UseValue(nil), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, closes := tt.verdict.Resolve("typed")
			assert.Equal(t, tt.wantClose, closes)
			assert.Equal(t, tt.wantValue, got)
		})
	}
}

func TestVerdictOf(t *testing.T) {
	assert.True(t, VerdictOf(nil).IsDefault())
	assert.True(t, VerdictOf(false).IsVeto())

	v, ok := VerdictOf(true).Value()
	assert.True(t, ok)
	assert.Equal(t, true, v)

	v, ok = VerdictOf("abc").Value()
	assert.True(t, ok)
	assert.Equal(t, "abc", v)
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "default", UseDefault().String())
	assert.Equal(t, "veto", Veto().String())
	assert.Equal(t, "value", UseValue(1).String())
}

func TestImmediate(t *testing.T) {
	gate := Immediate(Veto())

	got, err := gate(context.Background(), "x")
	require.NoError(t, err)
	assert.True(t, got.IsVeto())
}

func TestDeferred_WaitsForVerdict(t *testing.T) {
	gate := Deferred(func(_ context.Context, value any) <-chan Verdict {
		ch := make(chan Verdict, 1)
		go func() {
			time.Sleep(10 * time.Millisecond)
			ch <- UseValue(value.(string) + "!")
		}()
		return ch
	})

	got, err := gate(context.Background(), "hi")
	require.NoError(t, err)

	v, ok := got.Value()
	assert.True(t, ok)
	assert.Equal(t, "hi!", v)
}

func TestDeferred_ClosedChannelIsDefault(t *testing.T) {
	gate := Deferred(func(context.Context, any) <-chan Verdict {
		ch := make(chan Verdict)
		close(ch)
		return ch
	})

	got, err := gate(context.Background(), nil)
	require.NoError(t, err)
	assert.True(t, got.IsDefault())
}

func TestDeferred_ContextCancelled(t *testing.T) {
	gate := Deferred(func(context.Context, any) <-chan Verdict {
		return make(chan Verdict)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := gate(ctx, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestResult_Constructors(t *testing.T) {
	c := Confirmed("v")
	assert.True(t, c.IsConfirmed)
	assert.False(t, c.IsDenied || c.IsDismissed)
	assert.Equal(t, "v", c.Value)

	d := Denied(false)
	assert.True(t, d.IsDenied)
	assert.Equal(t, false, d.Value)

	x := Dismissed(DismissEsc)
	assert.True(t, x.IsDismissed)
	assert.Equal(t, DismissEsc, x.Dismiss)
	assert.Equal(t, `{"isConfirmed":false,"isDenied":false,"isDismissed":true,"dismiss":"esc"}`, mustJSON(t, x))
}
