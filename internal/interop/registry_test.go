package interop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/popwire/pkg/popup"
)

func newTestRegistry(cfg Config) *Registry {
	return New(zerolog.Nop(), cfg)
}

func TestFire_ReturnsProjectedEnvelope(t *testing.T) {
	r := newTestRegistry(Config{})

	opts := popup.NewTitled("Hello")
	opts.PreConfirm = popup.Immediate(popup.UseDefault())

	env := r.Fire("main", opts)

	assert.Equal(t, popup.ContractVersion, env.Version)
	assert.Equal(t, "main", env.Surface)
	assert.NotEmpty(t, env.PopupID)
	assert.Equal(t, "Hello", env.Options.Title)
	assert.True(t, env.Options.PreConfirm)

	live, ok := r.Live("main")
	require.True(t, ok)
	assert.Equal(t, env.PopupID, live)
}

func TestFire_AssignsUniqueIDs(t *testing.T) {
	r := newTestRegistry(Config{})

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := r.Fire(fmt.Sprintf("s%d", i), popup.New()).PopupID
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
	assert.Equal(t, 100, r.Len())
}

func TestDispatch_RoutesToHook(t *testing.T) {
	r := newTestRegistry(Config{})

	var calls []string
	record := func(name string) popup.Hook {
		return func(context.Context) error {
			calls = append(calls, name)
			return nil
		}
	}

	opts := popup.Options{
		WillOpen:   record("willOpen"),
		DidOpen:    record("didOpen"),
		DidRender:  record("didRender"),
		WillClose:  record("willClose"),
		DidClose:   record("didClose"),
		DidDestroy: record("didDestroy"),
	}
	id := r.Fire("main", opts).PopupID

	ctx := context.Background()
	for _, ev := range []Event{EventWillOpen, EventDidRender, EventDidOpen, EventWillClose, EventDidClose, EventDidDestroy} {
		require.NoError(t, r.Dispatch(ctx, id, ev))
	}

	assert.Equal(t, []string{"willOpen", "didRender", "didOpen", "willClose", "didClose", "didDestroy"}, calls)
}

func TestDispatch_MissingHookIsNoop(t *testing.T) {
	r := newTestRegistry(Config{})
	id := r.Fire("main", popup.New()).PopupID

	assert.NoError(t, r.Dispatch(context.Background(), id, EventDidOpen))
}

func TestDispatch_DidDestroyReleasesEntry(t *testing.T) {
	r := newTestRegistry(Config{})

	opts := popup.Options{DidDestroy: func(context.Context) error { return errors.New("boom") }}
	id := r.Fire("main", opts).PopupID

	err := r.Dispatch(context.Background(), id, EventDidDestroy)
	require.Error(t, err)

	assert.Equal(t, 0, r.Len())
	_, ok := r.Live("main")
	assert.False(t, ok)

	err = r.Dispatch(context.Background(), id, EventDidOpen)
	assert.ErrorIs(t, err, ErrUnknownPopup)
}

func TestDispatch_UnknownPopup(t *testing.T) {
	r := newTestRegistry(Config{})

	err := r.Dispatch(context.Background(), "nope", EventDidOpen)
	assert.ErrorIs(t, err, ErrUnknownPopup)
}

func TestConfirm_Defaults(t *testing.T) {
	tests := []struct {
		name  string
		opts  popup.Options
		value any
		want  any
	}{
		{"no input confirms true", popup.New(), nil, true},
		{"input confirms with value", popup.Options{Input: popup.InputText}, "typed", "typed"},
		{
			"gate keeping default",
			popup.Options{Input: popup.InputEmail, PreConfirm: popup.Immediate(popup.UseDefault())},
			"a@b.c",
			"a@b.c",
		},
		{
			"gate replacing value",
			popup.Options{Input: popup.InputText, PreConfirm: popup.Immediate(popup.UseValue(42))},
			"typed",
			42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(Config{})
			id := r.Fire("main", tt.opts).PopupID

			out, err := r.Confirm(context.Background(), id, tt.value)
			require.NoError(t, err)
			assert.False(t, out.Vetoed)
			assert.True(t, out.Result.IsConfirmed)
			assert.Equal(t, tt.want, out.Result.Value)

			stored, ok := r.Result(id)
			require.True(t, ok)
			assert.Equal(t, out.Result, stored)
		})
	}
}

func TestDeny_Defaults(t *testing.T) {
	tests := []struct {
		name string
		opts popup.Options
		want any
	}{
		{"plain deny is false", popup.Options{Input: popup.InputText}, false},
		{
			"return input value on deny",
			popup.Options{Input: popup.InputText, ReturnInputValueOnDeny: popup.Bool(true)},
			"typed",
		},
		{
			"return input value explicitly off",
			popup.Options{Input: popup.InputText, ReturnInputValueOnDeny: popup.Bool(false)},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry(Config{})
			id := r.Fire("main", tt.opts).PopupID

			out, err := r.Deny(context.Background(), id, "typed")
			require.NoError(t, err)
			assert.True(t, out.Result.IsDenied)
			assert.Equal(t, tt.want, out.Result.Value)
		})
	}
}

func TestConfirm_VetoKeepsPopupOpen(t *testing.T) {
	r := newTestRegistry(Config{})

	var attempts atomic.Int32
	opts := popup.Options{
		PreConfirm: func(context.Context, any) (popup.Verdict, error) {
			if attempts.Add(1) == 1 {
				return popup.Veto(), nil
			}
			return popup.UseDefault(), nil
		},
	}
	id := r.Fire("main", opts).PopupID

	out, err := r.Confirm(context.Background(), id, nil)
	require.NoError(t, err)
	assert.True(t, out.Vetoed)
	_, closed := r.Result(id)
	assert.False(t, closed)

	out, err = r.Confirm(context.Background(), id, nil)
	require.NoError(t, err)
	assert.False(t, out.Vetoed)
	assert.Equal(t, true, out.Result.Value)

	_, err = r.Confirm(context.Background(), id, nil)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestConfirm_AwaitsDeferredVerdict(t *testing.T) {
	r := newTestRegistry(Config{})

	release := make(chan popup.Verdict)
	opts := popup.Options{
		Input: popup.InputText,
		PreConfirm: popup.Deferred(func(context.Context, any) <-chan popup.Verdict {
			return release
		}),
	}
	id := r.Fire("main", opts).PopupID

	done := make(chan Outcome, 1)
	go func() {
		out, err := r.Confirm(context.Background(), id, "typed")
		assert.NoError(t, err)
		done <- out
	}()

	select {
	case <-done:
		t.Fatal("confirm returned before the verdict arrived")
	case <-time.After(20 * time.Millisecond):
	}

	release <- popup.UseValue("server-ok")

	select {
	case out := <-done:
		assert.Equal(t, "server-ok", out.Result.Value)
	case <-time.After(time.Second):
		t.Fatal("confirm never returned")
	}
}

func TestConfirm_GateTimeout(t *testing.T) {
	r := newTestRegistry(Config{GateTimeout: 10 * time.Millisecond})

	opts := popup.Options{
		PreConfirm: popup.Deferred(func(context.Context, any) <-chan popup.Verdict {
			return make(chan popup.Verdict)
		}),
	}
	id := r.Fire("main", opts).PopupID

	_, err := r.Confirm(context.Background(), id, nil)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	_, closed := r.Result(id)
	assert.False(t, closed)
}

func TestConfirm_GateError(t *testing.T) {
	r := newTestRegistry(Config{})

	boom := errors.New("backend down")
	opts := popup.Options{
		PreDeny: func(context.Context, any) (popup.Verdict, error) { return popup.Verdict{}, boom },
	}
	id := r.Fire("main", opts).PopupID

	_, err := r.Deny(context.Background(), id, nil)
	assert.ErrorIs(t, err, boom)
}

func TestConfirm_SupersededWhileGatePending(t *testing.T) {
	r := newTestRegistry(Config{})

	entered := make(chan struct{})
	release := make(chan popup.Verdict)
	first := r.Fire("main", popup.Options{
		PreConfirm: popup.Deferred(func(context.Context, any) <-chan popup.Verdict {
			close(entered)
			return release
		}),
	}).PopupID

	errc := make(chan error, 1)
	go func() {
		_, err := r.Confirm(context.Background(), first, nil)
		errc <- err
	}()

	<-entered
	second := r.Fire("main", popup.NewTitled("second")).PopupID
	release <- popup.UseDefault()

	assert.ErrorIs(t, <-errc, ErrSuperseded)

	live, _ := r.Live("main")
	assert.Equal(t, second, live)

	// The superseded popup still receives its teardown events.
	require.NoError(t, r.Dispatch(context.Background(), first, EventDidDestroy))
	live, ok := r.Live("main")
	require.True(t, ok)
	assert.Equal(t, second, live)
}

func TestFire_SurfacesAreIndependent(t *testing.T) {
	r := newTestRegistry(Config{})

	a := r.Fire("left", popup.New()).PopupID
	b := r.Fire("right", popup.New()).PopupID

	_, err := r.Confirm(context.Background(), a, nil)
	assert.NoError(t, err)
	_, err = r.Confirm(context.Background(), b, nil)
	assert.NoError(t, err)
}

func TestDismiss(t *testing.T) {
	r := newTestRegistry(Config{})
	id := r.Fire("main", popup.New()).PopupID

	res, err := r.Dismiss(id, popup.DismissBackdrop)
	require.NoError(t, err)
	assert.True(t, res.IsDismissed)
	assert.Equal(t, popup.DismissBackdrop, res.Dismiss)

	_, err = r.Deny(context.Background(), id, nil)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestValidate(t *testing.T) {
	r := newTestRegistry(Config{})

	opts := popup.Options{
		Input: popup.InputEmail,
		InputValidator: func(_ context.Context, v string) (string, error) {
			if v == "" {
				return "You need to write something!", nil
			}
			return "", nil
		},
	}
	id := r.Fire("main", opts).PopupID

	msg, err := r.Validate(context.Background(), id, "")
	require.NoError(t, err)
	assert.Equal(t, "You need to write something!", msg)

	msg, err = r.Validate(context.Background(), id, "a@b.c")
	require.NoError(t, err)
	assert.Empty(t, msg)

	plain := r.Fire("other", popup.New()).PopupID
	msg, err = r.Validate(context.Background(), plain, "")
	require.NoError(t, err)
	assert.Empty(t, msg)
}

func TestPrune(t *testing.T) {
	r := newTestRegistry(Config{})

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	stale := r.Fire("a", popup.New()).PopupID
	now = now.Add(10 * time.Minute)
	fresh := r.Fire("b", popup.New()).PopupID

	assert.Equal(t, 1, r.Prune(5*time.Minute))
	assert.Equal(t, 1, r.Len())

	_, err := r.Dismiss(stale, popup.DismissTimer)
	assert.ErrorIs(t, err, ErrUnknownPopup)
	_, err = r.Dismiss(fresh, popup.DismissTimer)
	assert.NoError(t, err)
}

func TestPrune_KeepsPopupWithPendingGate(t *testing.T) {
	r := newTestRegistry(Config{})

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	entered := make(chan struct{})
	release := make(chan popup.Verdict)
	id := r.Fire("main", popup.Options{
		PreConfirm: popup.Deferred(func(context.Context, any) <-chan popup.Verdict {
			close(entered)
			return release
		}),
	}).PopupID
	now = now.Add(time.Hour)

	type outcome struct {
		out Outcome
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		out, err := r.Confirm(context.Background(), id, nil)
		done <- outcome{out, err}
	}()

	<-entered
	assert.Zero(t, r.Prune(time.Minute), "a popup whose gate is running is not pruned")

	release <- popup.UseDefault()
	got := <-done
	require.NoError(t, got.err)
	assert.Equal(t, popup.Confirmed(true), got.out.Result)

	assert.Equal(t, 1, r.Prune(time.Minute))
	assert.Zero(t, r.Len())
}

func TestPrune_KeepsPopupWithPendingValidator(t *testing.T) {
	r := newTestRegistry(Config{})

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return now }

	entered := make(chan struct{})
	release := make(chan struct{})
	id := r.Fire("main", popup.Options{
		Input: popup.InputText,
		InputValidator: func(context.Context, string) (string, error) {
			close(entered)
			<-release
			return "", nil
		},
	}).PopupID
	now = now.Add(time.Hour)

	errc := make(chan error, 1)
	go func() {
		_, err := r.Validate(context.Background(), id, "hi")
		errc <- err
	}()

	<-entered
	assert.Zero(t, r.Prune(time.Minute))
	close(release)
	require.NoError(t, <-errc)

	assert.Equal(t, 1, r.Prune(time.Minute))
}

func TestRun_PrunesUntilCancelled(t *testing.T) {
	r := newTestRegistry(Config{EntryTTL: time.Nanosecond})
	r.Fire("main", popup.New())

	ctx, cancel := context.WithCancel(context.Background())
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.ErrorIs(t, r.Run(ctx, time.Millisecond), context.Canceled)
	}()

	assert.Eventually(t, func() bool { return r.Len() == 0 }, time.Second, time.Millisecond)
	cancel()
	wg.Wait()
}

func TestRegistry_ConcurrentUse(t *testing.T) {
	r := newTestRegistry(Config{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			surface := fmt.Sprintf("s%d", i%5)
			id := r.Fire(surface, popup.Options{Input: popup.InputText}).PopupID
			_, _ = r.Confirm(context.Background(), id, "x")
			_ = r.Dispatch(context.Background(), id, EventDidDestroy)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, r.Len())
}

func TestParseEvent(t *testing.T) {
	for _, ev := range []Event{EventWillOpen, EventDidOpen, EventDidRender, EventWillClose, EventDidClose, EventDidDestroy} {
		got, err := ParseEvent(ev.String())
		require.NoError(t, err)
		assert.Equal(t, ev, got)
	}

	_, err := ParseEvent("didExplode")
	assert.ErrorIs(t, err, popup.ErrUnknownLiteral)
}
