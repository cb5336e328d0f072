// Package interop keeps the callables that projection erases. The engine only
// sees presence flags; when it calls back it names the popup by ID and the
// Registry routes the call to the original hook.
package interop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog"

	"github.com/hay-kot/popwire/pkg/popup"
)

var (
	// ErrUnknownPopup is returned for IDs that were never fired or were released.
	ErrUnknownPopup = errors.New("unknown popup")
	// ErrSuperseded is returned when a newer popup replaced this one on its surface.
	ErrSuperseded = errors.New("popup superseded")
	// ErrClosed is returned when the popup already produced its result.
	ErrClosed = errors.New("popup already closed")
)

// Config bounds the Registry.
type Config struct {
	// GateTimeout caps how long PreConfirm, PreDeny and InputValidator may
	// run. Zero means only the caller's context applies.
	GateTimeout time.Duration
	// EntryTTL is the age after which Run releases entries whose didDestroy
	// never arrived. Zero disables the janitor.
	EntryTTL time.Duration
}

type entry struct {
	id         string
	surface    string
	opts       popup.Options
	firedAt    time.Time
	superseded bool
	result     *popup.Result
	inflight   int // gates and validators still running
}

// Registry is the side table from popup IDs to their Options. It is safe for
// concurrent use. Hooks always run without the table lock held, so a hook may
// fire a new popup.
type Registry struct {
	log zerolog.Logger
	cfg Config

	mu      sync.Mutex
	entries map[string]*entry
	live    map[string]string // surface -> popup ID

	now   func() time.Time
	newID func() string
}

// New creates an empty Registry.
func New(log zerolog.Logger, cfg Config) *Registry {
	return &Registry{
		log:     log,
		cfg:     cfg,
		entries: make(map[string]*entry),
		live:    make(map[string]string),
		now:     time.Now,
		newID:   func() string { return uuid.Must(uuid.NewV7()).String() },
	}
}

// Fire registers opts as the live popup on surface and returns the envelope
// to hand to the engine. Any popup already live on surface is superseded.
func (r *Registry) Fire(surface string, opts popup.Options) popup.Envelope {
	e := &entry{
		id:      r.newID(),
		surface: surface,
		opts:    opts,
		firedAt: r.now(),
	}

	r.mu.Lock()
	if prev, ok := r.live[surface]; ok {
		if old := r.entries[prev]; old != nil {
			old.superseded = true
			r.log.Debug().Str("popup", prev).Str("surface", surface).Msg("superseded")
		}
	}
	r.entries[e.id] = e
	r.live[surface] = e.id
	r.mu.Unlock()

	rec := popup.Project(opts)
	r.log.Debug().
		Str("popup", e.id).
		Str("surface", surface).
		Strs("callbacks", rec.Callbacks()).
		Msg("fired")

	return popup.Wrap(e.id, surface, rec)
}

// Live returns the ID of the popup currently live on surface.
func (r *Registry) Live(surface string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.live[surface]
	return id, ok
}

// Len returns the number of entries held.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Dispatch runs the lifecycle hook for event. A popup without that hook is a
// no-op. EventDidDestroy releases the entry after its hook returns, whether
// or not the hook failed.
func (r *Registry) Dispatch(ctx context.Context, id string, event Event) error {
	r.mu.Lock()
	e, ok := r.entries[id]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("dispatch %s to %s: %w", event, id, ErrUnknownPopup)
	}

	if event == EventDidDestroy {
		defer r.release(id)
	}

	hook := event.hook(&e.opts)
	if hook == nil {
		return nil
	}

	r.log.Debug().Str("popup", id).Stringer("event", event).Msg("dispatching hook")
	if err := hook(ctx); err != nil {
		return fmt.Errorf("%s hook: %w", event, err)
	}
	return nil
}

// Outcome is the answer to a confirm or deny attempt.
type Outcome struct {
	Result popup.Result
	// Vetoed means the gate kept the popup open. Result is zero.
	Vetoed bool
}

// Confirm runs PreConfirm with the current input value (nil when the popup
// has no input) and resolves the confirm result. Without PreConfirm, or when
// it keeps the default, the value is the input value, or true for popups
// without an input.
func (r *Registry) Confirm(ctx context.Context, id string, value any) (Outcome, error) {
	return r.settle(ctx, id, value, true)
}

// Deny runs PreDeny and resolves the deny result. The default value is false,
// or the input value when ReturnInputValueOnDeny is set.
func (r *Registry) Deny(ctx context.Context, id string, value any) (Outcome, error) {
	return r.settle(ctx, id, value, false)
}

func (r *Registry) settle(ctx context.Context, id string, value any, confirm bool) (Outcome, error) {
	e, done, err := r.acquire(id)
	if err != nil {
		return Outcome{}, err
	}
	defer done()

	gate, def := e.opts.PreDeny, denyDefault(&e.opts, value)
	if confirm {
		gate, def = e.opts.PreConfirm, confirmDefault(&e.opts, value)
	}

	verdict := popup.UseDefault()
	if gate != nil {
		ctx, cancel := r.bound(ctx)
		verdict, err = gate(ctx, value)
		cancel()
		if err != nil {
			return Outcome{}, fmt.Errorf("gate for %s: %w", id, err)
		}
	}

	v, closes := verdict.Resolve(def)
	if !closes {
		r.log.Debug().Str("popup", id).Bool("confirm", confirm).Msg("vetoed")
		return Outcome{Vetoed: true}, nil
	}

	res := popup.Denied(v)
	if confirm {
		res = popup.Confirmed(v)
	}
	if err := r.close(id, res); err != nil {
		return Outcome{}, err
	}
	return Outcome{Result: res}, nil
}

// Dismiss closes the popup without confirm or deny.
func (r *Registry) Dismiss(id string, reason popup.DismissReason) (popup.Result, error) {
	if _, err := r.open(id); err != nil {
		return popup.Result{}, err
	}
	res := popup.Dismissed(reason)
	if err := r.close(id, res); err != nil {
		return popup.Result{}, err
	}
	return res, nil
}

// Validate runs the InputValidator. An empty message accepts value. Popups
// without a validator accept everything.
func (r *Registry) Validate(ctx context.Context, id, value string) (string, error) {
	e, done, err := r.acquire(id)
	if err != nil {
		return "", err
	}
	defer done()
	if e.opts.InputValidator == nil {
		return "", nil
	}

	ctx, cancel := r.bound(ctx)
	defer cancel()

	msg, err := e.opts.InputValidator(ctx, value)
	if err != nil {
		return "", fmt.Errorf("validator for %s: %w", id, err)
	}
	return msg, nil
}

// Result returns the result of a closed popup.
func (r *Registry) Result(id string) (popup.Result, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[id]
	if !ok || e.result == nil {
		return popup.Result{}, false
	}
	return *e.result, true
}

// Prune releases entries fired more than maxAge ago and returns how many it
// dropped. Entries with a gate or validator still running are kept.
func (r *Registry) Prune(maxAge time.Duration) int {
	cutoff := r.now().Add(-maxAge)

	r.mu.Lock()
	defer r.mu.Unlock()

	n := 0
	for id, e := range r.entries {
		if e.inflight == 0 && e.firedAt.Before(cutoff) {
			r.releaseLocked(id)
			n++
		}
	}
	if n > 0 {
		r.log.Info().Int("count", n).Dur("max_age", maxAge).Msg("pruned stale popups")
	}
	return n
}

// Run prunes entries older than EntryTTL every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	if r.cfg.EntryTTL <= 0 {
		<-ctx.Done()
		return ctx.Err()
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Prune(r.cfg.EntryTTL)
		}
	}
}

// open returns the entry for id if it can still take confirm, deny, dismiss
// or validate calls.
func (r *Registry) open(id string) (*entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.openLocked(id)
}

// acquire opens id and marks a gate or validator as running on it until the
// returned func is called. Prune skips entries while the mark is held.
func (r *Registry) acquire(id string) (*entry, func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, err := r.openLocked(id)
	if err != nil {
		return nil, nil, err
	}
	e.inflight++
	return e, func() {
		r.mu.Lock()
		e.inflight--
		r.mu.Unlock()
	}, nil
}

func (r *Registry) openLocked(id string) (*entry, error) {
	e, ok := r.entries[id]
	switch {
	case !ok:
		return nil, fmt.Errorf("%s: %w", id, ErrUnknownPopup)
	case e.superseded:
		return nil, fmt.Errorf("%s: %w", id, ErrSuperseded)
	case e.result != nil:
		return nil, fmt.Errorf("%s: %w", id, ErrClosed)
	}
	return e, nil
}

// close stores res unless the popup was replaced or closed while its gate ran.
func (r *Registry) close(id string, res popup.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	switch {
	case !ok:
		return fmt.Errorf("%s: %w", id, ErrUnknownPopup)
	case e.superseded:
		return fmt.Errorf("%s: %w", id, ErrSuperseded)
	case e.result != nil:
		return fmt.Errorf("%s: %w", id, ErrClosed)
	}

	e.result = &res
	r.log.Debug().
		Str("popup", id).
		Bool("confirmed", res.IsConfirmed).
		Bool("denied", res.IsDenied).
		Stringer("dismiss", res.Dismiss).
		Msg("closed")
	return nil
}

func (r *Registry) release(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.releaseLocked(id)
}

func (r *Registry) releaseLocked(id string) {
	e, ok := r.entries[id]
	if !ok {
		return
	}
	delete(r.entries, id)
	if r.live[e.surface] == id {
		delete(r.live, e.surface)
	}
	r.log.Debug().Str("popup", id).Msg("released")
}

func (r *Registry) bound(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.cfg.GateTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.cfg.GateTimeout)
}

func confirmDefault(o *popup.Options, value any) any {
	if o.Input.IsSet() {
		return value
	}
	return true
}

func denyDefault(o *popup.Options, value any) any {
	if o.Input.IsSet() && o.ReturnInputValueOnDeny != nil && *o.ReturnInputValueOnDeny {
		return value
	}
	return false
}
