package popup

import "context"

// Hook is a lifecycle callback. It never crosses the host boundary; the wire
// record only says whether it exists.
type Hook func(ctx context.Context) error

// Gate runs before the popup closes through confirm or deny. value is the
// current input value, or nil when the popup has no input. A Gate may block
// until its result is known; callers bound the wait with ctx.
type Gate func(ctx context.Context, value any) (Verdict, error)

// Validator checks the input value. A non-empty message rejects the value and
// is shown under the input.
type Validator func(ctx context.Context, value string) (string, error)

type verdictKind uint8

const (
	verdictDefault verdictKind = iota
	verdictVeto
	verdictValue
)

// Verdict is the outcome of a Gate. The zero Verdict means UseDefault.
type Verdict struct {
	kind  verdictKind
	value any
}

// Veto keeps the popup open.
func Veto() Verdict { return Verdict{kind: verdictVeto} }

// UseDefault closes the popup with the default result value.
func UseDefault() Verdict { return Verdict{kind: verdictDefault} }

// UseValue closes the popup with v as the result value. v may be false or
// nil; only Veto keeps the popup open.
func UseValue(v any) Verdict { return Verdict{kind: verdictValue, value: v} }

// VerdictOf maps an untyped engine-style return value onto a Verdict:
// false vetoes, nil keeps the default and anything else becomes the value.
func VerdictOf(v any) Verdict {
	switch x := v.(type) {
	case nil:
		return UseDefault()
	case bool:
		if !x {
			return Veto()
		}
	}
	return UseValue(v)
}

func (v Verdict) IsVeto() bool    { return v.kind == verdictVeto }
func (v Verdict) IsDefault() bool { return v.kind == verdictDefault }

// Value returns the explicit value and whether one was supplied.
func (v Verdict) Value() (any, bool) {
	return v.value, v.kind == verdictValue
}

// Resolve returns the final result value given the default, and whether the
// popup closes.
func (v Verdict) Resolve(def any) (any, bool) {
	switch v.kind {
	case verdictVeto:
		return nil, false
	case verdictValue:
		return v.value, true
	default:
		return def, true
	}
}

func (v Verdict) String() string {
	switch v.kind {
	case verdictVeto:
		return "veto"
	case verdictValue:
		return "value"
	default:
		return "default"
	}
}

// Immediate returns a Gate that always answers v.
func Immediate(v Verdict) Gate {
	return func(context.Context, any) (Verdict, error) {
		return v, nil
	}
}

// Deferred adapts an asynchronous producer into a Gate. start is called once
// per gate run; the Gate waits for the first Verdict on the returned channel.
// A channel closed without a value yields UseDefault.
func Deferred(start func(ctx context.Context, value any) <-chan Verdict) Gate {
	return func(ctx context.Context, value any) (Verdict, error) {
		select {
		case v := <-start(ctx, value):
			return v, nil
		case <-ctx.Done():
			return Verdict{}, ctx.Err()
		}
	}
}
