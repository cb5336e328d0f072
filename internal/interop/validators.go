package interop

import (
	"cmp"
	"context"
	"net/mail"
	"net/url"

	"github.com/hay-kot/popwire/pkg/popup"
)

const (
	defaultEmailMessage = "Invalid email address"
	defaultURLMessage   = "Invalid URL"
)

// BuiltinValidator returns the validator the engine applies to email and url
// inputs when no InputValidator is given. message overrides the default
// rejection text. Other input kinds return nil.
func BuiltinValidator(input popup.InputType, message string) popup.Validator {
	switch input {
	case popup.InputEmail:
		msg := cmp.Or(message, defaultEmailMessage)
		return func(_ context.Context, value string) (string, error) {
			addr, err := mail.ParseAddress(value)
			if err != nil || addr.Address != value {
				return msg, nil
			}
			return "", nil
		}
	case popup.InputURL:
		msg := cmp.Or(message, defaultURLMessage)
		return func(_ context.Context, value string) (string, error) {
			u, err := url.ParseRequestURI(value)
			if err != nil || u.Scheme == "" || u.Host == "" {
				return msg, nil
			}
			return "", nil
		}
	default:
		return nil
	}
}

// WithBuiltinValidator returns opts with the built-in validator attached when
// the input kind has one and no InputValidator is set.
func WithBuiltinValidator(opts popup.Options) popup.Options {
	if opts.InputValidator != nil {
		return opts
	}
	opts.InputValidator = BuiltinValidator(opts.Input, opts.ValidationMessage)
	return opts
}
