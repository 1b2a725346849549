package domain

import "errors"

// Error kinds. Every error produced by the price subsystem matches exactly one of them with errors.Is.
var (
	ErrClient                  = errors.New("client error")
	ErrConfiguration           = errors.New("configuration error")
	ErrUpstreamUnavailable     = errors.New("upstream unavailable")
	ErrUpstreamRateLimited     = errors.New("upstream rate limited")
	ErrInvalidUpstreamResponse = errors.New("invalid upstream response")
	ErrUnsupportedAsset        = errors.New("unsupported asset")
)

// Error carries a kind, a message safe to show to API callers and an optional cause.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func NewError(kind error, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

// ClientError and the helpers below keep adapter call sites short.
func ClientError(msg string) *Error        { return NewError(ErrClient, msg, nil) }
func ConfigurationError(msg string) *Error { return NewError(ErrConfiguration, msg, nil) }
func UnsupportedAsset(msg string) *Error   { return NewError(ErrUnsupportedAsset, msg, nil) }

func UpstreamUnavailable(msg string, cause error) *Error {
	return NewError(ErrUpstreamUnavailable, msg, cause)
}

func UpstreamRateLimited(msg string) *Error {
	return NewError(ErrUpstreamRateLimited, msg, nil)
}

func InvalidUpstreamResponse(msg string, cause error) *Error {
	return NewError(ErrInvalidUpstreamResponse, msg, cause)
}

// KindOf returns the kind sentinel of err, or nil when err is not a classified error.
func KindOf(err error) error {
	for _, kind := range []error{
		ErrClient,
		ErrConfiguration,
		ErrUnsupportedAsset,
		ErrUpstreamRateLimited,
		ErrInvalidUpstreamResponse,
		ErrUpstreamUnavailable,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
