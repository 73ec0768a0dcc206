package apperr

import "errors"

// Kind classifies a service-level failure so callers can branch on it
// instead of matching message strings.
type Kind int

const (
	// KindValidation: caller-supplied data violates a business rule.
	KindValidation Kind = iota
	// KindNotFound: a requested or referenced entity does not exist.
	KindNotFound
	// KindStorage: the persistence layer failed unexpectedly.
	KindStorage
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindStorage:
		return "storage"
	}
	return "unknown"
}

// Error carries the failure kind plus a user-facing message. The wrapped
// cause, if any, never reaches API clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Storage(message string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: message, Err: cause}
}

// KindOf reports the kind of err when it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}

func IsValidation(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindValidation
}

func IsNotFound(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindNotFound
}

func IsStorage(err error) bool {
	k, ok := KindOf(err)
	return ok && k == KindStorage
}
