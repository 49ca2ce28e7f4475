package domain

import "errors"

var (
	ErrPoolNotFound   = errors.New("pool not found")
	ErrMemberNotFound = errors.New("pool member not found")
	ErrNodeReferenced = errors.New("node address is still referenced")
	ErrAuthentication = errors.New("authentication failed")
	ErrSecretNotFound = errors.New("secret not found")
)

type ErrorKind string

const (
	KindConfiguration ErrorKind = "configuration"
	KindPrecondition  ErrorKind = "precondition"
	KindRemote        ErrorKind = "remote"
)

// Error carries the kind of failure so callers can pick an exit code.
type Error struct {
	Kind ErrorKind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func ConfigurationError(op string, err error) error {
	return &Error{Kind: KindConfiguration, Op: op, Err: err}
}

func PreconditionError(op string, err error) error {
	return &Error{Kind: KindPrecondition, Op: op, Err: err}
}

func RemoteError(op string, err error) error {
	return &Error{Kind: KindRemote, Op: op, Err: err}
}

// KindOf returns the kind of the outermost typed error, or "" when err is untyped.
func KindOf(err error) ErrorKind {
	var typed *Error
	if errors.As(err, &typed) {
		return typed.Kind
	}
	return ""
}
