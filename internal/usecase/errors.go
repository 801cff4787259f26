package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation error")
	ErrGatewayTransport = errors.New("gateway transport error")
	ErrTokenNotFound    = errors.New("payment token not found")
)

// GatewayError carries the failing gateway operation along with its cause.
// It matches ErrGatewayTransport or ErrTokenNotFound through errors.Is.
type GatewayError struct {
	Op    string
	Kind  error
	Token string
	Err   error
}

func (e *GatewayError) Error() string {
	msg := fmt.Sprintf("%s: %v", e.Op, e.Kind)
	if e.Token != "" {
		msg += fmt.Sprintf(" token=%s", e.Token)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GatewayError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func transportError(op, token string, err error) error {
	return &GatewayError{Op: op, Kind: ErrGatewayTransport, Token: token, Err: err}
}

func tokenNotFoundError(op, token string) error {
	return &GatewayError{Op: op, Kind: ErrTokenNotFound, Token: token}
}

func validationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}
