package store

import (
	"context"
	"errors"
	"net"
)

// Failure classes for external calls. The supervisor maps these to per-step
// outcomes instead of aborting the whole turn.
var (
	ErrInfraTimeout     = errors.New("external call timed out")
	ErrInfraUnavailable = errors.New("external service unavailable")

	// ErrNoRelevantSource is the document agent's terminal give-up state
	ErrNoRelevantSource = errors.New("no reliable source found")

	// ErrQueryExhausted is the structured-query agent's terminal failure state
	ErrQueryExhausted = errors.New("query attempts exhausted")
)

// ClassifyInfraErr wraps err with ErrInfraTimeout or ErrInfraUnavailable so
// callers can branch with errors.Is. A nil err returns nil.
func ClassifyInfraErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return errors.Join(ErrInfraTimeout, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return errors.Join(ErrInfraTimeout, err)
	}
	return errors.Join(ErrInfraUnavailable, err)
}
