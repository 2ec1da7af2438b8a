package service

import "errors"

var (
	// ErrInvalidInput marks a violated calculation precondition. It is
	// deterministic and must never be retried.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNarratorDisabled means no LLM credentials were configured.
	ErrNarratorDisabled = errors.New("narrator disabled")

	// ErrNarratorUnavailable means the LLM stayed unreachable after the
	// bounded retries.
	ErrNarratorUnavailable = errors.New("narrator unavailable")
)
