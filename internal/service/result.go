package service

import (
	"errors"

	"github.com/dom/power-league-website/internal/domain"
	"github.com/google/uuid"
)

type ResultStatus string

const (
	StatusOK       ResultStatus = "ok"
	StatusDegraded ResultStatus = "degraded"
)

// Result carries a fetched value together with whether it is genuine or a
// stand-in for a failed fetch. Data is always safe to render.
type Result[T any] struct {
	Data       T
	Status     ResultStatus
	Reason     error
	IncidentID uuid.UUID
}

func Ok[T any](data T) Result[T] {
	return Result[T]{Data: data, Status: StatusOK}
}

// Degraded wraps an empty value and the reason the real one is missing.
func Degraded[T any](empty T, reason error) Result[T] {
	if reason == nil {
		reason = domain.ErrContentUnavailable
	}
	return Result[T]{
		Data:       empty,
		Status:     StatusDegraded,
		Reason:     reason,
		IncidentID: uuid.New(),
	}
}

func (r Result[T]) IsDegraded() bool {
	return r.Status == StatusDegraded
}

// Malformed reports whether the degradation came from a bad response shape
// rather than an unreachable backend.
func (r Result[T]) Malformed() bool {
	return r.IsDegraded() && errors.Is(r.Reason, domain.ErrMalformedContent)
}
