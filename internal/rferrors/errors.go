// rfplan - RF site-planning engine for low-power wireless mesh deployments
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rferrors defines sentinel errors shared across the terrain,
// physics, viewshed, coverage, and engine packages.
package rferrors

import (
	"errors"
	"io"

	"github.com/meshrf/planner/internal/logging"
)

// Sentinel errors returned by the terrain, viewshed, and coverage
// packages. Callers should use errors.Is to classify failures rather
// than matching on error message text.
var (
	// ErrTileUnavailable indicates an upstream terrain tile could not be
	// fetched (network failure, non-2xx response, or open circuit breaker).
	ErrTileUnavailable = errors.New("terrain tile unavailable")

	// ErrTileCorrupt indicates a fetched tile could not be decoded as a
	// valid terrain-RGB PNG.
	ErrTileCorrupt = errors.New("corrupt terrain-rgb tile")

	// ErrInvalidCoordinate indicates a latitude/longitude pair is out of
	// range or otherwise malformed.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrJobCancelled indicates a long-running viewshed or coverage job
	// was cancelled by the caller's context.
	ErrJobCancelled = errors.New("job cancelled by caller")

	// ErrInvalidParameter indicates a request parameter (radius,
	// resolution, candidate count, ...) fails validation.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrGridTooLarge indicates a requested grid exceeds the configured
	// maximum dimension, protecting against unbounded memory use.
	ErrGridTooLarge = errors.New("grid dimensions exceed configured maximum")

	// ErrInternalNumeric indicates a NaN or Inf escaped a numeric
	// computation.
	ErrInternalNumeric = errors.New("internal numeric error")
)

// CloseWithLog closes a resource and logs any error at warn level. Use
// this for cleanup operations where errors should be acknowledged but
// not fail the operation.
func CloseWithLog(closer io.Closer, resourceType string) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		logging.Warn().Str("type", resourceType).Err(err).Msg("failed to close resource")
	}
}

// CloseQuietly closes a resource and explicitly ignores any error.
// Use this in error paths where a Close() failure is not actionable.
func CloseQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
