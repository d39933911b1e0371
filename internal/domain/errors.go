package domain

import "errors"

var (
	// ErrPlanNotFound is returned when no weekly plan exists yet for the
	// requested week. Recoverable by generating weekly suggestions.
	ErrPlanNotFound = errors.New("no weekly plan for requested week")

	// ErrNoBaseRecommendations is returned when suggestion generation
	// fails because the user has no underlying recommendation pool yet.
	// Recoverable by generating base recommendations first.
	ErrNoBaseRecommendations = errors.New("base recommendations missing")

	// ErrBackendUnavailable is returned on network failures, timeouts,
	// or unrecognized non-2xx responses. Not locally recoverable.
	ErrBackendUnavailable = errors.New("planner backend request failed")

	// ErrCacheMiss is returned when a plan is not found in cache or its
	// entry has expired.
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidRequest is returned when request parameters are invalid.
	ErrInvalidRequest = errors.New("invalid request parameters")
)
