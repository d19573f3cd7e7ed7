package domain

import "errors"

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrVideoNotFound = errors.New("video not found")

	// ErrInvalidRating covers non-numeric or out-of-scale ratings.
	ErrInvalidRating = errors.New("invalid rating value")

	// ErrInvalidDuration covers a missing or non-positive requested
	// duration on a recommendation call.
	ErrInvalidDuration = errors.New("invalid requested duration")

	// ErrDegenerateUpdate is returned when the running-average divisor
	// (total_ratings + 1) would be zero; the profile is left untouched.
	ErrDegenerateUpdate = errors.New("degenerate profile update: zero divisor")
)
