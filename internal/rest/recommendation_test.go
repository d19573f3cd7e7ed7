package rest

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"sparetime/domain"
)

func TestStatusForError(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrVideoNotFound, http.StatusNotFound},
		{domain.ErrInvalidRating, http.StatusBadRequest},
		{domain.ErrInvalidDuration, http.StatusBadRequest},
		{fmt.Errorf("persist profile: %w", errors.New("connection refused")), http.StatusInternalServerError},
		{fmt.Errorf("rating check: %w", domain.ErrInvalidRating), http.StatusBadRequest},
	}

	for _, tc := range cases {
		if got := statusForError(tc.err); got != tc.want {
			t.Errorf("statusForError(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
