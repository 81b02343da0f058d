package recurrence

import (
	"net/http"

	"github.com/okabrie/appointment-booking-backend/internal/pkg/apperror"
)

var (
	// ErrNoRulesDefined is returned when a rule carries no entries.
	// This is a caller mistake: such rules should be rejected upstream.
	ErrNoRulesDefined = apperror.New(http.StatusBadRequest, "recurrence rule has no entries")

	// ErrSearchExhausted is returned when no occurrence is found within the
	// bounded search window. A non-empty rule always matches within the
	// window, so hitting this indicates an internal defect.
	ErrSearchExhausted = apperror.New(http.StatusInternalServerError, "recurrence search exhausted")
)
