package availability

import (
	"net/http"

	"github.com/okabrie/appointment-booking-backend/internal/pkg/apperror"
)

var (
	// ErrInvalidDateRange is returned when the requested range ends before
	// it starts.
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "end date must be after start date")
)
