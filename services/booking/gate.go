package booking

import (
	"strings"

	"viavela/models"
	"viavela/services/availability"
)

// ValidateSubmission is the fail-fast gate run before any order write. It
// checks the required customer fields and confirms the chosen time is still
// an enabled slot in the freshly generated list, since the computed set may
// have gone stale between render and submit (time advancing past "now", a
// date newly blocked, a schedule change). It returns the request with
// normalized phone and date on success.
func ValidateSubmission(req models.BookingRequest, slots []models.Slot) (models.BookingRequest, error) {
	if strings.TrimSpace(req.Customer.FirstName) == "" {
		return req, newValidationError("firstName", "first name is required")
	}
	if strings.TrimSpace(req.Customer.LastName) == "" {
		return req, newValidationError("lastName", "last name is required")
	}

	phone, ok := NormalizePhone(req.Customer.Phone)
	if !ok {
		return req, newValidationError("phone", "phone number must be a valid local number")
	}
	req.Customer.Phone = phone

	if strings.TrimSpace(req.Date) == "" {
		return req, newValidationError("date", "booking date is required")
	}
	date, err := models.NormalizeDate(req.Date)
	if err != nil {
		return req, newValidationError("date", "booking date is not a valid date")
	}
	req.Date = date

	if strings.TrimSpace(req.Time) == "" {
		return req, newValidationError("time", "booking time is required")
	}
	if !availability.IsSlotEnabled(req.Time, slots) {
		return req, newValidationError("time", "selected time is no longer available")
	}
	return req, nil
}
