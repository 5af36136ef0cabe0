// Package client is the submitting side of the reservation form: presence
// validation, the JSON request, and mapping the response to one message.
package client

import (
	"errors"
	"fmt"
	"strings"
)

var ErrMissingFields = errors.New("required fields missing")

// Form holds the values as read from the reservation form.
type Form struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Person          string `json:"person"`
	ReservationDate string `json:"reservationDate"`
	Time            string `json:"time"`
	Message         string `json:"message"`
}

// Trimmed returns a copy with the free-text inputs trimmed. Select, date and
// time controls are taken as they are.
func (f Form) Trimmed() Form {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Phone = strings.TrimSpace(f.Phone)
	f.Message = strings.TrimSpace(f.Message)
	return f
}

// Validate checks that every required field is present. It does no I/O.
func Validate(f Form) error {
	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", f.Name},
		{"email", f.Email},
		{"phone", f.Phone},
		{"reservationDate", f.ReservationDate},
		{"time", f.Time},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w (missing: %s)", ErrMissingFields, strings.Join(missing, ", "))
	}
	return nil
}
