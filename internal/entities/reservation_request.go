package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

type ReservationRequest struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Person          PartySize `json:"person"`
	ReservationDate string    `json:"reservationDate"`
	Time            string    `json:"time"`
	Message         string    `json:"message,omitempty"` // optional
}

// MissingFields returns the JSON names of the required fields that are empty.
// Values are not trimmed.
func (r ReservationRequest) MissingFields() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", r.Name},
		{"email", r.Email},
		{"phone", r.Phone},
		{"person", string(r.Person)},
		{"reservationDate", r.ReservationDate},
		{"time", r.Time},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// PartySize is the guest count as picked in the form. Browsers may post it as
// a string or a number; it is kept as text and never range checked.
type PartySize string

func (p *PartySize) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PartySize(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("person must be a string or a number: %w", err)
	}
	// A numeric zero counts as not provided.
	if f, err := strconv.ParseFloat(n.String(), 64); err == nil && f == 0 {
		*p = ""
		return nil
	}
	*p = PartySize(n.String())
	return nil
}
