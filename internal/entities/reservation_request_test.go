package entities

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func validReservation() ReservationRequest {
	return ReservationRequest{
		Name:            "A",
		Email:           "a@x.com",
		Phone:           "5550100",
		Person:          "2",
		ReservationDate: "2025-06-01",
		Time:            "19:00",
	}
}

func TestMissingFields(t *testing.T) {
	assert.Empty(t, validReservation().MissingFields())

	blank := map[string]func(*ReservationRequest){
		"name":            func(r *ReservationRequest) { r.Name = "" },
		"email":           func(r *ReservationRequest) { r.Email = "" },
		"phone":           func(r *ReservationRequest) { r.Phone = "" },
		"person":          func(r *ReservationRequest) { r.Person = "" },
		"reservationDate": func(r *ReservationRequest) { r.ReservationDate = "" },
		"time":            func(r *ReservationRequest) { r.Time = "" },
	}
	for field, fn := range blank {
		t.Run(field, func(t *testing.T) {
			r := validReservation()
			fn(&r)
			assert.Equal(t, []string{field}, r.MissingFields())
		})
	}

	assert.Equal(t,
		[]string{"name", "email", "phone", "person", "reservationDate", "time"},
		ReservationRequest{}.MissingFields(),
	)
}

func TestMissingFieldsDoesNotTrim(t *testing.T) {
	r := validReservation()
	r.Name = "   "
	assert.Empty(t, r.MissingFields())
}

func TestMessageIsOptional(t *testing.T) {
	r := validReservation()
	r.Message = ""
	assert.Empty(t, r.MissingFields())
}

func TestPartySizeDecoding(t *testing.T) {
	cases := []struct {
		in   string
		want PartySize
	}{
		{`{"person":"2"}`, "2"},
		{`{"person":4}`, "4"},
		{`{"person":0}`, ""},
		{`{"person":null}`, ""},
		{`{"person":"0"}`, "0"},
		{`{}`, ""},
	}
	for _, tc := range cases {
		var r ReservationRequest
		require.NoError(t, json.Unmarshal([]byte(tc.in), &r), tc.in)
		assert.Equal(t, tc.want, r.Person, tc.in)
	}

	var r ReservationRequest
	assert.Error(t, json.Unmarshal([]byte(`{"person":true}`), &r))
}

func TestContactMissingFields(t *testing.T) {
	assert.Empty(t, ContactRequest{Name: "A", Email: "a@x.com", Message: "hi"}.MissingFields())
	assert.Equal(t, []string{"email", "message"}, ContactRequest{Name: "A"}.MissingFields())
}

func TestReservationEmailData(t *testing.T) {
	r := validReservation()
	r.Message = "window seat"
	d := NewReservationEmailData(r)
	assert.Equal(t, ReservationEmailData{UserName: "A", Date: "2025-06-01", Time: "19:00", Persons: "2"}, d)
}
