package api

import (
	"context"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"jarcafe/internal/client"
	"net/http/httptest"
	"testing"
)

func TestClientToRelay(t *testing.T) {
	ts := newTestServer(true)
	srv := httptest.NewServer(ts.handler)
	defer srv.Close()

	submitter := client.NewSubmitter(srv.URL + "/api/reservations")
	out := submitter.Submit(context.Background(), client.Form{
		Name:            "A",
		Email:           "a@x.com",
		Phone:           "9876543210",
		Person:          "2",
		ReservationDate: "2025-06-01",
		Time:            "19:00",
	})
	require.Equal(t, client.OutcomeReserved, out.Kind)

	emails := ts.mailer.Emails()
	require.Len(t, emails, 2)
	var admin, user int
	for _, e := range emails {
		switch e.To {
		case adminAddress:
			admin++
			assert.Contains(t, e.Body, "Message: No additional message")
		case "a@x.com":
			user++
		}
	}
	assert.Equal(t, 1, admin)
	assert.Equal(t, 1, user)
	require.Len(t, ts.messenger.Messages(), 1)
	assert.Equal(t, "+919876543210", ts.messenger.Messages()[0].To)
}

func TestClientSeesRejectionOnDispatchFailure(t *testing.T) {
	ts := newTestServer(false)
	ts.mailer.FailFor["a@x.com"] = true
	srv := httptest.NewServer(ts.handler)
	defer srv.Close()

	out := client.NewSubmitter(srv.URL+"/api/reservations").Submit(context.Background(), client.Form{
		Name: "A", Email: "a@x.com", Phone: "5550100", Person: "2", ReservationDate: "2025-06-01", Time: "19:00",
	})
	assert.Equal(t, client.OutcomeRejected, out.Kind)
	assert.Equal(t, 500, out.StatusCode)
}
