package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

const DefaultEndpoint = "https://the-jar-cafe.onrender.com/api/reservations"

type OutcomeKind int

const (
	OutcomeInvalid OutcomeKind = iota
	OutcomeReserved
	OutcomeRejected
	OutcomeServerError
)

// Outcome is the single result shown to the user for one submission.
type Outcome struct {
	Kind       OutcomeKind
	StatusCode int
	Err        error
}

func (o Outcome) Message() string {
	switch o.Kind {
	case OutcomeReserved:
		return "Reservation successful! You will receive a confirmation email."
	case OutcomeRejected:
		return "Failed to reserve. Please try again."
	case OutcomeServerError:
		return "Server error. Try again later."
	default:
		return "Please fill in all required fields."
	}
}

// ClearForm reports whether the form should be reset.
func (o Outcome) ClearForm() bool {
	return o.Kind == OutcomeReserved
}

type Submitter struct {
	Endpoint   string
	HTTPClient *http.Client
}

func NewSubmitter(endpoint string) *Submitter {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Submitter{Endpoint: endpoint, HTTPClient: http.DefaultClient}
}

// Submit validates the form and, only if it is complete, posts it once.
func (s *Submitter) Submit(ctx context.Context, f Form) Outcome {
	f = f.Trimmed()
	if err := Validate(f); err != nil {
		return Outcome{Kind: OutcomeInvalid, Err: err}
	}

	body, err := json.Marshal(f)
	if err != nil {
		return Outcome{Kind: OutcomeServerError, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Outcome{Kind: OutcomeServerError, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return Outcome{Kind: OutcomeServerError, Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return Outcome{Kind: OutcomeReserved, StatusCode: resp.StatusCode}
	}
	return Outcome{Kind: OutcomeRejected, StatusCode: resp.StatusCode}
}
