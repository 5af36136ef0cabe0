package service

import (
	"context"
	"errors"
	"fmt"
	"go.uber.org/zap"
	"jarcafe/internal/entities"
	"strings"
)

var (
	ErrMissingFields = errors.New("required fields missing")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrDispatch      = errors.New("notification dispatch failed")
)

type ReservationService struct {
	sender     *SenderService
	dispatcher *Dispatcher
	log        *zap.Logger
}

func NewReservationService(sender *SenderService, dispatcher *Dispatcher, log *zap.Logger) *ReservationService {
	return &ReservationService{
		sender:     sender,
		dispatcher: dispatcher,
		log:        log,
	}
}

// CreateReservation validates the request and sends every notification for
// it as one batch. Nothing is sent when validation fails. Jobs that already
// succeeded are not undone when another one fails.
func (s *ReservationService) CreateReservation(ctx context.Context, req entities.ReservationRequest) (*BatchResult, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	result := s.dispatcher.Run(ctx, s.sender.ReservationJobs(req))
	if !result.OK() {
		s.log.Warn("Reservation batch failed",
			zap.String("batch_id", result.ID),
			zap.Int("failed", len(result.Failed())),
			zap.Int("jobs", len(result.Outcomes)),
		)
		return result, fmt.Errorf("%w: %w", ErrDispatch, result.Err())
	}

	s.log.Info("Reservation notifications sent",
		zap.String("batch_id", result.ID),
		zap.String("date", req.ReservationDate),
		zap.String("time", req.Time),
		zap.Int("jobs", len(result.Outcomes)),
	)
	return result, nil
}
