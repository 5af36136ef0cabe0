package service

import (
	"context"
	"fmt"
	"go.uber.org/zap"
	"jarcafe/internal/entities"
	"net/mail"
	"strings"
)

type ContactService struct {
	sender     *SenderService
	dispatcher *Dispatcher
	log        *zap.Logger
}

func NewContactService(sender *SenderService, dispatcher *Dispatcher, log *zap.Logger) *ContactService {
	return &ContactService{
		sender:     sender,
		dispatcher: dispatcher,
		log:        log,
	}
}

// SendContactMessage forwards a contact form message to the operator. The
// submitter's address becomes the Reply-To and must parse as one address.
func (s *ContactService) SendContactMessage(ctx context.Context, req entities.ContactRequest) error {
	if missing := req.MissingFields(); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}
	addr, err := mail.ParseAddress(req.Email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEmail, err)
	}
	req.Email = addr.Address

	result := s.dispatcher.Run(ctx, []Job{s.sender.ContactJob(req)})
	if !result.OK() {
		s.log.Warn("Contact email failed", zap.String("batch_id", result.ID))
		return fmt.Errorf("%w: %w", ErrDispatch, result.Err())
	}
	return nil
}
