package service

import (
	"context"
	"errors"
	"fmt"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"time"
)

const (
	ChannelAdminEmail   = "admin_email"
	ChannelUserEmail    = "user_email"
	ChannelWhatsApp     = "whatsapp"
	ChannelContactEmail = "contact_email"
)

// Job is one outbound notification.
type Job struct {
	Channel   string
	Recipient string
	Send      func(ctx context.Context) error
}

type JobOutcome struct {
	Channel   string
	Recipient string
	Err       error
	Duration  time.Duration
}

// BatchResult records every job of one fan-out, in submission order.
type BatchResult struct {
	ID       string
	Outcomes []JobOutcome
}

// OK is true only when every job succeeded.
func (b *BatchResult) OK() bool {
	return b.Err() == nil
}

func (b *BatchResult) Err() error {
	var errs []error
	for _, o := range b.Outcomes {
		if o.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o.Channel, o.Err))
		}
	}
	return errors.Join(errs...)
}

func (b *BatchResult) Failed() []JobOutcome {
	var failed []JobOutcome
	for _, o := range b.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

type Dispatcher struct {
	log *zap.Logger
}

func NewDispatcher(log *zap.Logger) *Dispatcher {
	return &Dispatcher{log: log}
}

// Run starts every job at once and waits for all of them. A failing job
// does not cancel the others.
func (d *Dispatcher) Run(ctx context.Context, jobs []Job) *BatchResult {
	result := &BatchResult{
		ID:       uuid.NewString(),
		Outcomes: make([]JobOutcome, len(jobs)),
	}

	var g errgroup.Group
	for i, job := range jobs {
		g.Go(func() error {
			start := time.Now()
			err := runJob(ctx, job)
			result.Outcomes[i] = JobOutcome{
				Channel:   job.Channel,
				Recipient: job.Recipient,
				Err:       err,
				Duration:  time.Since(start),
			}
			return err
		})
	}
	_ = g.Wait()

	for _, o := range result.Outcomes {
		if o.Err != nil {
			d.log.Error("notification failed",
				zap.String("batch_id", result.ID),
				zap.String("channel", o.Channel),
				zap.String("recipient", o.Recipient),
				zap.Duration("duration", o.Duration),
				zap.Error(o.Err),
			)
			continue
		}
		d.log.Info("notification sent",
			zap.String("batch_id", result.ID),
			zap.String("channel", o.Channel),
			zap.Duration("duration", o.Duration),
		)
	}
	return result
}

func runJob(ctx context.Context, job Job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in %s job: %v", job.Channel, r)
		}
	}()
	return job.Send(ctx)
}
