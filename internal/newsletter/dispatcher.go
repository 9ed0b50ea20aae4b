// Package newsletter publishes issues to every confirmed subscriber.
package newsletter

import (
	"context"
	"fmt"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
	"newsletter/pkg/mailer"
	"newsletter/pkg/serrors"
	"newsletter/pkg/storage"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const instrumentationName = "newsletter/internal/newsletter"

type outcomeKind int

const (
	outcomeSent outcomeKind = iota
	outcomeSkipped
	outcomeFailed
)

func (k outcomeKind) String() string {
	switch k {
	case outcomeSent:
		return "sent"
	case outcomeSkipped:
		return "skipped"
	default:
		return "failed"
	}
}

type outcome struct {
	kind       outcomeKind
	subscriber domain.Subscriber
	err        error
}

// Failure records a recipient the transport did not accept.
type Failure struct {
	SubscriberID domain.SubscriberID
	Err          error
}

// Report is the aggregate outcome of one publish run. Every confirmed
// subscriber is counted exactly once in Sent, Skipped or Failed.
type Report struct {
	Total    int       `json:"total"`
	Sent     int       `json:"sent"`
	Skipped  int       `json:"skipped"`
	Failed   int       `json:"failed"`
	Failures []Failure `json:"-"`
}

// Err returns a serrors.ErrDispatchPartialFailure error when at least one
// recipient failed, nil otherwise.
func (r *Report) Err() error {
	if r.Failed == 0 {
		return nil
	}

	return serrors.With(serrors.ErrDispatchPartialFailure, "%d of %d recipients failed", r.Failed, r.Total)
}

func (r *Report) add(o outcome) {
	switch o.kind {
	case outcomeSent:
		r.Sent++
	case outcomeSkipped:
		r.Skipped++
	case outcomeFailed:
		r.Failed++
		r.Failures = append(r.Failures, Failure{SubscriberID: o.subscriber.ID, Err: o.err})
	}
}

// Dispatcher sends issues with bounded concurrency.
type Dispatcher struct {
	subscribers storage.SubscriberStorage
	mail        mailer.Client
	concurrency int

	tracer     trace.Tracer
	deliveries metric.Int64Counter
}

// NewDispatcher builds a Dispatcher sending to at most concurrency
// recipients at a time.
func NewDispatcher(subscribers storage.SubscriberStorage,
	mail mailer.Client,
	concurrency int,
	mp metric.MeterProvider,
	tp trace.TracerProvider,
) (*Dispatcher, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	deliveries, err := mp.Meter(instrumentationName).Int64Counter("newsletter.deliveries",
		metric.WithDescription("Newsletter deliveries by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create newsletter.deliveries counter: %w", err)
	}

	return &Dispatcher{
		subscribers: subscribers,
		mail:        mail,
		concurrency: concurrency,
		tracer:      tp.Tracer(instrumentationName),
		deliveries:  deliveries,
	}, nil
}

// Publish sends issue to every confirmed subscriber. Rows whose stored email
// no longer validates are skipped; transport failures are recorded and do not
// stop the run. Only a failure to list subscribers is returned as an error.
func (d *Dispatcher) Publish(ctx context.Context, issue domain.Issue) (*Report, error) {
	ctx, span := d.tracer.Start(ctx, "Publish", trace.WithAttributes(attribute.String("issue.title", issue.Title)))
	defer span.End()

	subscribers, err := d.subscribers.ConfirmedSubscribers(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "could not list subscribers")

		return nil, fmt.Errorf("could not fetch confirmed subscribers: %w", err)
	}

	outcomes := make(chan outcome, len(subscribers))
	var g errgroup.Group
	g.SetLimit(d.concurrency)
	for _, subscriber := range subscribers {
		email, err := domain.ParseSubscriberEmail(subscriber.Email)
		if err != nil {
			logger.Warn(ctx, "skipping a confirmed subscriber, their stored contact details are invalid",
				zap.Stringer("subscriberID", subscriber.ID), zap.Error(err))
			outcomes <- outcome{kind: outcomeSkipped, subscriber: subscriber, err: err}

			continue
		}

		g.Go(func() error {
			err := d.send(ctx, mailer.Email{
				To:       email,
				Subject:  issue.Title,
				HTMLBody: issue.HTMLBody,
				TextBody: issue.TextBody,
			})
			if err != nil {
				logger.Error(ctx, "could not send newsletter issue",
					zap.Stringer("subscriberID", subscriber.ID),
					zap.Stringer("subscriberEmail", email),
					zap.Error(err))
				outcomes <- outcome{kind: outcomeFailed, subscriber: subscriber, err: err}

				return nil
			}
			outcomes <- outcome{kind: outcomeSent, subscriber: subscriber}

			return nil
		})
	}
	_ = g.Wait()
	close(outcomes)

	report := &Report{Total: len(subscribers)}
	for o := range outcomes {
		report.add(o)
		d.deliveries.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", o.kind.String())))
	}

	span.SetAttributes(
		attribute.Int("report.sent", report.Sent),
		attribute.Int("report.skipped", report.Skipped),
		attribute.Int("report.failed", report.Failed),
	)
	if err := report.Err(); err != nil {
		logger.Warn(ctx, "newsletter issue partially delivered", zap.Error(err))
	}
	logger.Info(ctx, "newsletter issue published",
		zap.Int("total", report.Total),
		zap.Int("sent", report.Sent),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed))

	return report, nil
}

// send hands email to the transport. A panicking transport is reported as a
// failed delivery so the rest of the run goes on.
func (d *Dispatcher) send(ctx context.Context, email mailer.Email) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mail transport panicked: %v", r)
		}
	}()

	return d.mail.Send(ctx, email)
}
