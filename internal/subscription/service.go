// Package subscription implements double opt-in: signups are stored as
// pending together with a confirmation token, and redeeming the token
// confirms the subscriber.
package subscription

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"net/url"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
	"newsletter/pkg/mailer"
	"newsletter/pkg/serrors"
	"newsletter/pkg/storage"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	instrumentationName = "newsletter/internal/subscription"

	// TokenLength is the number of characters of a confirmation token.
	TokenLength   = 25
	tokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	ConfirmPath = "/subscriptions/confirm"
	TokenParam  = "subscription_token"
)

// Service handles signups and token redemption.
type Service struct {
	store   storage.Storage
	mail    mailer.Client
	baseURL string
	tracer  trace.Tracer
}

// NewService builds a Service. baseURL is the public address confirmation
// links point to.
func NewService(store storage.Storage, mail mailer.Client, baseURL string, tp trace.TracerProvider) *Service {
	return &Service{
		store:   store,
		mail:    mail,
		baseURL: strings.TrimRight(baseURL, "/"),
		tracer:  tp.Tracer(instrumentationName),
	}
}

// GenerateToken returns TokenLength random alphanumeric characters.
func GenerateToken() (string, error) {
	alphabetSize := big.NewInt(int64(len(tokenAlphabet)))
	var b strings.Builder
	b.Grow(TokenLength)
	for range TokenLength {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("could not generate token: %w", err)
		}
		b.WriteByte(tokenAlphabet[n.Int64()])
	}

	return b.String(), nil
}

func issue(ctx context.Context, tokens storage.TokenStorage, subscriberID domain.SubscriberID) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}

	if err := tokens.StoreToken(ctx, domain.SubscriptionToken{Token: token, SubscriberID: subscriberID}); err != nil {
		return "", fmt.Errorf("could not store subscription token: %w", err)
	}

	return token, nil
}

// Issue creates and stores a new token for subscriberID.
func (s *Service) Issue(ctx context.Context, subscriberID domain.SubscriberID) (string, error) {
	return issue(ctx, s.store, subscriberID)
}

// Subscribe stores a pending subscriber and its token in one transaction,
// then emails the confirmation link. If the email cannot be sent the
// subscriber stays pending and an serrors.ErrInternal error is returned.
func (s *Service) Subscribe(ctx context.Context, subscriber domain.NewSubscriber) (*domain.Subscriber, error) {
	ctx, span := s.tracer.Start(ctx, "Subscribe")
	defer span.End()
	ctx = logger.WithFields(ctx,
		zap.Stringer("subscriberEmail", subscriber.Email),
		zap.Stringer("subscriberName", subscriber.Name))

	var stored *domain.Subscriber
	var token string
	err := s.store.WithTx(ctx, func(tx storage.AllStorage) error {
		var err error
		if stored, err = tx.StoreSubscriber(ctx, subscriber); err != nil {
			return fmt.Errorf("could not store subscriber: %w", err)
		}
		if token, err = issue(ctx, tx, stored.ID); err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		span.RecordError(err)

		return nil, err
	}
	span.SetAttributes(attribute.String("subscriber.id", stored.ID.String()))

	if err := s.mail.Send(ctx, s.confirmationEmail(subscriber.Email, token)); err != nil {
		span.RecordError(err)

		// transport faults are unexpected here, whatever the transport tagged them with
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not send confirmation email")
	}
	logger.Info(ctx, "new subscriber pending confirmation", zap.Stringer("subscriberID", stored.ID))

	return stored, nil
}

// ConfirmationLink is the URL a subscriber visits to redeem token.
func (s *Service) ConfirmationLink(token string) string {
	return s.baseURL + ConfirmPath + "?" + url.Values{TokenParam: []string{token}}.Encode()
}

func (s *Service) confirmationEmail(to domain.SubscriberEmail, token string) mailer.Email {
	link := s.ConfirmationLink(token)

	return mailer.Email{
		To:      to,
		Subject: "Welcome!",
		HTMLBody: fmt.Sprintf("Welcome to our newsletter!<br />"+
			"Click <a href=\"%s\">here</a> to confirm your subscription.", link),
		TextBody: fmt.Sprintf("Welcome to our newsletter!\nVisit %s to confirm your subscription.", link),
	}
}

// Redeem confirms the subscriber token was issued for and returns its id, or
// nil when the token is unknown. Redeeming a token again is a no-op success.
func (s *Service) Redeem(ctx context.Context, token string) (*domain.SubscriberID, error) {
	ctx, span := s.tracer.Start(ctx, "Redeem")
	defer span.End()

	id, err := s.store.SubscriberIDByToken(ctx, token)
	if err != nil {
		span.RecordError(err)

		return nil, fmt.Errorf("could not look up subscription token: %w", err)
	}
	if id == nil {
		return nil, nil
	}

	if err := s.store.ConfirmSubscriber(ctx, *id); err != nil {
		span.RecordError(err)

		return nil, fmt.Errorf("could not confirm subscriber: %w", err)
	}
	logger.Info(ctx, "subscriber confirmed", zap.Stringer("subscriberID", *id))

	return id, nil
}
