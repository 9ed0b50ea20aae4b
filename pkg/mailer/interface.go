// Package mailer defines the outbound mail transport used for confirmation
// emails and newsletter issues. Transports live in sub-packages.
package mailer

import (
	"context"
	"newsletter/pkg/domain"
)

// Email is a single message to a single recipient. Both bodies are always
// sent so that clients without HTML support can fall back to text.
type Email struct {
	To       domain.SubscriberEmail
	Subject  string
	HTMLBody string
	TextBody string
}

// Client delivers emails. Implementations must be safe for concurrent use.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Client interface {
	// Send delivers email. A nil error means the transport accepted the message.
	Send(ctx context.Context, email Email) error
}
