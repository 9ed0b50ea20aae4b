package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rivo/uniseg"
)

// SubscriberID uniquely identifies a newsletter subscriber.
type SubscriberID uuid.UUID

func (id SubscriberID) String() string {
	return uuid.UUID(id).String()
}

// SubscriberStatus is the double opt-in state of a subscriber.
type SubscriberStatus string

const (
	// SubscriberStatusPending is the state of a subscriber who signed up but
	// has not redeemed the confirmation token yet.
	SubscriberStatusPending SubscriberStatus = "pending_confirmation"
	// SubscriberStatusConfirmed is terminal: only confirmed subscribers receive issues.
	SubscriberStatusConfirmed SubscriberStatus = "confirmed"
)

// MaxSubscriberNameLength is the maximum number of user-perceived characters in a name.
const MaxSubscriberNameLength = 256

const forbiddenNameCharacters = `/()"<>\{}`

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint: gochecknoglobals

// SubscriberEmail is an email address that passed format validation.
type SubscriberEmail string

// ParseSubscriberEmail validates s as an email address. The same rules apply at
// signup and when re-checking stored addresses before a newsletter is sent.
func ParseSubscriberEmail(s string) (SubscriberEmail, error) {
	if err := validate.Var(s, "required,email"); err != nil {
		return "", fmt.Errorf("%q is not a valid subscriber email", s)
	}

	return SubscriberEmail(s), nil
}

func (e SubscriberEmail) String() string { return string(e) }

// SubscriberName is a display name that passed validation.
type SubscriberName string

// ParseSubscriberName rejects names that are blank, longer than
// MaxSubscriberNameLength graphemes or contain any of / ( ) " < > \ { }.
func ParseSubscriberName(s string) (SubscriberName, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("subscriber name is empty")
	}
	if uniseg.GraphemeClusterCount(s) > MaxSubscriberNameLength {
		return "", fmt.Errorf("subscriber name is longer than %d characters", MaxSubscriberNameLength)
	}
	if strings.ContainsAny(s, forbiddenNameCharacters) {
		return "", fmt.Errorf("%q is not a valid subscriber name", s)
	}

	return SubscriberName(s), nil
}

func (n SubscriberName) String() string { return string(n) }

// NewSubscriber is the validated input of a signup.
type NewSubscriber struct {
	Email SubscriberEmail
	Name  SubscriberName
}

// ParseNewSubscriber validates a raw signup form.
func ParseNewSubscriber(name string, email string) (NewSubscriber, error) {
	n, err := ParseSubscriberName(name)
	if err != nil {
		return NewSubscriber{}, err
	}
	e, err := ParseSubscriberEmail(email)
	if err != nil {
		return NewSubscriber{}, err
	}

	return NewSubscriber{Email: e, Name: n}, nil
}

// Subscriber is a stored newsletter subscriber. Email is kept as the raw
// stored string: rows written before a validation rule changed may no longer
// parse, so consumers re-validate it with ParseSubscriberEmail.
type Subscriber struct {
	ID           SubscriberID
	Email        string
	Name         string
	Status       SubscriberStatus
	SubscribedAt time.Time
}

// SubscriptionToken binds a confirmation token to the pending subscriber it
// was issued for. Tokens do not expire.
type SubscriptionToken struct {
	Token        string
	SubscriberID SubscriberID
}
