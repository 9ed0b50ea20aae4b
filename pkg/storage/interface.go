// Package storage defines the core storage interfaces that the application relies on.
// It abstracts persistence operations and transaction management so that different
// backends (e.g. PostgreSQL) can provide concrete implementations.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"newsletter/pkg/domain"
)

// UserStorage reads and updates administrator credentials. Users are created
// out of band (see the `user create` command).
type UserStorage interface {
	// StoreUser inserts a new user and returns the stored row.
	StoreUser(ctx context.Context, user domain.User) (*domain.User, error)
	// UserCredentials returns the user with the given username, or nil when no
	// such user exists. A nil user is not an error.
	UserCredentials(ctx context.Context, username string) (*domain.User, error)
	// UserByID returns the user with the given ID, or nil when not found.
	UserByID(ctx context.Context, ID domain.UserID) (*domain.User, error)
	// UpdatePasswordHash replaces the stored password hash of a user.
	UpdatePasswordHash(ctx context.Context, ID domain.UserID, passwordHash string) error
}

// SubscriberStorage persists newsletter subscribers.
type SubscriberStorage interface {
	// StoreSubscriber inserts a new subscriber with status pending_confirmation
	// and returns the stored row including generated fields.
	StoreSubscriber(ctx context.Context, subscriber domain.NewSubscriber) (*domain.Subscriber, error)
	// ConfirmSubscriber sets the status of a subscriber to confirmed. Confirming
	// an already confirmed subscriber is a no-op.
	ConfirmSubscriber(ctx context.Context, ID domain.SubscriberID) error
	// ConfirmedSubscribers lists every subscriber whose status is confirmed.
	// Emails are returned as stored, without validation.
	ConfirmedSubscribers(ctx context.Context) ([]domain.Subscriber, error)
}

// TokenStorage persists subscription confirmation tokens.
type TokenStorage interface {
	// StoreToken binds a token to a subscriber.
	StoreToken(ctx context.Context, token domain.SubscriptionToken) error
	// SubscriberIDByToken returns the subscriber the token was issued for, or
	// nil when the token is unknown.
	SubscriberIDByToken(ctx context.Context, token string) (*domain.SubscriberID, error)
}

// AllStorage is a composite interface that includes all domain-specific storage
// capabilities required by the application.
type AllStorage interface {
	UserStorage
	SubscriberStorage
	TokenStorage
}

// TxStorage describes a storage handle that operates within a database
// transaction. It exposes the same domain-specific capabilities as AllStorage,
// and additionally allows committing or rolling back the ongoing transaction.
// Implementations should become unusable after Commit or Rollback is called.
type TxStorage interface {
	AllStorage

	// Commit finalizes the transaction, persisting all changes.
	Commit() error
	// Rollback aborts the transaction, discarding all uncommitted changes.
	Rollback() error
}

// Storage describes a non-transactional storage handle with the ability to
// start transactions.
type Storage interface {
	AllStorage

	// Close releases any resources held by the storage implementation (e.g. the
	// underlying connection pool). After Close, the instance should not be used.
	Close() error

	// Begin starts a new transaction and returns a TxStorage that can be used to
	// perform further operations within that transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx begins a transaction, invokes cb with it, and commits on success or
	// rolls back if cb returns an error.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
