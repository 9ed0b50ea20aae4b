package auth

import (
	"context"
	"errors"
	"fmt"
	"newsletter/internal/worker"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
	"newsletter/pkg/serrors"
	"newsletter/pkg/storage"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	instrumentationName = "newsletter/internal/auth"

	MinPasswordLength = 12
	MaxPasswordLength = 128
)

var (
	// ErrPasswordMismatch is returned by ChangePassword when the new password
	// and its confirmation differ.
	ErrPasswordMismatch = serrors.With(serrors.ErrBadRequest,
		"you entered two different new passwords - the field values must match")
	// ErrPasswordLength is returned by ChangePassword for a new password
	// shorter than MinPasswordLength or longer than MaxPasswordLength.
	ErrPasswordLength = serrors.With(serrors.ErrBadRequest,
		"the new password must be between %d and %d characters long", MinPasswordLength, MaxPasswordLength)
	// ErrWrongCurrentPassword is returned by ChangePassword when the current
	// password does not verify.
	ErrWrongCurrentPassword = serrors.With(serrors.ErrInvalidCredentials, "the current password is incorrect")
)

// Authenticator resolves credentials to a user id.
type Authenticator struct {
	users     storage.UserStorage
	pool      *worker.Pool
	hasher    *Hasher
	dummyHash string

	tracer   trace.Tracer
	attempts metric.Int64Counter
}

// NewAuthenticator validates dummyHash and builds an Authenticator. Hash work
// (verification and re-hashing) is scheduled on pool.
func NewAuthenticator(users storage.UserStorage,
	pool *worker.Pool,
	hasher *Hasher,
	dummyHash string,
	mp metric.MeterProvider,
	tp trace.TracerProvider,
) (*Authenticator, error) {
	if err := ValidatePasswordHash(dummyHash); err != nil {
		return nil, fmt.Errorf("invalid dummy password hash: %w", err)
	}

	attempts, err := mp.Meter(instrumentationName).Int64Counter("auth.attempts",
		metric.WithDescription("Authentication attempts by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create auth.attempts counter: %w", err)
	}

	return &Authenticator{
		users:     users,
		pool:      pool,
		hasher:    hasher,
		dummyHash: dummyHash,
		tracer:    tp.Tracer(instrumentationName),
		attempts:  attempts,
	}, nil
}

// Authenticate returns the id of the user identified by credentials. Unknown
// usernames and wrong passwords both yield serrors.ErrInvalidCredentials;
// storage faults are returned as unexpected errors.
func (a *Authenticator) Authenticate(ctx context.Context, credentials Credentials) (domain.UserID, error) {
	ctx, span := a.tracer.Start(ctx, "Authenticate")
	defer span.End()
	ctx = logger.WithFields(ctx, zap.Object("credentials", credentials))

	userID, err := a.authenticate(ctx, credentials)
	switch {
	case err == nil:
		a.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "success")))
	case errors.Is(err, serrors.ErrInvalidCredentials):
		a.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "invalid")))
		logger.Debug(ctx, "invalid credentials", zap.Error(err))
	default:
		a.attempts.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", "error")))
		span.RecordError(err)
		span.SetStatus(codes.Error, "authentication failed unexpectedly")
	}

	return userID, err
}

func (a *Authenticator) authenticate(ctx context.Context, credentials Credentials) (domain.UserID, error) {
	user, err := a.users.UserCredentials(ctx, credentials.Username)
	if err != nil {
		return domain.UserID{}, fmt.Errorf("could not fetch stored credentials: %w", err)
	}

	expectedHash := a.dummyHash
	if user != nil {
		expectedHash = user.PasswordHash
	}

	verifyErr, err := worker.Run(ctx, a.pool, func() error {
		return VerifyPasswordHash(expectedHash, credentials.Password)
	})
	if err != nil {
		return domain.UserID{}, fmt.Errorf("could not run password verification: %w", err)
	}

	// both must hold: matching the dummy hash never authenticates
	if user == nil {
		return domain.UserID{}, serrors.With(serrors.ErrInvalidCredentials, "unknown username")
	}
	if verifyErr != nil {
		return domain.UserID{}, verifyErr
	}

	return user.ID, nil
}

type hashResult struct {
	hash string
	err  error
}

// ChangePassword replaces the password of userID after checking that
// newPassword equals newPasswordCheck, has an acceptable length and that
// currentPassword verifies.
func (a *Authenticator) ChangePassword(ctx context.Context,
	userID domain.UserID,
	currentPassword string,
	newPassword string,
	newPasswordCheck string,
) error {
	ctx, span := a.tracer.Start(ctx, "ChangePassword")
	defer span.End()

	if newPassword != newPasswordCheck {
		return ErrPasswordMismatch
	}
	if n := utf8.RuneCountInString(newPassword); n < MinPasswordLength || n > MaxPasswordLength {
		return ErrPasswordLength
	}

	user, err := a.users.UserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not fetch user: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrUnauthorized, "user %s no longer exists", userID)
	}

	if _, err := a.Authenticate(ctx, Credentials{Username: user.Username, Password: currentPassword}); err != nil {
		if errors.Is(err, serrors.ErrInvalidCredentials) {
			return ErrWrongCurrentPassword
		}

		return err
	}

	res, err := worker.Run(ctx, a.pool, func() hashResult {
		h, err := a.hasher.Hash(newPassword)

		return hashResult{hash: h, err: err}
	})
	if err != nil {
		return fmt.Errorf("could not run password hashing: %w", err)
	}
	if res.err != nil {
		return res.err
	}

	if err := a.users.UpdatePasswordHash(ctx, userID, res.hash); err != nil {
		return fmt.Errorf("could not store new password hash: %w", err)
	}
	logger.Info(ctx, "password changed", zap.Stringer("userID", userID))

	return nil
}
