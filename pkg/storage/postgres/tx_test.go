package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"newsletter/pkg/domain"
	"newsletter/pkg/storage"
	"newsletter/pkg/storage/postgres"

	"github.com/stretchr/testify/require"
)

func countSubscribers(t *testing.T, db *sql.DB, email string) int {
	t.Helper()
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM subscriptions WHERE email = $1`, email)
	var c int
	require.NoError(t, row.Scan(&c))

	return c
}

func newSubscriber(t *testing.T, name, email string) domain.NewSubscriber {
	t.Helper()
	s, err := domain.ParseNewSubscriber(name, email)
	require.NoError(t, err)

	return s
}

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_CommitAndRollback_NotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)
	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	db := pg.DB.(*sql.DB)
	ctx := context.Background()

	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		sub, err := s.StoreSubscriber(ctx, newSubscriber(t, "le guin", "ursula_le_guin@gmail.com"))
		if err != nil {
			return err
		}

		return s.StoreToken(ctx, domain.SubscriptionToken{Token: "committed", SubscriberID: sub.ID})
	})
	require.NoError(t, err)
	require.Equal(t, 1, countSubscribers(t, db, "ursula_le_guin@gmail.com"))

	id, err := pg.SubscriberIDByToken(ctx, "committed")
	require.NoError(t, err)
	require.NotNil(t, id)

	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		if _, err := s.StoreSubscriber(ctx, newSubscriber(t, "octavia", "octavia@example.com")); err != nil {
			return err
		}

		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countSubscribers(t, db, "octavia@example.com"))
}
