package postgres_test

import (
	"context"
	"errors"
	"newsletter/pkg/domain"
	"newsletter/pkg/storage"
	"newsletter/pkg/storage/postgres"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newMockStorage(t *testing.T) (*postgres.PgSQL, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return postgres.NewFromDB(db), mock
}

func TestPgSQL_UserCredentials_QueryError(t *testing.T) {
	pg, mock := newMockStorage(t)
	dbErr := errors.New("connection reset")

	mock.ExpectQuery(`SELECT .* FROM "users" WHERE \("username" = 'admin'\)`).WillReturnError(dbErr)

	user, err := pg.UserCredentials(context.Background(), "admin")
	require.ErrorIs(t, err, dbErr)
	require.Nil(t, user)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_ConfirmedSubscribers_FiltersByStatus(t *testing.T) {
	pg, mock := newMockStorage(t)
	id := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "subscriptions" WHERE \("status" = 'confirmed'\)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "name", "subscribed_at", "status"}).
			AddRow(id.String(), "ursula_le_guin@gmail.com", "le guin", mockNow(), "confirmed"))

	subs, err := pg.ConfirmedSubscribers(context.Background())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	require.Equal(t, domain.SubscriberID(id), subs[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_ConfirmedSubscribers_QueryError(t *testing.T) {
	pg, mock := newMockStorage(t)

	mock.ExpectQuery(`SELECT .* FROM "subscriptions"`).WillReturnError(errors.New("timeout"))

	subs, err := pg.ConfirmedSubscribers(context.Background())
	require.Error(t, err)
	require.Nil(t, subs)
}

func TestPgSQL_ConfirmSubscriber_ExecError(t *testing.T) {
	pg, mock := newMockStorage(t)

	mock.ExpectExec(`UPDATE "subscriptions" SET "status"='confirmed'`).WillReturnError(errors.New("deadlock"))

	require.Error(t, pg.ConfirmSubscriber(context.Background(), domain.SubscriberID(uuid.New())))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_SubscriberIDByToken_NotFound(t *testing.T) {
	pg, mock := newMockStorage(t)

	mock.ExpectQuery(`SELECT .* FROM "subscription_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"subscription_token", "subscriber_id"}))

	id, err := pg.SubscriberIDByToken(context.Background(), "missing")
	require.NoError(t, err)
	require.Nil(t, id)
}

func TestPgSQL_WithTx_RollsBackOnCallbackError(t *testing.T) {
	pg, mock := newMockStorage(t)
	cbErr := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := pg.WithTx(context.Background(), func(storage.AllStorage) error { return cbErr })
	require.ErrorIs(t, err, cbErr)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_WithTx_CommitError(t *testing.T) {
	pg, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := pg.WithTx(context.Background(), func(storage.AllStorage) error { return nil })
	require.ErrorContains(t, err, "could not commit tx")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgSQL_Begin_Error(t *testing.T) {
	pg, mock := newMockStorage(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	_, err := pg.Begin(context.Background())
	require.ErrorContains(t, err, "could not begin tx")
}

func mockNow() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}
