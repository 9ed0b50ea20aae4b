package postgres_test

import (
	"context"
	"newsletter/pkg/domain"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Tokens(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()

	sub, err := pgSQL.StoreSubscriber(ctx, newSubscriber(t, "le guin", "ursula_le_guin@gmail.com"))
	require.NoError(t, err)

	require.NoError(t, pgSQL.StoreToken(ctx, domain.SubscriptionToken{Token: "abc", SubscriberID: sub.ID}))

	t.Run("known token", func(t *testing.T) {
		id, err := pgSQL.SubscriberIDByToken(ctx, "abc")
		require.NoError(t, err)
		require.NotNil(t, id)
		require.Equal(t, sub.ID, *id)
	})

	t.Run("unknown token yields nil", func(t *testing.T) {
		id, err := pgSQL.SubscriberIDByToken(ctx, "missing")
		require.NoError(t, err)
		require.Nil(t, id)
	})

	t.Run("duplicate token is rejected", func(t *testing.T) {
		require.Error(t, pgSQL.StoreToken(ctx, domain.SubscriptionToken{Token: "abc", SubscriberID: sub.ID}))
	})

	t.Run("token for unknown subscriber is rejected", func(t *testing.T) {
		require.Error(t, pgSQL.StoreToken(ctx, domain.SubscriptionToken{
			Token:        "orphan",
			SubscriberID: domain.SubscriberID(uuid.New()),
		}))
	})
}
