package postgres

import (
	"context"
	"fmt"
	"newsletter/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

func (p *PgSQL) StoreToken(ctx context.Context, token domain.SubscriptionToken) error {
	_, err := p.Builder.Insert(tokensTable).
		Rows(PgToken{Token: token.Token, SubscriberID: uuid.UUID(token.SubscriberID)}).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not store subscription token into pg: %w", err)
	}

	return nil
}

func (p *PgSQL) SubscriberIDByToken(ctx context.Context, token string) (*domain.SubscriberID, error) {
	var row PgToken
	found, err := p.Builder.From(tokensTable).
		Where(goqu.I("subscription_token").Eq(token)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch subscriber id by token from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	id := domain.SubscriberID(row.SubscriberID)

	return &id, nil
}
