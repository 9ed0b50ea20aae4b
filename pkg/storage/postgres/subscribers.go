package postgres

import (
	"context"
	"fmt"
	"newsletter/pkg/domain"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// StoreSubscriber inserts a pending subscriber. A duplicate email violates the
// unique constraint and is returned as an error.
func (p *PgSQL) StoreSubscriber(ctx context.Context, subscriber domain.NewSubscriber) (*domain.Subscriber, error) {
	row := PgSubscriber{
		ID:           uuid.New(),
		Email:        subscriber.Email.String(),
		Name:         subscriber.Name.String(),
		SubscribedAt: time.Now().UTC(),
		Status:       string(domain.SubscriberStatusPending),
	}

	var stored PgSubscriber
	if _, err := p.Builder.Insert(subscriptionsTable).
		Rows(row).
		Returning(&PgSubscriber{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store subscriber into pg: %w", err)
	}

	s := stored.ToDomain()

	return &s, nil
}

func (p *PgSQL) ConfirmSubscriber(ctx context.Context, id domain.SubscriberID) error {
	_, err := p.Builder.Update(subscriptionsTable).
		Set(goqu.Record{"status": string(domain.SubscriberStatusConfirmed)}).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not confirm subscriber in pg: %w", err)
	}

	return nil
}

func (p *PgSQL) ConfirmedSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	var rows []PgSubscriber
	if err := p.Builder.From(subscriptionsTable).
		Where(goqu.I("status").Eq(string(domain.SubscriberStatusConfirmed))).
		Order(goqu.I("subscribed_at").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch confirmed subscribers from pg: %w", err)
	}

	return pgSubscribersToDomain(rows), nil
}
