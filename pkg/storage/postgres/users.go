package postgres

import (
	"context"
	"fmt"
	"newsletter/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

// StoreUser inserts user. A zero ID is replaced by a freshly generated one.
func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	if uuid.UUID(user.ID) == uuid.Nil {
		user.ID = domain.UserID(uuid.New())
	}

	var row PgUser
	row.FromDomain(user)

	var stored PgUser
	if _, err := p.Builder.Insert(usersTable).
		Rows(row).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &stored); err != nil {
		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}

	return stored.ToDomain(), nil
}

func (p *PgSQL) UserCredentials(ctx context.Context, username string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("username").Eq(username)).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user credentials from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(goqu.I("user_id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

func (p *PgSQL) UpdatePasswordHash(ctx context.Context, id domain.UserID, passwordHash string) error {
	_, err := p.Builder.Update(usersTable).
		Set(goqu.Record{"password_hash": passwordHash}).
		Where(goqu.I("user_id").Eq(uuid.UUID(id))).
		Executor().ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("could not update password hash in pg: %w", err)
	}

	return nil
}
