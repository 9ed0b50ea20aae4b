package postgres

import (
	"newsletter/pkg/domain"
	"time"

	"github.com/google/uuid"
)

const (
	usersTable         = "users"
	subscriptionsTable = "subscriptions"
	tokensTable        = "subscription_tokens"
)

type PgUser struct {
	ID           uuid.UUID `db:"user_id"`
	Username     string    `db:"username"`
	PasswordHash string    `db:"password_hash"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Username:     p.Username,
		PasswordHash: p.PasswordHash,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		Username:     user.Username,
		PasswordHash: user.PasswordHash,
	}
}

type PgSubscriber struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	SubscribedAt time.Time `db:"subscribed_at"`
	Status       string    `db:"status"`
}

func (p *PgSubscriber) ToDomain() domain.Subscriber {
	return domain.Subscriber{
		ID:           domain.SubscriberID(p.ID),
		Email:        p.Email,
		Name:         p.Name,
		Status:       domain.SubscriberStatus(p.Status),
		SubscribedAt: p.SubscribedAt,
	}
}

func pgSubscribersToDomain(rows []PgSubscriber) []domain.Subscriber {
	out := make([]domain.Subscriber, 0, len(rows))
	for i := range rows {
		out = append(out, rows[i].ToDomain())
	}

	return out
}

type PgToken struct {
	Token        string    `db:"subscription_token"`
	SubscriberID uuid.UUID `db:"subscriber_id"`
}
