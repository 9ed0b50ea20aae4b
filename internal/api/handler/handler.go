// Package handler implements the HTTP boundary: it parses forms, JSON bodies
// and credentials, calls into the domain services and maps their errors to
// status codes. Error bodies only ever carry the error kind and a fixed
// public message.
package handler

import (
	"context"
	"net/http"
	"newsletter/internal/auth"
	"newsletter/internal/flash"
	"newsletter/internal/newsletter"
	"newsletter/internal/subscription"
	"newsletter/pkg/controller"
	"newsletter/pkg/domain"
	"newsletter/pkg/storage"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

const (
	HomePath          = "/"
	LoginPath         = "/login"
	DashboardPath     = "/admin/dashboard"
	PasswordPath      = "/admin/password"
	LogoutPath        = "/admin/logout"
	SubscriptionsPath = "/subscriptions"
	NewslettersPath   = "/newsletters"
)

// Authenticator verifies credentials and changes passwords.
type Authenticator interface {
	Authenticate(ctx context.Context, credentials auth.Credentials) (domain.UserID, error)
	ChangePassword(ctx context.Context,
		userID domain.UserID,
		currentPassword string,
		newPassword string,
		newPasswordCheck string) error
}

// SessionStore maps opaque session ids to users.
type SessionStore interface {
	Establish(ctx context.Context, userID domain.UserID) (string, error)
	Resolve(ctx context.Context, id string) (*domain.UserID, error)
	Revoke(ctx context.Context, id string) error
}

// Subscriptions signs up subscribers and redeems their confirmation tokens.
type Subscriptions interface {
	Subscribe(ctx context.Context, subscriber domain.NewSubscriber) (*domain.Subscriber, error)
	Redeem(ctx context.Context, token string) (*domain.SubscriberID, error)
}

// Publisher sends a newsletter issue to every confirmed subscriber.
type Publisher interface {
	Publish(ctx context.Context, issue domain.Issue) (*newsletter.Report, error)
}

var (
	_ Authenticator = (*auth.Authenticator)(nil)
	_ Subscriptions = (*subscription.Service)(nil)
	_ Publisher     = (*newsletter.Dispatcher)(nil)
)

// Deps are the services the handlers call into.
type Deps struct {
	Auth          Authenticator
	Sessions      SessionStore
	Subscriptions Subscriptions
	Publisher     Publisher
	Users         storage.UserStorage
	Flash         *flash.Flasher
}

// Options tunes cookies and throttling.
type Options struct {
	// SessionCookieName is the cookie carrying the session id.
	SessionCookieName string
	// SecureCookies marks the session cookie as HTTPS only.
	SecureCookies bool
	// LoginLimiter throttles POST /login per remote address. Nil disables throttling.
	LoginLimiter *controller.IPRateLimiter
}

// Handler serves the pages and API endpoints. Mount it with Routes.
type Handler struct {
	Deps

	opts     Options
	validate *validator.Validate
}

// New returns a Handler over deps.
func New(deps Deps, opts Options) *Handler {
	return &Handler{
		Deps:     deps,
		opts:     opts,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes returns the router serving every page and API endpoint.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get(HomePath, h.home)
	r.Get(LoginPath, h.loginForm)
	login := http.Handler(http.HandlerFunc(h.login))
	if h.opts.LoginLimiter != nil {
		login = controller.WithRateLimit(h.opts.LoginLimiter, h.rateLimited)(login)
	}
	r.Method(http.MethodPost, LoginPath, login)

	r.Post(SubscriptionsPath, h.subscribe)
	r.Get(subscription.ConfirmPath, h.confirm)
	r.Post(NewslettersPath, h.publish)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get(DashboardPath, h.dashboard)
		r.Get(PasswordPath, h.passwordForm)
		r.Post(PasswordPath, h.changePassword)
		r.Post(LogoutPath, h.logout)
	})

	return r
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, homePage, page{})
}
