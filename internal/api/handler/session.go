package handler

import (
	"context"
	"fmt"
	"net/http"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"

	"go.uber.org/zap"
)

type userIDKey struct{}

// UserIDFrom returns the user the request was authenticated as by the
// session middleware.
func UserIDFrom(ctx context.Context) (domain.UserID, bool) {
	id, ok := ctx.Value(userIDKey{}).(domain.UserID)

	return id, ok
}

// requireSession resolves the session cookie. Anonymous requests are sent to
// the login page.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		cookie, err := r.Cookie(h.opts.SessionCookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)

			return
		}

		userID, err := h.Sessions.Resolve(ctx, cookie.Value)
		if err != nil {
			h.writeError(w, r, fmt.Errorf("could not resolve session: %w", err))

			return
		}
		if userID == nil {
			http.Redirect(w, r, LoginPath, http.StatusSeeOther)

			return
		}

		ctx = context.WithValue(ctx, userIDKey{}, *userID)
		ctx = logger.WithFields(ctx, zap.Stringer("userID", *userID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.opts.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.opts.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
}
