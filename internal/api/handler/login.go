package handler

import (
	"errors"
	"fmt"
	"net/http"
	"newsletter/internal/auth"
	"newsletter/pkg/logger"
	"newsletter/pkg/serrors"

	"go.uber.org/zap"
)

const (
	msgAuthenticationFailed = "Authentication failed"
	msgLoggedOut            = "You have successfully logged out."
)

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, loginPage, page{Flash: h.Flash.Pop(w, r)})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	credentials := auth.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	ctx = logger.WithFields(ctx, zap.String("username", credentials.Username))

	userID, err := h.Auth.Authenticate(ctx, credentials)
	if err != nil {
		if errors.Is(err, serrors.ErrInvalidCredentials) {
			logger.Warn(ctx, "login failed", zap.Error(err))
		} else {
			logger.Error(ctx, "login failed unexpectedly", zap.Error(err))
		}
		h.flashError(w, r, msgAuthenticationFailed)
		http.Redirect(w, r, LoginPath, http.StatusSeeOther)

		return
	}

	// a fresh id on every login, the previous one is dropped
	if previous, err := r.Cookie(h.opts.SessionCookieName); err == nil && previous.Value != "" {
		if err := h.Sessions.Revoke(ctx, previous.Value); err != nil {
			logger.Warn(ctx, "could not revoke previous session", zap.Error(err))
		}
	}

	sessionID, err := h.Sessions.Establish(ctx, userID)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("could not establish session: %w", err))

		return
	}
	h.setSessionCookie(w, sessionID)
	logger.Info(ctx, "user logged in", zap.Stringer("userID", userID))

	http.Redirect(w, r, DashboardPath, http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cookie, err := r.Cookie(h.opts.SessionCookieName); err == nil {
		if err := h.Sessions.Revoke(ctx, cookie.Value); err != nil {
			h.writeError(w, r, fmt.Errorf("could not revoke session: %w", err))

			return
		}
	}
	h.clearSessionCookie(w)
	h.flashInfo(w, r, msgLoggedOut)

	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}

func (h *Handler) flashError(w http.ResponseWriter, r *http.Request, text string) {
	if err := h.Flash.Error(w, text); err != nil {
		logger.Warn(r.Context(), "could not set flash message", zap.Error(err))
	}
}

func (h *Handler) flashInfo(w http.ResponseWriter, r *http.Request, text string) {
	if err := h.Flash.Info(w, text); err != nil {
		logger.Warn(r.Context(), "could not set flash message", zap.Error(err))
	}
}
