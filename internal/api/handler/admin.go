package handler

import (
	"errors"
	"fmt"
	"net/http"
	"newsletter/internal/auth"
	"newsletter/pkg/serrors"
)

const (
	msgPasswordChanged  = "Your password has been changed."
	msgPasswordMismatch = "You entered two different new passwords - the field values must match."
	msgWrongPassword    = "The current password is incorrect."
)

var msgPasswordLength = fmt.Sprintf("The new password must be between %d and %d characters long.", //nolint: gochecknoglobals
	auth.MinPasswordLength, auth.MaxPasswordLength)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := UserIDFrom(ctx)

	user, err := h.Users.UserByID(ctx, userID)
	if err != nil {
		h.writeError(w, r, fmt.Errorf("could not fetch user: %w", err))

		return
	}
	if user == nil {
		h.writeError(w, r, serrors.With(serrors.ErrUnauthorized, "user %s no longer exists", userID))

		return
	}

	h.render(w, r, dashboardPage, page{Username: user.Username, Flash: h.Flash.Pop(w, r)})
}

func (h *Handler) passwordForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, passwordPage, page{Flash: h.Flash.Pop(w, r)})
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, _ := UserIDFrom(ctx)

	err := h.Auth.ChangePassword(ctx, userID,
		r.PostFormValue("current_password"),
		r.PostFormValue("new_password"),
		r.PostFormValue("new_password_check"))
	switch {
	case err == nil:
		h.flashInfo(w, r, msgPasswordChanged)
	case errors.Is(err, auth.ErrPasswordMismatch):
		h.flashError(w, r, msgPasswordMismatch)
	case errors.Is(err, auth.ErrPasswordLength):
		h.flashError(w, r, msgPasswordLength)
	case errors.Is(err, auth.ErrWrongCurrentPassword):
		h.flashError(w, r, msgWrongPassword)
	default:
		h.writeError(w, r, err)

		return
	}

	http.Redirect(w, r, PasswordPath, http.StatusSeeOther)
}
