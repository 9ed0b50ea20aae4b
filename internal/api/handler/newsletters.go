package handler

import (
	"net/http"
	"newsletter/internal/auth"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

type publishRequest struct {
	Title   string         `json:"title"   validate:"required"`
	Content publishContent `json:"content"`
}

type publishContent struct {
	HTML string `json:"html" validate:"required"`
	Text string `json:"text" validate:"required"`
}

func (h *Handler) publish(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	credentials, err := auth.BasicAuthentication(r.Header)
	if err != nil {
		h.writeAPIError(w, r, err)

		return
	}
	ctx = logger.WithFields(ctx, zap.String("username", credentials.Username))

	userID, err := h.Auth.Authenticate(ctx, credentials)
	if err != nil {
		h.writeAPIError(w, r.WithContext(ctx), err)

		return
	}
	ctx = logger.WithFields(ctx, zap.Stringer("userID", userID))
	r = r.WithContext(ctx)

	var req publishRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.writeError(w, r, badRequest(err, "could not decode newsletter"))

		return
	}
	if err := h.validate.StructCtx(ctx, req); err != nil {
		h.writeError(w, r, badRequest(err, "invalid newsletter"))

		return
	}

	report, err := h.Publisher.Publish(ctx, domain.Issue{
		Title:    req.Title,
		HTMLBody: req.Content.HTML,
		TextBody: req.Content.Text,
	})
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	render.JSON(w, r, report)
}
