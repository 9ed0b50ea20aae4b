package handler

import (
	"errors"
	"net/http"
	"newsletter/pkg/logger"
	"newsletter/pkg/serrors"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// publishRealm is announced on 401 responses of the newsletter API.
const publishRealm = `Basic realm="publish"`

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewError maps err to a status code and a client-safe body. The full error
// is logged; server errors at error level, client errors at warn level.
func NewError(r *http.Request, err error) (int, ErrorResponse) {
	ctx := r.Context()
	status := serrors.Status(err)
	if status >= http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))
	} else {
		logger.Warn(ctx, "request rejected", zap.Error(err))
	}

	return status, ErrorResponse{
		Code:    serrors.KindOf(err).Error(),
		Message: serrors.PublicMessage(err),
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := NewError(r, err)
	render.Status(r, status)
	render.JSON(w, r, body)
}

// writeAPIError is writeError for Basic-authenticated endpoints: a 401
// carries the challenge header.
func (h *Handler) writeAPIError(w http.ResponseWriter, r *http.Request, err error) {
	if serrors.Status(err) == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", publishRealm)
	}
	h.writeError(w, r, err)
}

func (h *Handler) rateLimited(w http.ResponseWriter, r *http.Request) {
	h.writeError(w, r, serrors.With(serrors.ErrRateLimited, "too many login attempts"))
}

func badRequest(err error, msg string) error {
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Kind() == serrors.ErrBadRequest {
		return err
	}

	return serrors.Wrap(serrors.ErrBadRequest, err, "%s", msg)
}
