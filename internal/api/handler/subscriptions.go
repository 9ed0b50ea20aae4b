package handler

import (
	"net/http"
	"newsletter/internal/subscription"
	"newsletter/pkg/domain"
	"newsletter/pkg/logger"
	"newsletter/pkg/serrors"

	"go.uber.org/zap"
)

func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.writeError(w, r, badRequest(err, "could not parse form"))

		return
	}

	subscriber, err := domain.ParseNewSubscriber(r.PostForm.Get("name"), r.PostForm.Get("email"))
	if err != nil {
		h.writeError(w, r, badRequest(err, "invalid subscriber"))

		return
	}

	if _, err := h.Subscriptions.Subscribe(r.Context(), subscriber); err != nil {
		h.writeError(w, r, err)

		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	token := r.URL.Query().Get(subscription.TokenParam)
	if token == "" {
		h.writeError(w, r, serrors.With(serrors.ErrBadRequest, "missing %s", subscription.TokenParam))

		return
	}

	subscriberID, err := h.Subscriptions.Redeem(ctx, token)
	if err != nil {
		h.writeError(w, r, err)

		return
	}
	if subscriberID == nil {
		h.writeError(w, r, serrors.KindOnly(serrors.ErrTokenNotFound))

		return
	}
	logger.Debug(ctx, "subscription confirmed", zap.Stringer("subscriberID", *subscriberID))

	w.WriteHeader(http.StatusOK)
}
