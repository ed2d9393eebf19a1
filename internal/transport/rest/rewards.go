package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/learnhub/internal/domain"
	"github.com/heartmarshall/learnhub/internal/i18n"
)

// checkViolation is the database code the redeem function raises when the
// balance or stock does not cover the reward.
const checkViolation = "23514"

type rewardsService interface {
	ListRewards(ctx context.Context) ([]domain.Reward, error)
	Redeem(ctx context.Context, rewardID uuid.UUID) (*domain.Redemption, error)
	ListRedemptions(ctx context.Context, limit int) ([]domain.Redemption, error)
}

// RewardHandler serves the reward catalog and redemptions.
type RewardHandler struct {
	responder
	svc rewardsService
}

// NewRewardHandler creates a RewardHandler.
func NewRewardHandler(logger *slog.Logger, loc *i18n.Localizer, svc rewardsService) *RewardHandler {
	return &RewardHandler{
		responder: responder{log: logger.With("handler", "rewards"), i18n: loc},
		svc:       svc,
	}
}

// Rewards handles GET /rewards.
func (h *RewardHandler) Rewards(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListRewards(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toRewardView))
}

// Redeem handles POST /rewards/{id}/redeem.
func (h *RewardHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	rd, err := h.svc.Redeem(r.Context(), id)
	if err != nil {
		h.fail(w, r, err, explainRedeem)
		return
	}
	writeJSON(w, http.StatusCreated, toRedemptionView(*rd))
}

// Redemptions handles GET /redemptions?limit=n.
func (h *RewardHandler) Redemptions(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit")
	if err != nil {
		h.fail(w, r, err)
		return
	}
	list, err := h.svc.ListRedemptions(r.Context(), limit)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toRedemptionView))
}

func explainRedeem(err error) (string, []any, bool) {
	var repoErr *domain.RepositoryError
	if errors.As(err, &repoErr) && repoErr.Code == checkViolation {
		return i18n.MsgInsufficientPoints, nil, true
	}
	if _, ok := fieldMessage(err, "reward_id"); ok {
		return i18n.MsgInsufficientPoints, nil, true
	}
	return "", nil, false
}
