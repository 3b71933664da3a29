package handler

import (
	"net/http"
	"time"

	"github.com/starquiz/StarQuiz_Go/internal/audit"
	"github.com/starquiz/StarQuiz_Go/internal/domain"
	"github.com/starquiz/StarQuiz_Go/internal/logger"
	"github.com/starquiz/StarQuiz_Go/internal/reward"
)

// AdminHandlers contains HTTP handlers for the administrative surface
type AdminHandlers struct {
	rewards reward.Service
	audits  audit.Service
}

// NewAdminHandlers creates new admin handlers
func NewAdminHandlers(rewards reward.Service, audits audit.Service) *AdminHandlers {
	return &AdminHandlers{rewards: rewards, audits: audits}
}

// AwardRewardsRequest is the admin confirmation for a player/difficulty
type AwardRewardsRequest struct {
	PlayerID   string `json:"player_id" validate:"required,max=64"`
	Difficulty string `json:"difficulty" validate:"required,difficulty"`
	AdminID    string `json:"admin_id" validate:"required,max=64"`
	AdminName  string `json:"admin_name" validate:"max=100"`
}

// HandleAwardRewards commits the official badge award
// @Summary Award rewards
// @Description Claims every pending reward for a player/difficulty, commits the official badge count and resets the cycle counter
// @Tags admin
// @Accept json
// @Produce json
// @Param request body AwardRewardsRequest true "Award request"
// @Success 200 {object} domain.AwardResult
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/rewards/award [post]
// @Security AdminKeyAuth
func (h *AdminHandlers) HandleAwardRewards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AwardRewardsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Award rewards"); err != nil {
			return
		}

		difficulty, err := domain.ParseDifficulty(req.Difficulty)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDifficulty)
			return
		}

		admin := domain.Admin{ID: req.AdminID, Name: req.AdminName}
		result, err := h.rewards.AwardByDifficulty(r.Context(), req.PlayerID, difficulty, admin)
		if err != nil {
			respondServiceError(w, r, ErrMsgAwardRewardsFailed, err)
			return
		}

		log.Info("Rewards awarded", "player_id", req.PlayerID, "difficulty", difficulty, "count", result.RewardsAwarded, "admin_id", admin.ID)
		respondJSON(w, http.StatusOK, result)
	}
}

// AuditListResponse is a page of audit entries
type AuditListResponse struct {
	Entries []domain.AuditEntry `json:"entries"`
}

// HandleGetAudit reads the audit trail
// @Summary List audit entries
// @Description Returns audit entries newest first, optionally filtered by actor, action, target or time range
// @Tags admin
// @Produce json
// @Param actor_id query string false "Filter by actor"
// @Param action query string false "Filter by action"
// @Param target_type query string false "Filter by target type"
// @Param target_id query string false "Filter by target"
// @Param since query string false "RFC3339 lower bound"
// @Param until query string false "RFC3339 upper bound"
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} AuditListResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/audit [get]
// @Security AdminKeyAuth
func (h *AdminHandlers) HandleGetAudit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := domain.AuditFilter{}

		if v := GetOptionalQueryParam(r, "actor_id", ""); v != "" {
			filter.ActorID = &v
		}
		if v := GetOptionalQueryParam(r, "action", ""); v != "" {
			filter.Action = &v
		}
		if v := GetOptionalQueryParam(r, "target_type", ""); v != "" {
			filter.TargetType = &v
		}
		if v := GetOptionalQueryParam(r, "target_id", ""); v != "" {
			filter.TargetID = &v
		}
		if v := GetOptionalQueryParam(r, "since", ""); v != "" {
			since, err := time.Parse(time.RFC3339, v)
			if err != nil {
				respondError(w, http.StatusBadRequest, "Invalid since parameter, expected RFC3339")
				return
			}
			filter.Since = &since
		}
		if v := GetOptionalQueryParam(r, "until", ""); v != "" {
			until, err := time.Parse(time.RFC3339, v)
			if err != nil {
				respondError(w, http.StatusBadRequest, "Invalid until parameter, expected RFC3339")
				return
			}
			filter.Until = &until
		}

		limit, ok := GetLimitParam(r, w, 0)
		if !ok {
			return
		}
		filter.Limit = limit

		entries, err := h.audits.List(r.Context(), filter)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetAuditFailed, err)
			return
		}

		if entries == nil {
			entries = []domain.AuditEntry{}
		}
		respondJSON(w, http.StatusOK, AuditListResponse{Entries: entries})
	}
}
