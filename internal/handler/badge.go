package handler

import (
	"net/http"

	"github.com/starquiz/StarQuiz_Go/internal/badge"
	"github.com/starquiz/StarQuiz_Go/internal/logger"
)

// BadgeHandlers contains HTTP handlers for badge progress reads
type BadgeHandlers struct {
	service badge.Service
}

// NewBadgeHandlers creates new badge progress handlers
func NewBadgeHandlers(service badge.Service) *BadgeHandlers {
	return &BadgeHandlers{service: service}
}

// HandleGetPlayerSummary returns per-difficulty progress for one player
// @Summary Get player summary
// @Description Returns cycle progress, official badge count and requested count for every difficulty
// @Tags badge
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} domain.PlayerSummary
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /player/summary [get]
func (h *BadgeHandlers) HandleGetPlayerSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		summary, err := h.service.GetSummary(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetSummaryFailed, err)
			return
		}

		log.Debug("Player summary retrieved", "player_id", playerID)
		respondJSON(w, http.StatusOK, summary)
	}
}
