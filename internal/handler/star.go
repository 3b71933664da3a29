package handler

import (
	"net/http"

	"github.com/starquiz/StarQuiz_Go/internal/domain"
	"github.com/starquiz/StarQuiz_Go/internal/star"
)

// StarHandlers contains HTTP handlers for star totals, tiers and standings
type StarHandlers struct {
	service star.Service
}

// NewStarHandlers creates new star tier handlers
func NewStarHandlers(service star.Service) *StarHandlers {
	return &StarHandlers{service: service}
}

// HandleGetStars returns a player's total, tier and progress to the next tier
// @Summary Get star standing
// @Description Returns cumulative stars, current tier and progress toward the next tier
// @Tags star
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} domain.StarStanding
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /stars [get]
func (h *StarHandlers) HandleGetStars() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		standing, err := h.service.GetStanding(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetStarsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, standing)
	}
}

// MilestonesResponse lists a player's tier crossings
type MilestonesResponse struct {
	PlayerID   string             `json:"player_id"`
	Milestones []domain.Milestone `json:"milestones"`
}

// HandleGetMilestones returns a player's tier crossings, newest first
// @Summary Get milestones
// @Description Returns every tier milestone the player has reached
// @Tags star
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} MilestonesResponse
// @Failure 400 {object} ErrorResponse
// @Router /milestones [get]
func (h *StarHandlers) HandleGetMilestones() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		milestones, err := h.service.GetMilestones(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetMilestonesFailed, err)
			return
		}

		if milestones == nil {
			milestones = []domain.Milestone{}
		}
		respondJSON(w, http.StatusOK, MilestonesResponse{
			PlayerID:   playerID,
			Milestones: milestones,
		})
	}
}

// LeaderboardResponse is the star leaderboard page
type LeaderboardResponse struct {
	Entries []domain.LeaderboardEntry `json:"entries"`
}

// HandleGetLeaderboard returns the top players by star total
// @Summary Get leaderboard
// @Description Returns the top players by cumulative stars; tied totals share a rank
// @Tags star
// @Produce json
// @Param limit query int false "Maximum entries to return"
// @Success 200 {object} LeaderboardResponse
// @Failure 400 {object} ErrorResponse
// @Router /leaderboard [get]
func (h *StarHandlers) HandleGetLeaderboard() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := GetLimitParam(r, w, star.DefaultLeaderboardLimit)
		if !ok {
			return
		}

		entries, err := h.service.Leaderboard(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetLeaderboardFailed, err)
			return
		}

		if entries == nil {
			entries = []domain.LeaderboardEntry{}
		}
		respondJSON(w, http.StatusOK, LeaderboardResponse{Entries: entries})
	}
}

// HandleGetRank returns one player's leaderboard position
// @Summary Get player rank
// @Description Returns the player's rank, total player count and percentile
// @Tags star
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} domain.RankInfo
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /player/rank [get]
func (h *StarHandlers) HandleGetRank() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		rank, err := h.service.GetRank(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgGetRankFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, rank)
	}
}
