package handler

import (
	"net/http"

	"github.com/starquiz/StarQuiz_Go/internal/domain"
	"github.com/starquiz/StarQuiz_Go/internal/logger"
	"github.com/starquiz/StarQuiz_Go/internal/reward"
)

// RewardHandlers contains HTTP handlers for the reward lifecycle
type RewardHandlers struct {
	service reward.Service
}

// NewRewardHandlers creates new reward lifecycle handlers
func NewRewardHandlers(service reward.Service) *RewardHandlers {
	return &RewardHandlers{service: service}
}

// RequestRewardRequest asks for one reward to transition to requested
type RequestRewardRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	RewardID string `json:"reward_id" validate:"required,uuid"`
}

// RequestAllRequest asks for every unclaimed reward at one difficulty
type RequestAllRequest struct {
	PlayerID   string `json:"player_id" validate:"required,max=64"`
	Difficulty string `json:"difficulty" validate:"required,difficulty"`
}

// HandleRequestReward transitions one reward from unclaimed to requested
// @Summary Request a reward
// @Description Marks one unclaimed reward as requested, gated on the badge cycle being complete
// @Tags reward
// @Accept json
// @Produce json
// @Param request body RequestRewardRequest true "Reward request"
// @Success 200 {object} domain.Reward
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /rewards/request [post]
func (h *RewardHandlers) HandleRequestReward() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RequestRewardRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Request reward"); err != nil {
			return
		}

		updated, err := h.service.Request(r.Context(), req.PlayerID, req.RewardID)
		if err != nil {
			respondServiceError(w, r, ErrMsgRequestRewardFailed, err)
			return
		}

		log.Info("Reward requested", "player_id", req.PlayerID, "reward_id", req.RewardID)
		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleRequestAll transitions every unclaimed reward at one difficulty
// @Summary Request all unclaimed rewards
// @Description Marks every unclaimed reward for a player/difficulty as requested
// @Tags reward
// @Accept json
// @Produce json
// @Param request body RequestAllRequest true "Bulk request"
// @Success 200 {object} domain.RequestResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /rewards/request-all [post]
func (h *RewardHandlers) HandleRequestAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req RequestAllRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Request all rewards"); err != nil {
			return
		}

		difficulty, err := domain.ParseDifficulty(req.Difficulty)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDifficulty)
			return
		}

		result, err := h.service.RequestAllByDifficulty(r.Context(), req.PlayerID, difficulty)
		if err != nil {
			respondServiceError(w, r, ErrMsgRequestAllFailed, err)
			return
		}

		log.Info("Rewards bulk requested", "player_id", req.PlayerID, "difficulty", difficulty, "count", result.RewardsTransition)
		respondJSON(w, http.StatusOK, result)
	}
}

// RewardListResponse groups a player's rewards by difficulty
type RewardListResponse struct {
	PlayerID string                               `json:"player_id"`
	Rewards  map[domain.Difficulty][]domain.Reward `json:"rewards"`
}

// HandleListRewards returns all of a player's rewards grouped by difficulty
// @Summary List rewards
// @Description Returns every reward a player has earned, grouped by difficulty
// @Tags reward
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} RewardListResponse
// @Failure 400 {object} ErrorResponse
// @Router /rewards [get]
func (h *RewardHandlers) HandleListRewards() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		grouped, err := h.service.ListByPlayer(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgListRewardsFailed, err)
			return
		}

		respondJSON(w, http.StatusOK, RewardListResponse{
			PlayerID: playerID,
			Rewards:  grouped,
		})
	}
}

// UnclaimedRewardsResponse lists a player's unclaimed rewards
type UnclaimedRewardsResponse struct {
	PlayerID string          `json:"player_id"`
	Rewards  []domain.Reward `json:"rewards"`
}

// HandleListUnclaimed returns a player's unclaimed rewards
// @Summary List unclaimed rewards
// @Description Returns the rewards still waiting to be requested or awarded
// @Tags reward
// @Produce json
// @Param player_id query string true "Player ID"
// @Success 200 {object} UnclaimedRewardsResponse
// @Failure 400 {object} ErrorResponse
// @Router /rewards/unclaimed [get]
func (h *RewardHandlers) HandleListUnclaimed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		rewards, err := h.service.ListUnclaimed(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, ErrMsgListRewardsFailed, err)
			return
		}

		if rewards == nil {
			rewards = []domain.Reward{}
		}
		respondJSON(w, http.StatusOK, UnclaimedRewardsResponse{
			PlayerID: playerID,
			Rewards:  rewards,
		})
	}
}
