package handler

import (
	"net/http"

	"github.com/starquiz/StarQuiz_Go/internal/badge"
	"github.com/starquiz/StarQuiz_Go/internal/domain"
	"github.com/starquiz/StarQuiz_Go/internal/logger"
	"github.com/starquiz/StarQuiz_Go/internal/star"
)

// GameHandlers contains HTTP handlers for game-completion ingestion
type GameHandlers struct {
	badges badge.Service
	stars  star.Service
}

// NewGameHandlers creates new game ingestion handlers
func NewGameHandlers(badges badge.Service, stars star.Service) *GameHandlers {
	return &GameHandlers{badges: badges, stars: stars}
}

// GameCompletedRequest represents one qualifying game completion
type GameCompletedRequest struct {
	PlayerID    string `json:"player_id" validate:"required,max=64"`
	Username    string `json:"username" validate:"max=100"`
	Difficulty  string `json:"difficulty" validate:"required,difficulty"`
	StarsEarned int    `json:"stars_earned" validate:"required,min=1"`
}

// GameCompletedResponse reports both progression effects of a completion
type GameCompletedResponse struct {
	PlayerID string                  `json:"player_id"`
	Progress domain.CycleProgress    `json:"progress"`
	Reward   *domain.Reward          `json:"reward,omitempty"`
	Stars    *domain.StarAwardResult `json:"stars"`
}

// HandleGameCompleted records one game completion: badge progress advances
// and stars accrue, each through its own service
// @Summary Record game completion
// @Description Advances badge cycle progress and awards stars for one completed game
// @Tags game
// @Accept json
// @Produce json
// @Param request body GameCompletedRequest true "Game completion"
// @Success 201 {object} GameCompletedResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /game/completed [post]
func (h *GameHandlers) HandleGameCompleted() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req GameCompletedRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Game completed"); err != nil {
			return
		}

		LogRequestFields(log, "player_id", req.PlayerID, "difficulty", req.Difficulty, "stars_earned", req.StarsEarned)

		difficulty, err := domain.ParseDifficulty(req.Difficulty)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidDifficulty)
			return
		}

		if err := h.stars.RegisterPlayer(r.Context(), req.PlayerID, req.Username); err != nil {
			respondServiceError(w, r, ErrMsgRecordGameFailed, err)
			return
		}

		progress, reward, err := h.badges.RecordEarned(r.Context(), req.PlayerID, difficulty)
		if err != nil {
			respondServiceError(w, r, ErrMsgRecordGameFailed, err)
			return
		}

		starResult, err := h.stars.AwardStars(r.Context(), req.PlayerID, req.StarsEarned)
		if err != nil {
			respondServiceError(w, r, ErrMsgRecordGameFailed, err)
			return
		}

		log.Info("Game completion recorded", "player_id", req.PlayerID, "difficulty", difficulty, "reward_minted", reward != nil)
		respondJSON(w, http.StatusCreated, GameCompletedResponse{
			PlayerID: req.PlayerID,
			Progress: progress,
			Reward:   reward,
			Stars:    starResult,
		})
	}
}
