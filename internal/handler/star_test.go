package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/starquiz/StarQuiz_Go/internal/domain"
)

func TestHandleGetStars(t *testing.T) {
	t.Run("returns standing with tier and progress", func(t *testing.T) {
		svc := &MockStarService{}
		svc.On("GetStanding", mock.Anything, "player-1").Return(&domain.StarStanding{
			PlayerID:   "player-1",
			TotalStars: 75,
			Tier:       domain.Tier{Key: "bronze", Name: "Bronze", Threshold: 50},
			NextTier:   &domain.Tier{Key: "silver", Name: "Silver", Threshold: 100},
			Progress:   &domain.TierProgress{Current: 25, Required: 50, Remaining: 25, Percentage: 50},
		}, nil)

		req := httptest.NewRequest("GET", "/stars?player_id=player-1", nil)
		w := httptest.NewRecorder()

		NewStarHandlers(svc).HandleGetStars().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_stars":75`)
		assert.Contains(t, w.Body.String(), `"key":"bronze"`)
		svc.AssertExpectations(t)
	})

	t.Run("maps unknown player to not found", func(t *testing.T) {
		svc := &MockStarService{}
		svc.On("GetStanding", mock.Anything, "ghost").Return(nil, domain.ErrStarAccountNotFound)

		req := httptest.NewRequest("GET", "/stars?player_id=ghost", nil)
		w := httptest.NewRecorder()

		NewStarHandlers(svc).HandleGetStars().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), domain.ErrMsgStarAccountNotFound)
	})

	t.Run("requires player_id", func(t *testing.T) {
		svc := &MockStarService{}

		req := httptest.NewRequest("GET", "/stars", nil)
		w := httptest.NewRecorder()

		NewStarHandlers(svc).HandleGetStars().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GetStanding")
	})
}

func TestHandleGetMilestones(t *testing.T) {
	t.Run("returns milestones", func(t *testing.T) {
		svc := &MockStarService{}
		svc.On("GetMilestones", mock.Anything, "player-1").Return([]domain.Milestone{
			{ID: 2, PlayerID: "player-1", TierKey: "silver", StarsAtAchievement: 110, AchievedAt: time.Now()},
			{ID: 1, PlayerID: "player-1", TierKey: "bronze", StarsAtAchievement: 55, AchievedAt: time.Now().Add(-time.Hour)},
		}, nil)

		req := httptest.NewRequest("GET", "/milestones?player_id=player-1", nil)
		w := httptest.NewRecorder()

		NewStarHandlers(svc).HandleGetMilestones().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"tier":"silver"`)
		assert.Contains(t, w.Body.String(), `"tier":"bronze"`)
	})

	t.Run("returns empty list instead of null", func(t *testing.T) {
		svc := &MockStarService{}
		svc.On("GetMilestones", mock.Anything, "player-1").Return(nil, nil)

		req := httptest.NewRequest("GET", "/milestones?player_id=player-1", nil)
		w := httptest.NewRecorder()

		NewStarHandlers(svc).HandleGetMilestones().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"milestones":[]`)
	})
}

func TestHandleGetLeaderboard(t *testing.T) {
	t.Run("returns entries using default limit", func(t *testing.T) {
		svc := &MockStarService{}
		svc.On("Leaderboard", mock.Anything, 10).Return([]domain.LeaderboardEntry{
			{Rank: 1, PlayerID: "player-1", Username: "quizfan", TotalStars: 500, TierKey: "platinum"},
			{Rank: 2, PlayerID: "player-2", Username: "runnerup", TotalStars: 120, TierKey: "silver"},
		}, nil)

		req := httptest.NewRequest("GET", "/leaderboard", nil)
		w := httptest.NewRecorder()

		NewStarHandlers(svc).HandleGetLeaderboard().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"rank":1`)
		svc.AssertExpectations(t)
	})

	t.Run("passes explicit limit through", func(t *testing.T) {
		svc := &MockStarService{}
		svc.On("Leaderboard", mock.Anything, 3).Return([]domain.LeaderboardEntry{}, nil)

		req := httptest.NewRequest("GET", "/leaderboard?limit=3", nil)
		w := httptest.NewRecorder()

		NewStarHandlers(svc).HandleGetLeaderboard().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("rejects malformed limit", func(t *testing.T) {
		svc := &MockStarService{}

		req := httptest.NewRequest("GET", "/leaderboard?limit=abc", nil)
		w := httptest.NewRecorder()

		NewStarHandlers(svc).HandleGetLeaderboard().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Leaderboard")
	})

	t.Run("rejects negative limit", func(t *testing.T) {
		svc := &MockStarService{}

		req := httptest.NewRequest("GET", "/leaderboard?limit=-5", nil)
		w := httptest.NewRecorder()

		NewStarHandlers(svc).HandleGetLeaderboard().ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Leaderboard")
	})
}

func TestHandleGetRank(t *testing.T) {
	t.Run("returns rank and percentile", func(t *testing.T) {
		svc := &MockStarService{}
		svc.On("GetRank", mock.Anything, "player-2").Return(&domain.RankInfo{
			PlayerID:   "player-2",
			Rank:       2,
			TotalStars: 120,
			Players:    4,
			Percentile: 75,
		}, nil)

		req := httptest.NewRequest("GET", "/player/rank?player_id=player-2", nil)
		w := httptest.NewRecorder()

		NewStarHandlers(svc).HandleGetRank().ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"rank":2`)
		svc.AssertExpectations(t)
	})

	t.Run("maps unknown player to not found", func(t *testing.T) {
		svc := &MockStarService{}
		svc.On("GetRank", mock.Anything, "ghost").Return(nil, domain.ErrStarAccountNotFound)

		req := httptest.NewRequest("GET", "/player/rank?player_id=ghost", nil)
		w := httptest.NewRecorder()

		NewStarHandlers(svc).HandleGetRank().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
