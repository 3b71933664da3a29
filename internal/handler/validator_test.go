package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starquiz/StarQuiz_Go/internal/domain"
)

// Test boundaries
const (
	MaxPlayerIDLength = 64
	MinStars          = 1
)

type TestStruct struct {
	PlayerID    string `validate:"required,max=64,excludesall=\x00\n\r\t"`
	Difficulty  string `validate:"difficulty"`
	StarsEarned int    `validate:"min=1"`
}

func TestValidator_DifficultyValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name       string
		difficulty string
		wantErr    bool
	}{
		// Best case
		{"valid easy", string(domain.DifficultyEasy), false},
		{"valid average", "average", false},
		{"valid difficult", string(domain.DifficultyDifficult), false},

		// Boundary - empty allowed (not required)
		{"empty difficulty allowed", "", false},

		// Edge - case insensitive
		{"uppercase difficulty", "EASY", false},
		{"mixed case", "Average", false},

		// Invalid case
		{"unknown difficulty", "legendary", true},
		{"typo", "averge", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TestStruct{
				PlayerID:    "player-1",
				Difficulty:  tt.difficulty,
				StarsEarned: 5,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_PlayerIDValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name     string
		playerID string
		wantErr  bool
	}{
		// Best case
		{"valid player id", "player-1", false},
		{"alphanumeric", "player123", false},
		{"with underscore", "player_one", false},

		// Boundary case
		{"one char (just inside)", "a", false},
		{"exactly max length", strings.Repeat("a", MaxPlayerIDLength), false},
		{"over max length", strings.Repeat("a", MaxPlayerIDLength+1), true},

		// Invalid case
		{"empty player id", "", true},
		{"with newline", "player\nid", true},
		{"with tab", "player\tid", true},
		{"with null byte", "player\x00id", true},
		{"with carriage return", "player\rid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TestStruct{
				PlayerID:    tt.playerID,
				Difficulty:  string(domain.DifficultyEasy),
				StarsEarned: 5,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidator_StarsValidation(t *testing.T) {
	InitValidator()
	v := GetValidator()

	tests := []struct {
		name    string
		stars   int
		wantErr bool
	}{
		// Best case
		{"valid stars", 10, false},
		{"large award", 5000, false},

		// Boundary case
		{"negative (beyond lower)", -1, true},
		{"zero (on lower boundary)", 0, true},
		{"one (at min)", MinStars, false},

		// Worst case - extreme
		{"very negative", -999999, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := TestStruct{
				PlayerID:    "player-1",
				Difficulty:  string(domain.DifficultyEasy),
				StarsEarned: tt.stars,
			}

			err := v.ValidateStruct(input)

			if tt.wantErr {
				assert.Error(t, err, "Expected validation error for stars=%d", tt.stars)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_MultipleFieldErrors(t *testing.T) {
	InitValidator()
	v := GetValidator()

	t.Run("all fields invalid", func(t *testing.T) {
		input := TestStruct{
			PlayerID:    "",
			Difficulty:  "legendary",
			StarsEarned: 0,
		}

		err := v.ValidateStruct(input)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "PlayerID")
		assert.Contains(t, err.Error(), "Difficulty")
		assert.Contains(t, err.Error(), "StarsEarned")
	})
}

func TestValidateDifficulty(t *testing.T) {
	assert.NoError(t, ValidateDifficulty("easy"))
	assert.NoError(t, ValidateDifficulty(" DIFFICULT "))
	assert.Error(t, ValidateDifficulty("nope"))
	assert.Error(t, ValidateDifficulty(""))
}
