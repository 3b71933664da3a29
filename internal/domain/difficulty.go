package domain

import "strings"

// Difficulty partitions badge progress. Every player carries one progress
// record per difficulty.
type Difficulty string

const (
	DifficultyEasy      Difficulty = "easy"
	DifficultyAverage   Difficulty = "average"
	DifficultyDifficult Difficulty = "difficult"
)

// Difficulties lists all difficulties in display order.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyAverage, DifficultyDifficult}

// ParseDifficulty normalizes and validates a difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyAverage:
		return DifficultyAverage, nil
	case DifficultyDifficult:
		return DifficultyDifficult, nil
	}
	return "", ErrInvalidDifficulty
}

// IsValid reports whether d is one of the three known difficulties.
func (d Difficulty) IsValid() bool {
	_, err := ParseDifficulty(string(d))
	return err == nil
}
