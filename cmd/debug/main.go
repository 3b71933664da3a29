package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/starquiz/StarQuiz_Go/internal/database"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default/environment variables")
	}

	// Construct connection string
	connString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_NAME"),
	)

	dbPool, err := database.NewPool(connString, 5, 5*time.Minute, 30*time.Minute)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	ctx := context.Background()

	// Dump Players
	fmt.Println("--- Players ---")
	rows, err := dbPool.Query(ctx, "SELECT player_id, username, created_at FROM players")
	if err != nil {
		log.Printf("Failed to query players: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id, username string
			var createdAt time.Time
			if err := rows.Scan(&id, &username, &createdAt); err != nil {
				log.Printf("Failed to scan player: %v", err)
			}
			fmt.Printf("ID: %s, Username: %s, CreatedAt: %v\n", id, username, createdAt)
		}
	}

	// Dump Badge Progress
	fmt.Println("\n--- Badge Progress ---")
	rows, err = dbPool.Query(ctx, "SELECT player_id, difficulty, lifetime_earned_count, official_badge_count FROM badge_progress ORDER BY player_id, difficulty")
	if err != nil {
		log.Printf("Failed to query badge progress: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id, difficulty string
			var lifetime, official int
			if err := rows.Scan(&id, &difficulty, &lifetime, &official); err != nil {
				log.Printf("Failed to scan badge progress: %v", err)
			}
			fmt.Printf("Player: %s, Difficulty: %s, Lifetime: %d, Official: %d\n", id, difficulty, lifetime, official)
		}
	}

	// Dump Rewards
	fmt.Println("\n--- Rewards ---")
	query := `
		SELECT r.reward_id, p.username, r.difficulty, r.badge_number, r.state
		FROM rewards r
		JOIN players p ON r.player_id = p.player_id
		ORDER BY r.earned_date
	`
	rows, err = dbPool.Query(ctx, query)
	if err != nil {
		log.Printf("Failed to query rewards: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var rewardID, username, difficulty, state string
			var badgeNumber int
			if err := rows.Scan(&rewardID, &username, &difficulty, &badgeNumber, &state); err != nil {
				log.Printf("Failed to scan reward: %v", err)
			}
			fmt.Printf("RewardID: %s, Player: %s, Difficulty: %s, Badge#: %d, State: %s\n", rewardID, username, difficulty, badgeNumber, state)
		}
	}

	// Dump Star Accounts
	fmt.Println("\n--- Star Accounts ---")
	rows, err = dbPool.Query(ctx, "SELECT player_id, total_stars FROM star_accounts ORDER BY total_stars DESC")
	if err != nil {
		log.Printf("Failed to query star accounts: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id string
			var total int
			if err := rows.Scan(&id, &total); err != nil {
				log.Printf("Failed to scan star account: %v", err)
			}
			fmt.Printf("Player: %s, TotalStars: %d\n", id, total)
		}
	}

	// Dump Milestones
	fmt.Println("\n--- Milestones ---")
	rows, err = dbPool.Query(ctx, "SELECT player_id, tier_key, stars_at_achievement, achieved_at FROM milestones ORDER BY achieved_at")
	if err != nil {
		log.Printf("Failed to query milestones: %v", err)
	} else {
		defer rows.Close()
		for rows.Next() {
			var id, tier string
			var stars int
			var achievedAt time.Time
			if err := rows.Scan(&id, &tier, &stars, &achievedAt); err != nil {
				log.Printf("Failed to scan milestone: %v", err)
			}
			fmt.Printf("Player: %s, Tier: %s, Stars: %d, AchievedAt: %v\n", id, tier, stars, achievedAt)
		}
	}
}
