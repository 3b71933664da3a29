package main

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Defaults match internal/config: the dev compose file runs the progression
// database under the "db" service with these credentials.
const (
	dbServiceName   = "db"
	defaultDBUser   = "postgres"
	defaultDBName   = "starquiz"
	dbReadyAttempts = 30
	dbReadyInterval = 1 * time.Second
	dbStartupSettle = 3 * time.Second
)

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Check that the progression database is running and ready"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Checking progression database status...")

	if err := runCommand("docker", "compose", "version"); err != nil {
		return fmt.Errorf("docker compose not found. Please install Docker Compose")
	}

	if c.serviceRunning() {
		PrintSuccess("Database is already running")
		PrintSuccess("Database check complete")
		return nil
	}

	PrintInfo("Starting database...")
	if err := runCommandVerbose("docker", "compose", "up", "-d", dbServiceName); err != nil {
		return fmt.Errorf("error starting database: %v", err)
	}

	PrintInfo("Waiting for database to be ready...")
	time.Sleep(dbStartupSettle)

	if err := c.waitReady(); err != nil {
		return err
	}

	PrintSuccess("Database check complete")
	return nil
}

func (c *CheckDBCommand) serviceRunning() bool {
	out, err := getCommandOutput("docker", "compose", "ps", dbServiceName)
	if err != nil {
		return false
	}
	status := strings.ToLower(out)
	return strings.Contains(status, "up") || strings.Contains(status, "running")
}

func (c *CheckDBCommand) waitReady() error {
	dbUser := os.Getenv("DB_USER")
	if dbUser == "" {
		dbUser = defaultDBUser
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = defaultDBName
	}

	for attempt := 1; attempt <= dbReadyAttempts; attempt++ {
		err := runCommand("docker", "compose", "exec", "-T", dbServiceName,
			"pg_isready", "-U", dbUser, "-d", dbName)
		if err == nil {
			PrintSuccess("Database is ready")
			return nil
		}

		fmt.Printf("Waiting for database... (%d/%d)\n", attempt, dbReadyAttempts)
		time.Sleep(dbReadyInterval)
	}

	PrintError("Database failed to start after %d seconds", dbReadyAttempts)
	_ = runCommandVerbose("docker", "compose", "logs", dbServiceName)
	return fmt.Errorf("database failed to start")
}
