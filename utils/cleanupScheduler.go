package utils

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"dc3/config"

	"github.com/robfig/cron/v3"
)

// artifactMaxAge is how long stray temp artifacts (uploaded rosters,
// half-written archives) are kept before the hourly purge removes them.
const artifactMaxAge = 24 * time.Hour

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[CLEANUP-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// purgeExpiredArtifacts removes aged files from the temp directory.
func purgeExpiredArtifacts() {
	dir := config.AppConfig.TmpDir
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			logScheduler("Error reading temp dir: " + err.Error())
		}
		return
	}

	cutoff := time.Now().Add(-artifactMaxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
				logScheduler("Error removing " + entry.Name() + ": " + err.Error())
				continue
			}
			removed++
		}
	}
	if removed > 0 {
		logScheduler("Removed " + strconv.Itoa(removed) + " expired artifacts")
	}
}

// InitializeCleanupScheduler starts the hourly temp-artifact purge.
func InitializeCleanupScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 * * * *", purgeExpiredArtifacts); err != nil {
		log.Fatalf("Failed to register cleanup job: %v", err)
	}

	c.Start()
	logScheduler("Cleanup scheduler started")
	return c
}
