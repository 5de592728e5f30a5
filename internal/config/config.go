package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	// Server
	Port        string
	CORSOrigins string

	// Notification dispatch
	NotifyQueueSize int
	NotifyWorkers   int
	NotifyDelay     time.Duration

	// Simulated external collaborators
	EmailCheckDelay time.Duration
	BackupDelay     time.Duration

	// Ops
	LogRingSize int
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),

		NotifyQueueSize: parseInt(getEnv("NOTIFY_QUEUE_SIZE", "256"), 256),
		NotifyWorkers:   parseInt(getEnv("NOTIFY_WORKERS", "4"), 4),
		NotifyDelay:     parseDuration(getEnv("NOTIFY_DELAY", "300ms"), 300*time.Millisecond),

		EmailCheckDelay: parseDuration(getEnv("EMAIL_CHECK_DELAY", "500ms"), 500*time.Millisecond),
		BackupDelay:     parseDuration(getEnv("BACKUP_DELAY", "1s"), time.Second),

		LogRingSize: parseInt(getEnv("LOG_RING_SIZE", "200"), 200),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}

func parseInt(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
