package usecase

import "time"

// Config carries the tunables the core accepts at construction time. The
// routes layer fills it from the environment.

type Config struct {
	CatalogFreshness    time.Duration
	ExtractionTimeout   time.Duration
	SubmissionTimeout   time.Duration
	DefaultPlaceID      string
	SessionHistoryLimit int
}

func DefaultConfig() Config {
	return Config{
		CatalogFreshness:    300 * time.Second,
		ExtractionTimeout:   30 * time.Second,
		SubmissionTimeout:   60 * time.Second,
		DefaultPlaceID:      "default_place",
		SessionHistoryLimit: 10,
	}
}
