package kafka

import "time"

type Config struct {
	Brokers   []string
	Topics    []string
	GroupID   string
	StartFrom string // oldest|newest (default newest)
	Version   string
	TLSEn     bool
	SASLUser  string
	SASLPass  string

	CommitInterval time.Duration // offset auto-commit cadence
	RetryBackoff   time.Duration // wait before redelivering after a retryable failure
}

// ---------------------------------------------------------------------------
// defaults
// ---------------------------------------------------------------------------

func applyDefaults(c *Config) {
	if c.GroupID == "" {
		c.GroupID = "dimred"
	}
	if c.StartFrom == "" {
		c.StartFrom = "newest"
	}
	if c.Version == "" {
		c.Version = "2.8.0"
	}
	if c.CommitInterval == 0 {
		c.CommitInterval = 5 * time.Second
	}
	if c.RetryBackoff == 0 {
		c.RetryBackoff = 2 * time.Second
	}
}
