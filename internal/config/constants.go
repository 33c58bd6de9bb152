package config

import "time"

const (
	DefaultAddress = ":8080"

	// HTTP Server timeouts
	DefaultReadTimeout     = 15 * time.Second
	DefaultWriteTimeout    = 15 * time.Second
	DefaultIdleTimeout     = 60 * time.Second
	DefaultShutdownTimeout = 5 * time.Second

	DefaultCacheTTL = 5 * time.Minute
)
