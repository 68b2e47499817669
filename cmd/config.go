package cmd

import "time"

// Config carries all runtime settings for the application. Values are read
// from the environment at startup; the pickup expiry window and courier
// capacity have operational defaults and can be tuned per deployment.
type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// ExpiryWindow is how long a courier may sit on an accepted pickup
	// before the claim is released back to the pool.
	ExpiryWindow time.Duration

	// CourierCapacity caps how many active pickups a courier may hold at
	// once.
	CourierCapacity int
}
