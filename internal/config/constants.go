package config

import "time"

// Defaults applied when the environment leaves a value unset
const (
	DefaultPort       = 8080
	DefaultLogDir     = "logs"
	DefaultDBMaxConns = 10
	DefaultDBMaxIdle  = 5 * time.Minute
	DefaultDBMaxLife  = 30 * time.Minute
)
