// Package config centralizes the session timing parameters.
package config

import "time"

// Difficulty choices on the start screen.
const (
	DefaultDifficulty = 1
	MaxDifficulty     = 6
)

// Shutdown
const (
	ShutdownDisplay = 10 * time.Second // shutdown message shown before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90 * time.Second
	InactivityDisconnectUser = 120 * time.Second
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Spectator feed
const (
	SpectatorBuffer = 256 // frames buffered per spectator before dropping
)
