// Package config centralizes all tunable game parameters.
package config

import "time"

// Cell size - each terminal cell covers this many logical pixels.
// Glyphs advance 25px, so one letter occupies one column.
const (
	CellWidth  = 25
	CellHeight = 25
)

// Max render area in terminal cells. Larger terminals get a centered,
// bordered play field.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 48
)

// Layout
const (
	TopOffset = 70 // Pixels reserved at the top for the score and input box
)

// Frame pacing
const (
	TargetFPS       = 60
	DefaultTickRate = 60 // Update calls per second issued by the terminal driver
)

// TickInterval returns the driver's sleep target for a tick rate.
func TickInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Player
const (
	MaxUsernameLength = 16 // Maximum display length for player usernames
)
