package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default configuration values
const (
	DefaultSlotDurationMinutes = 5
	DefaultTokenTTLMinutes     = 720
	TrendDays                  = 7
)

// Business validation constants
const (
	MaxNameLength     = 100
	MaxUsernameLength = 50
	MinPasswordLength = 4
)
