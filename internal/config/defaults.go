// ABOUTME: Centralized configuration defaults for daterange
// ABOUTME: Contains shortcut offsets, display layout, and storage permissions

package config

// Shortcut settings
const (
	PresetCount = 4
)

// DefaultPredefinedRanges are Today, Last 7 days, Last 30 days, Next 30 days.
var DefaultPredefinedRanges = []int{0, -7, -30, 30}

// Display settings
const (
	DefaultDateFormat = "02/01/2006"
)

// Logging settings
const (
	DefaultLogLevel = "info"
)

// Storage settings
const (
	DefaultDirPerms = 0755
)
