package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconSearch   = "🔍"
)

// Text fragments
const (
	CountBadgeFormat = "x%d"
	DashPlaceholder  = "—"
)

// Layout sizing (build rows)
const (
	StatsLabelWidth float32 = 90
	RowMinHeight    float32 = 56
	ItemPadding     float32 = 4
	BadgeTextSize   float32 = 10
)
