// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGo        = "" //  go gopher
	IconGithub    = "" //  github
	IconHeart     = "" //  heart

	IconConfig  = "" // config
	IconCheck   = "" // check
	IconX       = "" // x
	IconWarning = "" // warning
	IconClock   = "" // clock
	IconPlay    = "" // play (active)
	IconStop    = "" // stop (idle)
)
