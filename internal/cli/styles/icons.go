package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" //  tag
	IconGitBranch = "" //  git branch
	IconCalendar  = "" //  calendar
	IconGithub    = "" //  github
	IconHeart     = "" //  heart
	IconGo        = "" //  go gopher
	IconArrow     = "" //  arrow right

	IconCheck    = "" // check
	IconX        = "" // x
	IconWarning  = "" // warning
	IconTrash    = "" // trash
	IconFolder   = "" // folder
	IconConfig   = "" // config
	IconDatabase = "" // database

	IconBoard   = "" // columns
	IconPanel   = "" // window
	IconClock   = "" // clock
	IconRestore = "" // rotate-left
	IconPencil  = "" // pencil
)
