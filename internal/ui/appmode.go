package ui

// AppMode represents the top-level application mode.
type AppMode int

const (
	ModeDashboard AppMode = iota
	ModeStudio
)

func (m AppMode) String() string {
	switch m {
	case ModeDashboard:
		return "Dashboard"
	case ModeStudio:
		return "Studio"
	default:
		return "Unknown"
	}
}
