package slideshow

// Mode is the slideshow state.
type Mode int

const (
	ModeIdle Mode = iota
	ModeLoading
	ModePlaying
	ModePaused
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "Idle"
	case ModeLoading:
		return "Loading"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}

// IsDisplaying returns true if an item is on screen (playing or paused).
func (m Mode) IsDisplaying() bool {
	return m == ModePlaying || m == ModePaused
}
