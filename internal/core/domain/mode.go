package domain

// Mode selects where flags come from. It is decided once when the resolver is built.
type Mode uint8

const (
	// ModeStatic resolves every file to the static flag list of the configuration.
	ModeStatic Mode = iota
	// ModeDatabase resolves files through a compilation database.
	ModeDatabase
)

// String returns the lowercase name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeStatic:
		return "static"
	case ModeDatabase:
		return "database"
	default:
		return "unknown"
	}
}
