package core

// RuntimeConfig describes the terminal surface an editor view draws on.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Redraw ticks per second
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// StatusLines is the number of rows reserved below the map for the status
// bar and help line.
const StatusLines = 2

// MapHeight returns the rows available to the map view.
func (c RuntimeConfig) MapHeight() int {
	return Max(c.ScreenH-StatusLines, 1)
}
