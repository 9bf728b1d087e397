package trace

// DefaultIndentUnit is the number of leading spaces per call-tree level in
// the trace output.
const DefaultIndentUnit = 4

// Config controls trace parsing.
type Config struct {
	IndentUnit int
}

// DefaultConfig creates a configuration with default settings.
func DefaultConfig() *Config {
	return &Config{
		IndentUnit: DefaultIndentUnit,
	}
}
