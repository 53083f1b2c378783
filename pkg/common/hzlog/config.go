package hzlog

const (
	ModeConsole = "console"
	ModeJSON    = "json"
)

type Config struct {
	Level string `json:"level" yaml:"level"`
	Mode  string `json:"mode" yaml:"mode"`
	// Verbose switches the info tag from [INFO] to [INFORMATION].
	Verbose bool `json:"verbose" yaml:"verbose"`
}

func DefaultConfig() Config {
	return Config{
		Level:   "debug",
		Mode:    ModeConsole,
		Verbose: false,
	}
}
