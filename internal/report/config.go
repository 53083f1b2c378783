package report

const (
	FormatText = "text"
	FormatJSON = "json"
)

type Config struct {
	Format string `json:"format" yaml:"format"`
}

func DefaultConfig() Config {
	return Config{Format: FormatText}
}
