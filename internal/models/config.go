package models

// Config represents the CLI configuration read next to the rule settings
type Config struct {
	Output OutputConfig `mapstructure:"output"`
}

// OutputConfig contains report settings
type OutputConfig struct {
	Format  string `mapstructure:"format"`  // text, json or markdown
	Summary bool   `mapstructure:"summary"` // append per-criterion totals
}

// Report formats
const (
	FormatText     = "text"
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Formats lists the supported report formats
var Formats = []string{FormatText, FormatJSON, FormatMarkdown}

// ValidFormat returns true if the format is supported
func (o OutputConfig) ValidFormat() bool {
	for _, f := range Formats {
		if o.Format == f {
			return true
		}
	}
	return false
}
