package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Logging LoggingConfig `mapstructure:"logging" validate:"required"`
	Cloze   ClozeConfig   `mapstructure:"cloze" validate:"required"`
	Preview PreviewConfig `mapstructure:"preview" validate:"required"`
}

// LoggingConfig controls the diagnostic output on stderr.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
}

// ClozeConfig configures the overlapping cloze generator.
type ClozeConfig struct {
	// Delimiter is the single character bracketing answer spans.
	Delimiter string `mapstructure:"delimiter" validate:"required,len=1"`
}

// PreviewConfig configures the local preview server.
type PreviewConfig struct {
	Port int `mapstructure:"port" validate:"required,gt=0,lt=65536"`
}
