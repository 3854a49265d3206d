// Package config handles viewer configuration loading and management.
package config

// Config holds all simulator settings.
type Config struct {
	Sim     SimConfig     `yaml:"sim"`
	Logging LoggingConfig `yaml:"logging"`
}

// SimConfig holds scene simulation settings.
type SimConfig struct {
	// Steps is the number of frames the CLI driver runs.
	Steps int `yaml:"steps"`

	// StepSeconds is the real-time length of one step.
	StepSeconds float64 `yaml:"step_seconds"`

	// Area is the initial area number used for object visibility.
	Area int `yaml:"area"`

	// Seed feeds the motion random source. Zero means seed from time.
	Seed int64 `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			Steps:       300,
			StepSeconds: 1.0 / 30.0,
			Area:        0,
			Seed:        0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
