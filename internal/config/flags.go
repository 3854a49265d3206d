package config

import "flag"

var (
	flagConfig = flag.String("config", "", "Path to config file")
	flagDebug  = flag.Bool("debug", false, "Enable debug logging")
	flagSteps  = flag.Int("steps", 0, "Number of simulation steps to run")
	flagArea   = flag.Int("area", -1, "Initial area number for visibility")
	flagSeed   = flag.Int64("seed", 0, "Random seed for motion timers")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSteps > 0 {
		cfg.Sim.Steps = *flagSteps
	}
	if *flagArea >= 0 {
		cfg.Sim.Area = *flagArea
	}
	if *flagSeed != 0 {
		cfg.Sim.Seed = *flagSeed
	}
}
