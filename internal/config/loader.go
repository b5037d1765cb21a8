package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/slopez1023/ProyectoDiana/internal/analytics"
)

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Default config locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")         // Current directory
		v.AddConfigPath("./configs") // Project configs directory
		v.AddConfigPath("./config")  // Alternative config directory
	}

	// Set defaults
	setDefaults(v)

	// Enable environment variable overrides, e.g. INDICATORS_ANALYSIS_Z_SCORE
	v.SetEnvPrefix("INDICATORS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; use defaults
			return parseConfig(v)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return parseConfig(v)
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Analysis defaults
	t := analytics.DefaultThresholds()
	v.SetDefault("analysis.z_score", t.ZScore)
	v.SetDefault("analysis.min_anomaly_sample", t.MinAnomalySample)
	v.SetDefault("analysis.volatility", t.Volatility)
	v.SetDefault("analysis.stability", t.Stability)
	v.SetDefault("analysis.default_satisfactory", t.DefaultSatisfactory)
	v.SetDefault("analysis.critical_multiplier", t.CriticalMultiplier)
	v.SetDefault("analysis.inverted_critical_multiplier", t.InvertedCriticalMultiplier)
	v.SetDefault("analysis.magnitude_green", t.MagnitudeGreen)
	v.SetDefault("analysis.magnitude_yellow", t.MagnitudeYellow)

	// Report defaults
	v.SetDefault("report.title", "Informe de Indicadores Institucionales")
	v.SetDefault("report.entity", "")
	v.SetDefault("report.max_critical", 10)
	v.SetDefault("report.charts", true)

	// Output defaults
	v.SetDefault("output.dir", "./output")
	v.SetDefault("output.format", "json")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_path", "stderr")
}

// parseConfig parses viper config into Config struct
func parseConfig(v *viper.Viper) (*Config, error) {
	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Analysis: analytics.DefaultThresholds(),
		Report: ReportConfig{
			Title:       "Informe de Indicadores Institucionales",
			MaxCritical: 10,
			Charts:      true,
		},
		Output: OutputConfig{
			Dir:    "./output",
			Format: "json",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stderr",
		},
	}
}
