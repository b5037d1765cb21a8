package config

import (
	"fmt"

	"github.com/slopez1023/ProyectoDiana/internal/analytics"
)

// Config represents the complete application configuration
type Config struct {
	Analysis analytics.Thresholds `mapstructure:"analysis"`
	Report   ReportConfig         `mapstructure:"report"`
	Output   OutputConfig         `mapstructure:"output"`
	Logging  LoggingConfig        `mapstructure:"logging"`
}

// ReportConfig represents report rendering configuration
type ReportConfig struct {
	Title       string `mapstructure:"title"`        // Cover title of the PDF and HTML reports
	Entity      string `mapstructure:"entity"`       // Institution the indicators belong to
	MaxCritical int    `mapstructure:"max_critical"` // Rows shown in the critical indicators table (default: 10)
	Charts      bool   `mapstructure:"charts"`       // Render PNG charts next to the report
}

// OutputConfig represents where and how results are written
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`    // Directory for reports, charts and exports
	Format string `mapstructure:"format"` // Export format for analyses: json, yaml
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, file path
	TimeFormat string `mapstructure:"time_format"` // RFC3339, Unix, Kitchen
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Analysis.Validate(); err != nil {
		return fmt.Errorf("analysis config: %w", err)
	}

	if err := c.Report.Validate(); err != nil {
		return fmt.Errorf("report config: %w", err)
	}

	if err := c.Output.Validate(); err != nil {
		return fmt.Errorf("output config: %w", err)
	}

	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging config: %w", err)
	}

	return nil
}

// Validate validates report configuration
func (c *ReportConfig) Validate() error {
	if c.Title == "" {
		return fmt.Errorf("report.title is required")
	}

	if c.MaxCritical < 1 {
		return fmt.Errorf("report.max_critical must be at least 1")
	}

	return nil
}

// Validate validates output configuration
func (c *OutputConfig) Validate() error {
	if c.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}

	if c.Format != "json" && c.Format != "yaml" {
		return fmt.Errorf("output.format must be 'json' or 'yaml'")
	}

	return nil
}

// Validate validates logging configuration
func (c *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLevels[c.Level] {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}

	validFormats := map[string]bool{
		"json":    true,
		"console": true,
	}

	if !validFormats[c.Format] {
		return fmt.Errorf("logging.format must be 'json' or 'console'")
	}

	return nil
}
