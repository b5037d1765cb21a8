package config

import (
	"os"
	"path/filepath"
)

// EnsureDirectories ensures all required directories exist
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Output.Dir,
		c.ChartsDir(),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return nil
}

// GetOutputPath returns the full path for an output file
func (c *Config) GetOutputPath(filename string) string {
	return filepath.Join(c.Output.Dir, filename)
}

// ChartsDir returns the directory charts are rendered into
func (c *Config) ChartsDir() string {
	return filepath.Join(c.Output.Dir, "charts")
}
