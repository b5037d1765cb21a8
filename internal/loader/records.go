package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/slopez1023/ProyectoDiana/internal/models"
)

// LoadRecords reads a JSON or YAML list of indicator records
func (l *Loader) LoadRecords(path string) ([]*models.IndicatorRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read records %s: %w", path, err)
	}

	var records []*models.IndicatorRecord
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &records)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &records)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode records %s: %w", path, err)
	}

	if records == nil {
		records = []*models.IndicatorRecord{}
	}
	l.logger.Info("Records loaded", "path", path, "count", len(records))
	return records, nil
}
