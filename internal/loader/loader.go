// Package loader turns indicator workbooks and record files into
// IndicatorRecords.
//
// Two workbook layouts are supported: the consolidated board (one row per
// indicator, one column per month, optional per-indicator history sheets)
// and the sector battery (one sheet per sector, free-form period columns).
// Only the Office Open XML formats (.xlsx, .xlsm) can be read; legacy .xls
// workbooks must be converted first.
package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/slopez1023/ProyectoDiana/internal/logging"
	"github.com/slopez1023/ProyectoDiana/internal/models"
)

// ErrUnsupportedFormat is returned for inputs the loader cannot read
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Summary describes what a load produced
type Summary struct {
	Source    string   `json:"source" yaml:"source"`
	Sheets    []string `json:"sheets,omitempty" yaml:"sheets,omitempty"`
	HeaderRow int      `json:"header_row" yaml:"header_row"` // 0-based, board only
	RowsRead  int      `json:"rows_read" yaml:"rows_read"`
	Valid     int      `json:"valid" yaml:"valid"`
	Dropped   int      `json:"dropped" yaml:"dropped"`
}

// Options controls how workbooks are interpreted
type Options struct {
	// Battery reads the workbook as a multi-sheet sector battery
	Battery bool

	// History merges each indicator's sheet of past results into its series
	History bool
}

// Loader reads indicator sources
type Loader struct {
	logger *logging.Logger
}

// New creates a new Loader. A nil logger falls back to the global one.
func New(logger *logging.Logger) *Loader {
	if logger == nil {
		logger = logging.Global()
	}
	return &Loader{logger: logger}
}

// Load reads any supported input, choosing the reader by file extension
func (l *Loader) Load(path string, opts Options) ([]*models.IndicatorRecord, *Summary, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		if opts.Battery {
			return l.LoadBattery(path)
		}
		return l.LoadBoard(path, opts)
	case ".json", ".yaml", ".yml":
		records, err := l.LoadRecords(path)
		if err != nil {
			return nil, nil, err
		}
		return records, &Summary{Source: path, RowsRead: len(records), Valid: len(records)}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
