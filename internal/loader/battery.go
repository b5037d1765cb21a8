package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/slopez1023/ProyectoDiana/internal/analytics"
	"github.com/slopez1023/ProyectoDiana/internal/models"
	"github.com/slopez1023/ProyectoDiana/internal/utils"
)

// LoadBattery reads a sector battery workbook from disk
func (l *Loader) LoadBattery(path string) ([]*models.IndicatorRecord, *Summary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open battery %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	records, summary := l.readBattery(f)
	summary.Source = path
	return records, summary, nil
}

// ReadBattery reads a sector battery workbook from r
func (l *Loader) ReadBattery(r io.Reader) ([]*models.IndicatorRecord, *Summary, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open battery: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, summary := l.readBattery(f)
	return records, summary, nil
}

// readBattery loads every sector sheet. A sheet that cannot be read or has
// no header is logged and skipped.
func (l *Loader) readBattery(f *excelize.File) ([]*models.IndicatorRecord, *Summary) {
	summary := &Summary{}
	records := []*models.IndicatorRecord{}

	for _, sheet := range f.GetSheetList() {
		if contains(utils.IgnoredSheets, sheet) {
			continue
		}

		sector, read, err := l.readSector(f, sheet)
		if err != nil {
			l.logger.Error("Failed to load sector", "sheet", sheet, "error", err)
			continue
		}
		if len(sector) == 0 {
			continue
		}

		summary.Sheets = append(summary.Sheets, sheet)
		summary.RowsRead += read
		records = append(records, sector...)
		l.logger.Info("Sector loaded", "sheet", sheet, "indicators", len(sector))
	}

	summary.Valid = len(records)
	summary.Dropped = summary.RowsRead - summary.Valid
	return records, summary
}

func (l *Loader) readSector(f *excelize.File, sheet string) ([]*models.IndicatorRecord, int, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, 0, err
	}

	headerRow := findHeaderRow(rows, utils.BatteryHeaderMarker)
	if headerRow < 0 {
		l.logger.Warn("No header found in sector sheet", "sheet", sheet)
		return nil, 0, nil
	}

	header := make([]string, len(rows[headerRow]))
	index := make(map[string]int, len(header))
	for i, h := range rows[headerRow] {
		header[i] = strings.TrimSpace(h)
		if _, dup := index[header[i]]; !dup && header[i] != "" {
			index[header[i]] = i
		}
	}
	cell := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	records := []*models.IndicatorRecord{}
	read := 0
	for _, row := range rows[headerRow+1:] {
		if isEmptyRow(row) {
			continue
		}
		idx := read
		read++

		// Every numeric cell outside the descriptor columns is a period
		values := analytics.Series{}
		for i, h := range header {
			if h == "" || i >= len(row) || contains(utils.BatteryDescriptorColumns, h) {
				continue
			}
			if v, ok := utils.ParseNumber(row[i]); ok {
				values = append(values, analytics.Observation{Period: h, Value: analytics.Float(v)})
			}
		}

		name := cell(row, utils.BatteryNameColumn)
		if name == "" {
			name = utils.UnnamedIndicator
		}
		sectorName := cell(row, "Sector")
		if sectorName == "" {
			sectorName = sheet
		}

		records = append(records, &models.IndicatorRecord{
			ID:     fmt.Sprintf("%s_%d", sheet, idx),
			Name:   name,
			Sector: sectorName,
			Unit:   cell(row, "Unidad de Medida"),
			Target: utils.ParseCell(cell(row, utils.BatteryTargetColumn)),
			Values: values,
		})
	}

	return records, read, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
