package loader

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/slopez1023/ProyectoDiana/internal/analytics"
	"github.com/slopez1023/ProyectoDiana/internal/models"
	"github.com/slopez1023/ProyectoDiana/internal/utils"
)

// Board columns after renaming
const (
	colNumber       = "#"
	colTarget       = "Meta"
	colUnit         = "Unidad de Medida"
	colAchieved     = "Nivel Obtenido"
	colSatisfactory = "Nivel Satisfactorio"
	colCritical     = "Nivel Crítico"
)

// LoadBoard reads a consolidated board workbook from disk
func (l *Loader) LoadBoard(path string, opts Options) ([]*models.IndicatorRecord, *Summary, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open board %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	records, summary, err := l.readBoard(f, opts)
	if summary != nil {
		summary.Source = path
	}
	return records, summary, err
}

// ReadBoard reads a consolidated board workbook from r
func (l *Loader) ReadBoard(r io.Reader, opts Options) ([]*models.IndicatorRecord, *Summary, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open board: %w", err)
	}
	defer func() { _ = f.Close() }()

	return l.readBoard(f, opts)
}

func (l *Loader) readBoard(f *excelize.File, opts Options) ([]*models.IndicatorRecord, *Summary, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook has no sheets")
	}
	sheet := sheets[0]

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}

	summary := &Summary{Sheets: []string{sheet}}

	headerRow := findHeaderRow(rows, utils.BoardHeaderMarker)
	if headerRow < 0 {
		l.logger.Warn("Board header not found, using first row", "sheet", sheet)
		headerRow = 0
	}
	summary.HeaderRow = headerRow
	if len(rows) == 0 {
		return []*models.IndicatorRecord{}, summary, nil
	}

	columns := boardColumns(rows[headerRow])

	data := rows[headerRow+1:]
	// The sub-header names the semaphore levels and has no indicator name
	if len(data) > 0 && rowContains(data[0], utils.SubHeaderMarker) &&
		strings.TrimSpace(columns.text(data[0], utils.BoardHeaderMarker)) == "" {
		l.logger.Debug("Skipping semaphore sub-header row", "row", headerRow+1)
		data = data[1:]
	}

	var historySheets []string
	if opts.History {
		for _, s := range sheets {
			if s != sheet && s != utils.ConsolidatedSheet {
				historySheets = append(historySheets, s)
			}
		}
	}

	records := make([]*models.IndicatorRecord, 0, len(data))
	ordinal := 0
	for _, row := range data {
		if isEmptyRow(row) {
			continue
		}
		summary.RowsRead++
		ordinal++

		name := strings.TrimSpace(columns.text(row, utils.BoardHeaderMarker))
		if name == "" {
			summary.Dropped++
			continue
		}

		rec := &models.IndicatorRecord{
			ID:                strconv.Itoa(ordinal),
			Name:              name,
			Unit:              strings.TrimSpace(columns.text(row, colUnit)),
			Target:            columns.number(row, colTarget),
			AchievedLevel:     columns.number(row, colAchieved),
			SatisfactoryLevel: columns.number(row, colSatisfactory),
			CriticalLevel:     columns.number(row, colCritical),
		}
		number := ordinal
		if n, ok := utils.ParseNumber(columns.text(row, colNumber)); ok {
			rec.ID = utils.FormatNumber(n)
			number = int(n)
		}

		months := columns.monthSeries(row)
		if number > 0 && number <= len(historySheets) {
			history := l.readHistory(f, historySheets[number-1])
			months = mergeHistory(history, months)
		}
		rec.Values = months

		records = append(records, rec)
	}

	summary.Valid = len(records)
	l.logger.Info("Board loaded",
		"sheet", sheet,
		"indicators", summary.Valid,
		"dropped", summary.Dropped)

	return records, summary, nil
}

// columnSet maps trimmed header names to column indexes
type columnSet struct {
	index  map[string]int
	months []int // month columns in header order
	labels []string
}

func boardColumns(header []string) *columnSet {
	cs := &columnSet{index: make(map[string]int, len(header))}
	names := make([]string, len(header))
	for i, h := range header {
		names[i] = strings.TrimSpace(h)
	}

	// The three columns starting at the semaphore header are the levels
	for i, h := range names {
		if strings.Contains(foldAccents(strings.ToLower(h)), utils.SemaphoreMarker) {
			levels := []string{colAchieved, colSatisfactory, colCritical}
			for len(names) < i+len(levels) {
				names = append(names, "")
			}
			for j, level := range levels {
				names[i+j] = level
			}
			break
		}
	}

	for i, h := range names {
		if h == "" {
			continue
		}
		if _, dup := cs.index[h]; !dup {
			cs.index[h] = i
		}
		if _, ok := analytics.MonthIndex(h); ok {
			cs.months = append(cs.months, i)
			cs.labels = append(cs.labels, h)
		}
	}
	return cs
}

func (cs *columnSet) text(row []string, name string) string {
	i, ok := cs.index[name]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}

func (cs *columnSet) number(row []string, name string) *float64 {
	return utils.ParseCell(cs.text(row, name))
}

// monthSeries returns the present month values in header order
func (cs *columnSet) monthSeries(row []string) analytics.Series {
	series := analytics.Series{}
	for k, i := range cs.months {
		if i >= len(row) {
			continue
		}
		if v := utils.ParseCell(row[i]); v != nil {
			series = append(series, analytics.Observation{Period: cs.labels[k], Value: v})
		}
	}
	return series
}

// readHistory extracts past results from an indicator sheet. The sheet holds
// a "RESULTADOS VIGENCIA" title in column B, period labels on the next row
// and a "RESULTADO" row within the following ten rows.
func (l *Loader) readHistory(f *excelize.File, sheet string) analytics.Series {
	history := analytics.Series{}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		l.logger.Debug("History sheet unreadable", "sheet", sheet, "error", err)
		return history
	}

	section := -1
	for i, row := range rows {
		if len(row) > 1 && strings.Contains(row[1], utils.HistorySectionMarker) {
			section = i
			break
		}
	}
	if section < 0 || section+1 >= len(rows) {
		return history
	}

	periodRow := section + 1
	resultRow := -1
	for i := periodRow; i < len(rows) && i < periodRow+10; i++ {
		if len(rows[i]) > 0 && strings.Contains(strings.ToUpper(rows[i][0]), utils.HistoryResultMarker) {
			resultRow = i
			break
		}
	}
	if resultRow < 0 {
		return history
	}

	periods, results := rows[periodRow], rows[resultRow]
	for col := 1; col < len(periods) && col < len(results); col++ {
		label := strings.TrimSpace(periods[col])
		if label == "" || strings.EqualFold(label, "Promedio") || strings.EqualFold(label, "nan") {
			continue
		}
		if v, ok := utils.ParseNumber(results[col]); ok {
			history = append(history, analytics.Observation{Period: label, Value: analytics.Float(v)})
		}
	}

	l.logger.Debug("History loaded", "sheet", sheet, "periods", len(history))
	return history
}

// mergeHistory puts history first and lets current values win on a clash
func mergeHistory(history, current analytics.Series) analytics.Series {
	if len(history) == 0 {
		return current
	}

	merged := make(analytics.Series, 0, len(history)+len(current))
	position := make(map[string]int, len(history))
	for _, o := range history {
		key := periodKey(o.Period)
		if i, dup := position[key]; dup {
			merged[i] = o
			continue
		}
		position[key] = len(merged)
		merged = append(merged, o)
	}
	for _, o := range current {
		key := periodKey(o.Period)
		if i, ok := position[key]; ok {
			merged[i].Value = o.Value
			continue
		}
		position[key] = len(merged)
		merged = append(merged, o)
	}
	return merged
}

// periodKey folds month aliases together so they collide when merging
func periodKey(label string) string {
	if idx, ok := analytics.MonthIndex(label); ok {
		return analytics.Calendar[idx]
	}
	return strings.ToLower(strings.TrimSpace(label))
}
