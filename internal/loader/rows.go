package loader

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/slopez1023/ProyectoDiana/internal/utils"
)

// foldAccents strips combining marks, so "Código" matches "codigo"
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}

// findHeaderRow returns the first of the leading rows containing marker, or -1
func findHeaderRow(rows [][]string, marker string) int {
	want := foldAccents(strings.ToLower(marker))
	for i := 0; i < len(rows) && i < utils.BoardHeaderScanRows; i++ {
		for _, cell := range rows[i] {
			if strings.Contains(foldAccents(strings.ToLower(cell)), want) {
				return i
			}
		}
	}
	return -1
}

// rowContains reports whether any cell contains marker, ignoring case
func rowContains(row []string, marker string) bool {
	want := strings.ToLower(marker)
	for _, cell := range row {
		if strings.Contains(strings.ToLower(cell), want) {
			return true
		}
	}
	return false
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
