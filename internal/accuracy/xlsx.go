package accuracy

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
)

// WriteXLSX renders a suite result as an XLSX workbook (as bytes), one row
// per document/category plus an aggregate row.
func WriteXLSX(suite *SuiteResult, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f := excelize.NewFile()
	const sheet = "Accuracy"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"Document", "Type", "Category", "Truth", "Matched", "False Positives", "Accuracy", "Confidence"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, fr := range suite.PerFile {
		cats := make([]string, 0, len(fr.Categories))
		for name := range fr.Categories {
			cats = append(cats, name)
		}
		sort.Strings(cats)

		for _, name := range cats {
			cr := fr.Categories[name]
			write := func(col int, v any) {
				cell, _ := excelize.CoordinatesToCellName(col, row)
				_ = f.SetCellValue(sheet, cell, v)
			}
			write(1, fr.Name)
			write(2, string(fr.DocumentType))
			write(3, name)
			write(4, cr.Total)
			write(5, cr.Matched)
			write(6, cr.FalsePositives)
			write(7, fmt.Sprintf("%.1f%%", cr.Accuracy*100))
			write(8, fr.Confidence)
			row++
		}
		if fr.Err != "" {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			_ = f.SetCellValue(sheet, cell, fr.Name)
			cell, _ = excelize.CoordinatesToCellName(3, row)
			_ = f.SetCellValue(sheet, cell, "ERROR: "+fr.Err)
			row++
		}
	}

	row++
	verdict := "FAIL"
	if suite.Passed {
		verdict = "PASS"
	}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	_ = f.SetCellValue(sheet, cell, "Overall")
	cell, _ = excelize.CoordinatesToCellName(7, row)
	_ = f.SetCellValue(sheet, cell, fmt.Sprintf("%.1f%%", suite.Overall*100))
	cell, _ = excelize.CoordinatesToCellName(8, row)
	_ = f.SetCellValue(sheet, cell, fmt.Sprintf("%s (target %.0f%%)", verdict, suite.Target*100))

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 28)
	_ = f.SetColWidth(sheet, "B", "B", 22)
	_ = f.SetColWidth(sheet, "C", "C", 18)
	_ = f.SetColWidth(sheet, "G", "H", 16)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	logger.Info("accuracy.xlsx.ok",
		"documents", len(suite.PerFile),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}
