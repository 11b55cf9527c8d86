// =============================================================================
// Sales Data Cleaner - XLSX Reader Module
// =============================================================================
//
// This module reads spreadsheet sales exports into raw rows. Many source
// systems hand out .xlsx files instead of CSV; reading them here lets the
// rest of the pipeline stay format-agnostic, since both readers produce the
// same [][]string shape.
//
// =============================================================================

package xlsxreader

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ginjaninja78/sales-data-cleaner/internal/config"
)

// Read parses a spreadsheet file and returns the raw rows of one worksheet,
// in sheet order.
//
// The worksheet is selected by settings.Sheet; when empty, the first sheet
// in the workbook is used. Header skipping is handled by the CSV settings so
// both input formats share one knob.
func Read(filePath string, settings config.XLSXSettings, headerRows int) ([][]string, error) {
	workbook, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer workbook.Close()

	sheet := settings.Sheet
	if sheet == "" {
		sheet = workbook.GetSheetName(0)
		if sheet == "" {
			return nil, fmt.Errorf("spreadsheet has no sheets")
		}
	}

	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	if headerRows >= len(rows) {
		return nil, nil
	}
	return rows[headerRows:], nil
}
