package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Zer0x25/reloj-control/internal/models"
)

const sheetName = "Attendance"

// WriteXLSX writes the row set as a single-sheet spreadsheet with a header row.
func WriteXLSX(w io.Writer, rows []models.ViewRow) error {
	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // in-memory file, nothing to leak

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("creating sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	headerRow := make([]any, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheetName, "A1", &headerRow); err != nil {
		return fmt.Errorf("writing header row: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("computing cell name: %w", err)
		}

		values := []any{row.Area, row.Name, row.Title, row.Entry, row.Exit, row.Comment}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return fmt.Errorf("writing row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}

	return nil
}
