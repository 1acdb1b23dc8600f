// Package export renders the visible attendance row set as downloadable
// files. Fields containing commas or quotes are quoted with internal quotes
// doubled, per RFC 4180.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Zer0x25/reloj-control/internal/models"
)

// header is the fixed first row of both export formats.
var header = []string{"Area", "Name", "Title", "Entry", "Exit", "Comment"}

// WriteCSV writes the row set as comma-separated text with a header row.
func WriteCSV(w io.Writer, rows []models.ViewRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{row.Area, row.Name, row.Title, row.Entry, row.Exit, row.Comment}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}
