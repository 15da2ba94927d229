package service

import (
	"bytes"
	"encoding/csv"
	"time"

	"cineiut.com/catalog/internal/core/domain"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = time.RFC3339
)

var CSVHeader = []string{"title", "description", "releaseDate", "director", "createdAt", "updatedAt"}

// RenderCSV renders entries in the given order under a fixed header.
// Timestamps are written in UTC so the output does not depend on the host.
func RenderCSV(entries []domain.CatalogEntry) []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// Writes go to an in-memory buffer and cannot fail.
	_ = w.Write(CSVHeader)
	for _, e := range entries {
		_ = w.Write([]string{
			e.Title,
			e.Description,
			formatTime(e.ReleaseDate, DateLayout),
			e.Director,
			formatTime(e.CreatedAt, DateTimeLayout),
			formatTime(e.UpdatedAt, DateTimeLayout),
		})
	}
	w.Flush()

	return buf.Bytes()
}

func formatTime(t *time.Time, layout string) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(layout)
}
