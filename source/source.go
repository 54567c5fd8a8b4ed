// Package source supplies the rows shown inside the demo scroll viewer.
package source

import (
	"fmt"
	"strings"

	"github.com/jonas-p/go-shp"
)

// Row is one line of content.
type Row struct {
	Label string
}

// Synthetic returns n numbered rows.
func Synthetic(n int) []Row {
	rows := make([]Row, 0, max(n, 0))
	for i := 0; i < n; i++ {
		rows = append(rows, Row{Label: fmt.Sprintf("row %d", i+1)})
	}
	return rows
}

// Shapefile returns one row per record of the shapefile at path, labelled
// with the attribute named field. An empty field selects the first column.
// limit <= 0 reads every record.
func Shapefile(path, field string, limit int) ([]Row, error) {
	r, err := shp.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shapefile %s failed: %w", path, err)
	}
	defer r.Close()

	column := -1
	fields := r.Fields()
	for i, f := range fields {
		if field == "" || strings.EqualFold(f.String(), field) {
			column = i
			break
		}
	}
	if field != "" && column < 0 {
		return nil, fmt.Errorf("shapefile %s has no field %q", path, field)
	}

	var rows []Row
	for r.Next() {
		if limit > 0 && len(rows) >= limit {
			break
		}
		n, shape := r.Shape()
		label := fmt.Sprintf("record %d", n+1)
		if column >= 0 {
			if v := strings.Trim(r.ReadAttribute(n, column), " \x00"); v != "" {
				label = v
			}
		}
		if shape != nil {
			b := shape.BBox()
			label = fmt.Sprintf("%s (%.2f, %.2f)", label, b.MinX, b.MinY)
		}
		rows = append(rows, Row{Label: label})
	}
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("reading shapefile %s failed: %w", path, err)
	}
	return rows, nil
}
