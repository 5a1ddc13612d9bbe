package ingest

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"strings"

	"github.com/rdharshinir/student-app/internal/model"
)

// requiredColumns must all appear in the header row of an uploaded file.
// The optional 'date' column is honored when present.
var requiredColumns = []string{"reg_no", "seat_no", "room", "course_code", "course_title", "session"}

// CSVParser reads seating rows from a comma-separated spreadsheet export.
// The first record is treated as the header; column order is free.
type CSVParser struct{}

func (CSVParser) Parse(ctx context.Context, path, dateOverride string) ([]model.SeatingRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows are tolerated; missing cells read as empty
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, &MissingColumnsError{Columns: requiredColumns}
	}
	if err != nil {
		return nil, err
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	var rows []model.SeatingRecord
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		cell := func(col string) string {
			i, ok := idx[col]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		row := model.SeatingRecord{
			RegNo:       cell("reg_no"),
			SeatNo:      cell("seat_no"),
			Room:        cell("room"),
			CourseCode:  cell("course_code"),
			CourseTitle: cell("course_title"),
			Session:     cell("session"),
		}
		if row.RegNo == "" { // fully empty or padding line
			continue
		}
		switch {
		case dateOverride != "":
			row.Date = dateOverride
		case cell("date") != "":
			row.Date = cell("date")
		default:
			row.Date = DefaultDate
		}
		rows = append(rows, row)
	}
	return rows, nil
}
