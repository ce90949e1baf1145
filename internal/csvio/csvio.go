// Package csvio converts between the tabular interchange format and
// validated import rows. The header row names the fields; "name" is the
// identity column. Bad rows are reported individually, never aborting the
// rest of the file.
package csvio

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"job-management-api/internal/entity"
)

var ErrMissingHeader = errors.New("csv input has no header row")
var ErrMissingNameColumn = errors.New("csv header has no name column")

// Columns written by Write and understood by Parse.
var Header = []string{"name", "date", "email", "phone", "address", "info", "price"}

func Parse(r io.Reader) ([]entity.ImportRow, []entity.RowError, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, ErrMissingHeader
		}

		return nil, nil, err
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := columns["name"]; !ok {
		return nil, nil, ErrMissingNameColumn
	}

	rows := make([]entity.ImportRow, 0)
	rowErrors := make([]entity.RowError, 0)

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			rowErrors = append(rowErrors, entity.RowError{Line: line, Reason: err.Error()})
			continue
		}

		row := entity.ImportRow{Line: line}
		row.Name = strings.TrimSpace(field(record, columns, "name"))
		if row.Name == "" {
			rowErrors = append(rowErrors, entity.RowError{Line: line, Reason: "missing required field name"})
			continue
		}

		row.Date, row.HasDate = optional(record, columns, "date")
		row.Email, row.HasEmail = optional(record, columns, "email")
		row.Phone, row.HasPhone = optional(record, columns, "phone")
		row.Address, row.HasAddress = optional(record, columns, "address")
		row.Info, row.HasInfo = optional(record, columns, "info")

		if raw, ok := optional(record, columns, "price"); ok {
			row.HasPrice = true
			// non-numeric prices count as zero, matching the aggregate rule
			if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && v >= 0 {
				row.Price = v
			}
		}

		rows = append(rows, row)
	}

	return rows, rowErrors, nil
}

func field(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}

	return record[i]
}

// optional reports whether the column exists in the file at all; a present
// but empty cell still counts as carried (it clears the field on update).
func optional(record []string, columns map[string]int, name string) (string, bool) {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return "", false
	}

	return strings.TrimSpace(record[i]), true
}

func Write(w io.Writer, jobs []entity.Job) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return err
	}
	for _, job := range jobs {
		record := []string{
			job.Name,
			job.Date,
			job.Email,
			job.Phone,
			job.Address,
			job.Info,
			strconv.FormatFloat(job.Price, 'f', -1, 64),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()

	return writer.Error()
}
