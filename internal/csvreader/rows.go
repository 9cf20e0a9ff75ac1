// SPDX-License-Identifier: AGPL-3.0-or-later
package csvreader

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"dctap/internal/config"
)

// elementShapeID and elementPropertyID are the two grouping-relevant
// columns the reader itself interprets; every other column is passed
// through to field population untouched.
const (
	elementShapeID    = "shapeID"
	elementPropertyID = "propertyID"
)

// Record holds one source row as a mapping from normalized column name
// to raw value. Columns absent from a short row are absent from the
// map. Records are not mutated after loading, with one documented
// exception: the grouper writes a synthesized shapeID into the first
// valid record when the source left it blank.
type Record map[string]string

// FormatError reports a source whose header set lacks a mandatory
// column. It is raised before any row is materialized.
type FormatError struct {
	Column string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("valid DCTAP CSV must have a %q column", e.Column)
}

// loadRows reads the whole source, normalizes the header line, and
// re-parses the content as CSV with the normalized headers as field
// names. Rows may be ragged: surplus values are dropped, missing
// trailing columns stay absent from the record.
func loadRows(r io.Reader, settings *config.Settings) ([]Record, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading source: %w", err)
	}

	lines := strings.Split(string(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	headers := strings.Split(lines[0], ",")
	for i, header := range headers {
		headers[i] = NormalizeHeader(header, settings)
	}
	if !slices.Contains(headers, elementPropertyID) {
		return nil, &FormatError{Column: elementPropertyID}
	}
	lines[0] = strings.Join(headers, ",")

	parser := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	parser.FieldsPerRecord = -1

	rows, err := parser.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV: %w", err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows[1:] {
		record := make(Record, len(headers))
		for i, header := range headers {
			if i < len(row) {
				record[header] = row[i]
			}
		}
		records = append(records, record)
	}
	return records, nil
}
