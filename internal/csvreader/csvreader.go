// SPDX-License-Identifier: AGPL-3.0-or-later

// Package csvreader turns a DCTAP CSV source into a structured profile:
// an ordered list of shapes, each holding an ordered list of statement
// constraints, plus a collection of normalization warnings keyed by
// shape and element.
//
// The pipeline is strictly sequential: the whole source is materialized
// into records, records are grouped into shapes with carry-forward of
// the most recently established shape identifier, and the resulting
// graph is assembled into the public result types.
package csvreader

import (
	"io"

	"dctap/internal/config"
)

// Read parses an open CSV source under the given settings. It returns
// the parsed profile together with any normalization warnings. The only
// fatal condition is a header set lacking a propertyID column, reported
// as a FormatError before any row is processed.
func Read(r io.Reader, settings *config.Settings) (*ParsedProfile, Warnings, error) {
	records, err := loadRows(r, settings)
	if err != nil {
		return nil, nil, err
	}
	shapes, warnings := groupShapes(records, settings)
	return assemble(shapes), warnings, nil
}
