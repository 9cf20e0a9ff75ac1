// SPDX-License-Identifier: AGPL-3.0-or-later
package render

import (
	"fmt"
	"strings"

	"dctap/internal/csvreader"
)

var constraintColumns = []string{
	"Property", "Label", "Mandatory", "Repeatable", "Node Type", "Constraint", "Note",
}

// Document renders the parsed profile as a Markdown document: one
// section per shape in creation order, a table of its statement
// constraints in row order, and a trailing warnings section when any
// were collected.
func Document(profile *csvreader.ParsedProfile, warnings csvreader.Warnings) string {
	var b strings.Builder

	b.WriteString(markdownHeader(1, "Application Profile"))

	for _, shape := range profile.Shapes {
		b.WriteString(markdownHeader(2, "Shape: "+shape.ShapeID))
		if shape.ShapeLabel != "" {
			b.WriteString(fmt.Sprintf("**Label**: %s\n\n", shape.ShapeLabel))
		}

		rows := make([][]string, 0, len(shape.StatementConstraints))
		for _, sc := range shape.StatementConstraints {
			rows = append(rows, []string{
				sc.PropertyID,
				sc.PropertyLabel,
				sc.Mandatory,
				sc.Repeatable,
				sc.ValueNodeType,
				sc.ValueConstraint,
				sc.Note,
			})
		}
		b.WriteString(markdownTable(constraintColumns, rows))
		b.WriteString("\n")
	}

	if warned(warnings) {
		b.WriteString(markdownHeader(2, "Warnings"))
		for _, shape := range profile.Shapes {
			bucket := warnings[shape.ShapeID]
			for _, element := range sortedElements(bucket) {
				for _, message := range bucket[element] {
					b.WriteString(fmt.Sprintf("- %s / %s: %s\n", shape.ShapeID, element, message))
				}
			}
		}
	}

	return b.String()
}

func warned(warnings csvreader.Warnings) bool {
	for _, bucket := range warnings {
		if len(bucket) > 0 {
			return true
		}
	}
	return false
}
