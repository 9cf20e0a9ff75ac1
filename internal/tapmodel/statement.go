// SPDX-License-Identifier: AGPL-3.0-or-later
package tapmodel

import (
	"fmt"
	"strings"
)

// Picklists of accepted values for the closed statement elements.
// Matching is case-insensitive; the empty string is always accepted
// because an omitted column is not an error.
var (
	booleanValues        = []string{"true", "false", "1", "0"}
	valueNodeTypes       = []string{"iri", "bnode", "literal"}
	valueConstraintTypes = []string{"picklist", "pattern", "iristem", "languagetag"}
)

// StatementConstraint restricts one property within a shape: whether it
// is mandatory or repeatable, what kind of node and datatype its values
// take, and any value constraint.
type StatementConstraint struct {
	PropertyID          string
	PropertyLabel       string
	Mandatory           string
	Repeatable          string
	ValueNodeType       string
	ValueDataType       string
	ValueConstraint     string
	ValueConstraintType string
	ValueShape          string
	Note                string

	warnings []Warning
}

// Elements maps each declared statement element to its storage location.
func (sc *StatementConstraint) Elements() map[string]*string {
	return map[string]*string{
		"propertyID":          &sc.PropertyID,
		"propertyLabel":       &sc.PropertyLabel,
		"mandatory":           &sc.Mandatory,
		"repeatable":          &sc.Repeatable,
		"valueNodeType":       &sc.ValueNodeType,
		"valueDataType":       &sc.ValueDataType,
		"valueConstraint":     &sc.ValueConstraint,
		"valueConstraintType": &sc.ValueConstraintType,
		"valueShape":          &sc.ValueShape,
		"note":                &sc.Note,
	}
}

// Normalize checks the closed elements against their picklists and
// buffers a warning per off-list value. Source values are preserved.
func (sc *StatementConstraint) Normalize() {
	sc.checkPicklist("mandatory", sc.Mandatory, booleanValues)
	sc.checkPicklist("repeatable", sc.Repeatable, booleanValues)
	sc.checkPicklist("valueNodeType", sc.ValueNodeType, valueNodeTypes)
	sc.checkPicklist("valueConstraintType", sc.ValueConstraintType, valueConstraintTypes)
}

// DrainWarnings returns the warnings buffered since the previous drain,
// in emission order, and resets the buffer.
func (sc *StatementConstraint) DrainWarnings() []Warning {
	w := sc.warnings
	sc.warnings = nil
	return w
}

func (sc *StatementConstraint) checkPicklist(element, value string, accepted []string) {
	if value == "" {
		return
	}
	lowered := strings.ToLower(value)
	for _, ok := range accepted {
		if lowered == ok {
			return
		}
	}
	sc.warnings = append(sc.warnings, Warning{
		Element: element,
		Message: fmt.Sprintf("%s is not a valid value for %s", quoted(value), element),
	})
}

func quoted(s string) string {
	return fmt.Sprintf("%q", s)
}
