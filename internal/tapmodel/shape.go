// SPDX-License-Identifier: AGPL-3.0-or-later

// Package tapmodel defines the DCTAP entities a tabular application
// profile is parsed into: shapes and the statement constraints they
// group. Each entity declares a fixed element set and knows how to
// normalize its own values, emitting field-keyed warnings.
package tapmodel

import "strings"

// Shape is a named group of statement constraints.
type Shape struct {
	ShapeID    string
	ShapeLabel string

	// StatementConstraints holds the constraints contributed by rows
	// grouped under this shape, in source row order.
	StatementConstraints []*StatementConstraint

	warnings []Warning
}

// Elements maps each declared shape element to its storage location.
// Bookkeeping (the constraint list, the warning buffer) is not an
// element and never participates in row population.
func (s *Shape) Elements() map[string]*string {
	return map[string]*string{
		"shapeID":    &s.ShapeID,
		"shapeLabel": &s.ShapeLabel,
	}
}

// Append adds a statement constraint to the end of the shape's list.
func (s *Shape) Append(sc *StatementConstraint) {
	s.StatementConstraints = append(s.StatementConstraints, sc)
}

// Normalize checks the shape-level elements and buffers a warning for
// each suspect value. Values are left untouched; normalization never
// rewrites what the source said.
func (s *Shape) Normalize() {
	if strings.ContainsAny(s.ShapeID, " \t") {
		s.warn("shapeID", "shape identifier "+quoted(s.ShapeID)+" contains whitespace")
	}
}

// DrainWarnings returns the warnings buffered since the previous drain,
// in emission order, and resets the buffer.
func (s *Shape) DrainWarnings() []Warning {
	w := s.warnings
	s.warnings = nil
	return w
}

func (s *Shape) warn(element, message string) {
	s.warnings = append(s.warnings, Warning{Element: element, Message: message})
}
