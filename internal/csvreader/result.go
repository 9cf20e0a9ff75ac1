// SPDX-License-Identifier: AGPL-3.0-or-later
package csvreader

import "dctap/internal/tapmodel"

// ParsedProfile is the externally visible form of a parsed source:
// shapes in creation order, each carrying its statement constraints in
// source row order.
type ParsedProfile struct {
	Shapes []ShapeResult `json:"shapes" yaml:"shapes"`
}

// ShapeResult is one assembled shape. The internal constraint list is
// published under the name "statement_constraints".
type ShapeResult struct {
	ShapeID              string                      `json:"shapeID" yaml:"shapeID"`
	ShapeLabel           string                      `json:"shapeLabel,omitempty" yaml:"shapeLabel,omitempty"`
	StatementConstraints []StatementConstraintResult `json:"statement_constraints" yaml:"statement_constraints"`
}

// StatementConstraintResult is one assembled statement constraint.
// PropertyID is always present; the invariant that no constraint exists
// without one is enforced by the grouper, not here.
type StatementConstraintResult struct {
	PropertyID          string `json:"propertyID" yaml:"propertyID"`
	PropertyLabel       string `json:"propertyLabel,omitempty" yaml:"propertyLabel,omitempty"`
	Mandatory           string `json:"mandatory,omitempty" yaml:"mandatory,omitempty"`
	Repeatable          string `json:"repeatable,omitempty" yaml:"repeatable,omitempty"`
	ValueNodeType       string `json:"valueNodeType,omitempty" yaml:"valueNodeType,omitempty"`
	ValueDataType       string `json:"valueDataType,omitempty" yaml:"valueDataType,omitempty"`
	ValueConstraint     string `json:"valueConstraint,omitempty" yaml:"valueConstraint,omitempty"`
	ValueConstraintType string `json:"valueConstraintType,omitempty" yaml:"valueConstraintType,omitempty"`
	ValueShape          string `json:"valueShape,omitempty" yaml:"valueShape,omitempty"`
	Note                string `json:"note,omitempty" yaml:"note,omitempty"`
}

// assemble converts the internal shape graph into the public result.
func assemble(shapes []*tapmodel.Shape) *ParsedProfile {
	profile := &ParsedProfile{Shapes: make([]ShapeResult, 0, len(shapes))}
	for _, shape := range shapes {
		result := ShapeResult{
			ShapeID:              shape.ShapeID,
			ShapeLabel:           shape.ShapeLabel,
			StatementConstraints: make([]StatementConstraintResult, 0, len(shape.StatementConstraints)),
		}
		for _, sc := range shape.StatementConstraints {
			result.StatementConstraints = append(result.StatementConstraints, StatementConstraintResult{
				PropertyID:          sc.PropertyID,
				PropertyLabel:       sc.PropertyLabel,
				Mandatory:           sc.Mandatory,
				Repeatable:          sc.Repeatable,
				ValueNodeType:       sc.ValueNodeType,
				ValueDataType:       sc.ValueDataType,
				ValueConstraint:     sc.ValueConstraint,
				ValueConstraintType: sc.ValueConstraintType,
				ValueShape:          sc.ValueShape,
				Note:                sc.Note,
			})
		}
		profile.Shapes = append(profile.Shapes, result)
	}
	return profile
}
