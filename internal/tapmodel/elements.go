// SPDX-License-Identifier: AGPL-3.0-or-later
package tapmodel

// ShapeElements returns the declared shape element names, in their
// documented order.
func ShapeElements() []string {
	return []string{"shapeID", "shapeLabel"}
}

// StatementElements returns the declared statement-constraint element
// names, in their documented order.
func StatementElements() []string {
	return []string{
		"propertyID",
		"propertyLabel",
		"mandatory",
		"repeatable",
		"valueNodeType",
		"valueDataType",
		"valueConstraint",
		"valueConstraintType",
		"valueShape",
		"note",
	}
}
