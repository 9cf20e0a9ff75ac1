// SPDX-License-Identifier: AGPL-3.0-or-later
package csvreader

import (
	"dctap/internal/config"
	"dctap/internal/tapmodel"
)

// groupShapes partitions records into shapes. Records without a
// propertyID are excluded entirely: they contribute no constraint and
// never advance the carry-forward key.
//
// Key resolution is explicit carry-forward: currentID tracks the most
// recently established shape identifier and rows without one inherit
// it. The very first valid row with a blank shapeID receives the
// configured default name, which is also written back into the record
// so anything holding the record sees the key it was grouped under.
func groupShapes(records []Record, settings *config.Settings) ([]*tapmodel.Shape, Warnings) {
	var (
		shapes    []*tapmodel.Shape
		byID      = make(map[string]*tapmodel.Shape)
		warnings  = make(Warnings)
		currentID string
		first     = true
	)

	for _, record := range records {
		if record[elementPropertyID] == "" {
			continue
		}

		id := record[elementShapeID]
		if id == "" {
			if first {
				id = settings.ShapeName()
				record[elementShapeID] = id
			} else {
				id = currentID
			}
		}
		first = false
		currentID = id

		shape, ok := byID[id]
		if !ok {
			shape = &tapmodel.Shape{}
			populate(shape, record)
			byID[id] = shape
			shapes = append(shapes, shape)
			warnings.ensure(id)
		}

		shape.Normalize()
		warnings.merge(id, shape.DrainWarnings())

		sc := &tapmodel.StatementConstraint{}
		populate(sc, record)
		shape.Append(sc)
		sc.Normalize()
		warnings.merge(id, sc.DrainWarnings())
	}

	return shapes, warnings
}
