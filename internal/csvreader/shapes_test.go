// SPDX-License-Identifier: AGPL-3.0-or-later
package csvreader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dctap/internal/config"
	"dctap/internal/tapmodel"
)

func shapeIDs(shapes []*tapmodel.Shape) []string {
	ids := make([]string, 0, len(shapes))
	for _, s := range shapes {
		ids = append(ids, s.ShapeID)
	}
	return ids
}

func propertyIDs(shape *tapmodel.Shape) []string {
	ids := make([]string, 0, len(shape.StatementConstraints))
	for _, sc := range shape.StatementConstraints {
		ids = append(ids, sc.PropertyID)
	}
	return ids
}

func TestGroupShapes_CarryForward(t *testing.T) {
	records := []Record{
		{"shapeID": "A", "propertyID": "p1"},
		{"shapeID": "", "propertyID": "p2"},
		{"shapeID": "B", "propertyID": "p3"},
		{"shapeID": "", "propertyID": "p4"},
	}

	shapes, _ := groupShapes(records, &config.Settings{})
	require.Equal(t, []string{"A", "B"}, shapeIDs(shapes))

	// Rows without a key inherit the most recently established one:
	// p2 lands on A, p4 on B.
	assert.Equal(t, []string{"p1", "p2"}, propertyIDs(shapes[0]))
	assert.Equal(t, []string{"p3", "p4"}, propertyIDs(shapes[1]))
}

func TestGroupShapes_DefaultShape(t *testing.T) {
	record := Record{"propertyID": "dc:title"}
	settings := &config.Settings{DefaultShapeName: "default"}

	shapes, _ := groupShapes([]Record{record}, settings)
	require.Len(t, shapes, 1)
	assert.Equal(t, "default", shapes[0].ShapeID)

	// The synthesized key is written back into the record.
	assert.Equal(t, "default", record["shapeID"])
}

func TestGroupShapes_DefaultShapeFallbackLiteral(t *testing.T) {
	shapes, _ := groupShapes([]Record{{"propertyID": "dc:title"}}, &config.Settings{})
	require.Len(t, shapes, 1)
	assert.Equal(t, config.FallbackShapeName, shapes[0].ShapeID)
}

func TestGroupShapes_SkipsRowsWithoutPropertyID(t *testing.T) {
	records := []Record{
		{"shapeID": "A", "propertyID": "p1"},
		{"shapeID": "ignored", "propertyID": ""},
		{"shapeID": "", "propertyID": "p2"},
	}

	shapes, _ := groupShapes(records, &config.Settings{})
	require.Equal(t, []string{"A"}, shapeIDs(shapes))

	// The excluded row never advanced the carry-forward key, so p2
	// still lands on A.
	assert.Equal(t, []string{"p1", "p2"}, propertyIDs(shapes[0]))
}

func TestGroupShapes_ExcludedFirstRowDoesNotClaimDefault(t *testing.T) {
	records := []Record{
		{"shapeID": "", "propertyID": ""},
		{"shapeID": "", "propertyID": "p1"},
	}

	shapes, _ := groupShapes(records, &config.Settings{DefaultShapeName: "d"})
	require.Equal(t, []string{"d"}, shapeIDs(shapes))
}

func TestGroupShapes_ReopeningShapeKeepsIdentityAndOrder(t *testing.T) {
	records := []Record{
		{"shapeID": "A", "propertyID": "p1"},
		{"shapeID": "B", "propertyID": "p2"},
		{"shapeID": "A", "propertyID": "p3"},
		{"shapeID": "", "propertyID": "p4"},
	}

	shapes, _ := groupShapes(records, &config.Settings{})

	// A keeps its original position and object; the explicit reopening
	// re-establishes A as carry-forward target, so p4 follows p3.
	require.Equal(t, []string{"A", "B"}, shapeIDs(shapes))
	assert.Equal(t, []string{"p1", "p3", "p4"}, propertyIDs(shapes[0]))
	assert.Equal(t, []string{"p2"}, propertyIDs(shapes[1]))
}

func TestGroupShapes_ShapeFieldsFromIntroducingRow(t *testing.T) {
	records := []Record{
		{"shapeID": "A", "shapeLabel": "first label", "propertyID": "p1"},
		{"shapeID": "A", "shapeLabel": "second label", "propertyID": "p2"},
	}

	shapes, _ := groupShapes(records, &config.Settings{})
	require.Len(t, shapes, 1)
	assert.Equal(t, "first label", shapes[0].ShapeLabel)
}

func TestGroupShapes_EveryShapeGetsWarningBucket(t *testing.T) {
	records := []Record{
		{"shapeID": "A", "propertyID": "p1"},
		{"shapeID": "B", "propertyID": "p2"},
	}

	_, warnings := groupShapes(records, &config.Settings{})

	require.Contains(t, warnings, "A")
	require.Contains(t, warnings, "B")
	assert.Empty(t, warnings["A"])
	assert.Empty(t, warnings["B"])
}

func TestGroupShapes_WarningOrderWithinRow(t *testing.T) {
	// A shape identifier with whitespace warns at shape level; an
	// off-list mandatory value warns at statement level. Both rows of
	// the same shape append in source order.
	records := []Record{
		{"shapeID": "bad id", "propertyID": "p1", "mandatory": "maybe"},
	}

	_, warnings := groupShapes(records, &config.Settings{})
	require.Contains(t, warnings, "bad id")

	assert.Equal(t,
		[]string{`shape identifier "bad id" contains whitespace`},
		warnings["bad id"]["shapeID"])
	assert.Equal(t,
		[]string{`"maybe" is not a valid value for mandatory`},
		warnings["bad id"]["mandatory"])
}

func TestGroupShapes_WarningsAccumulateAcrossRows(t *testing.T) {
	records := []Record{
		{"shapeID": "A", "propertyID": "p1", "repeatable": "often"},
		{"shapeID": "", "propertyID": "p2", "repeatable": "rarely"},
	}

	_, warnings := groupShapes(records, &config.Settings{})

	assert.Equal(t, []string{
		`"often" is not a valid value for repeatable`,
		`"rarely" is not a valid value for repeatable`,
	}, warnings["A"]["repeatable"])
}
