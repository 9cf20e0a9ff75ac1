// SPDX-License-Identifier: AGPL-3.0-or-later
package csvreader

import "dctap/internal/tapmodel"

// Warnings collects normalization messages keyed by shape identifier,
// then by element name. Message order within an element equals emission
// order: shape-level warnings before statement-level warnings within a
// row, source row order across rows. The collection grows monotonically
// and is never pruned.
type Warnings map[string]map[string][]string

// ensure creates an empty bucket for the shape on first use, so every
// shape appears in the collection even when nothing warned.
func (w Warnings) ensure(shapeID string) {
	if _, ok := w[shapeID]; !ok {
		w[shapeID] = make(map[string][]string)
	}
}

// merge appends a freshly emitted warning batch under the given shape,
// preserving batch order.
func (w Warnings) merge(shapeID string, batch []tapmodel.Warning) {
	if len(batch) == 0 {
		return
	}
	w.ensure(shapeID)
	for _, warning := range batch {
		w[shapeID][warning.Element] = append(w[shapeID][warning.Element], warning.Message)
	}
}
