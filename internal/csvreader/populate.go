// SPDX-License-Identifier: AGPL-3.0-or-later
package csvreader

// entity is anything with a declared element set that can be filled
// from a record. Both tapmodel.Shape and tapmodel.StatementConstraint
// satisfy it.
type entity interface {
	Elements() map[string]*string
}

// populate copies every record column whose name is a declared element
// of the target. Declared elements missing from the record keep their
// defaults; record columns outside the declared set are ignored.
// Partial overlap is not an error; populate is total.
func populate(e entity, record Record) {
	for name, field := range e.Elements() {
		if value, ok := record[name]; ok {
			*field = value
		}
	}
}
