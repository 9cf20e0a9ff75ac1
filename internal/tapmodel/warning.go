// SPDX-License-Identifier: AGPL-3.0-or-later
package tapmodel

// Warning is a non-fatal message produced while normalizing a single
// entity field. Warnings are data, not errors: they are accumulated and
// reported, never raised.
type Warning struct {
	Element string
	Message string
}
