/*
Package measure extracts size/measurement tables from free-text product
descriptions.

A description like

	S: bust 34in, waist 28in
	M: bust 36in, waist 30in

is turned into a Table with rows "S" and "M" and columns "Bust" and "Waist".
Extraction is heuristic: the text is normalized (see Normalize) and then run
through a list of strategies, each of which recognizes one common way sellers
write down size information. Strategies merge their findings into a single
table. The vocabulary (gate keywords, measurement terms, size tokens, units)
is kept in package-level variables, see rules.go.

Extraction never fails. Malformed input yields an empty table.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package measure

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'sizechart.measure'
func tracer() tracing.Trace {
	return tracing.Select("sizechart.measure")
}
