// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"strings"
)

var (
	_ fmt.Stringer   = (*Graph)(nil)
	_ fmt.GoStringer = (*Graph)(nil)
)

// String renders every triple in display form, one per line, in insertion
// order. Each line, including the last, ends with "\n"; an empty graph
// renders as "".
func (g *Graph) String() string {
	var b strings.Builder
	for _, t := range g.Triples() {
		b.WriteString(t.String())
		b.WriteByte('\n')
	}

	return b.String()
}

// GoString is the debug analogue of String (quoted labels); used by %#v.
func (g *Graph) GoString() string {
	var b strings.Builder
	for _, t := range g.Triples() {
		b.WriteString(t.GoString())
		b.WriteByte('\n')
	}

	return b.String()
}
