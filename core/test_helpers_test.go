// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import (
	"github.com/katalvlaran/triples/core"
	"github.com/katalvlaran/triples/triple"
)

// Labels used across tests.
const (
	Simon     = "simon"
	Tennis    = "tennis"
	Melbourne = "melbourne"
	Australia = "australia"

	Plays   = "plays"
	Lives   = "lives"
	Sport   = "sport"
	Located = "located"
)

// SRO is the acceptance fixture: eight triples over four nodes.
var SRO = [][3]string{
	{Simon, Plays, Tennis},
	{Simon, Lives, Melbourne},
	{Tennis, Sport, Melbourne},
	{Melbourne, Located, Australia},
	{Tennis, Plays, Simon},
	{Melbourne, Lives, Simon},
	{Melbourne, Sport, Tennis},
	{Australia, Located, Melbourne},
}

// sroTriples converts SRO into triple values.
func sroTriples() []triple.Triple {
	out := make([]triple.Triple, len(SRO))
	for i, t := range SRO {
		out[i] = triple.FromTuple(t)
	}

	return out
}

// newDirectedSRO builds the fixture under the Directed policy.
func newDirectedSRO() *core.Graph {
	g := core.NewGraph(core.WithDirected())
	g.AddTriples(sroTriples()...)

	return g
}
