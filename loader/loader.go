// SPDX-License-Identifier: MIT

// Package loader decodes HCL triple files into a core.Graph.
//
// File shape:
//
//	directed = false                  # optional, default false
//
//	triple {
//	  subject  = "simon"
//	  relation = "plays"
//	  object   = "tennis"
//	}
//
//	tuples = [                        # optional
//	  ["tennis", "plays", "simon"],
//	]
//
// Triples are added in file order: every triple block first, then every tuple.
// directed = true selects core.Directed; otherwise the graph is undirected,
// matching core.FromTriples.
package loader

import (
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"github.com/katalvlaran/triples/core"
	"github.com/katalvlaran/triples/triple"
)

// ErrBadTuple indicates a tuples entry that is not exactly three strings.
var ErrBadTuple = errors.New("loader: tuple must have exactly 3 elements")

// hclTriple is one `triple { ... }` block.
type hclTriple struct {
	Subject  string `hcl:"subject"`
	Relation string `hcl:"relation"`
	Object   string `hcl:"object"`
}

// hclTripleFile is the top-level structure of a triple file.
type hclTripleFile struct {
	Directed bool         `hcl:"directed,optional"`
	Triples  []*hclTriple `hcl:"triple,block"`
	Tuples   [][]string   `hcl:"tuples,optional"`
}

// LoadFile reads path and delegates to Load.
func LoadFile(path string) (*core.Graph, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read triple file %s", path)
	}

	return Load(path, src)
}

// Load decodes src (named filename in diagnostics) into a new graph.
//
// Implementation:
//   - Stage 1: parse with hclparse, decode the body with gohcl.
//   - Stage 2: validate every tuple before touching the graph.
//   - Stage 3: build the graph under the selected policy.
//
// Errors:
//   - HCL diagnostics (parse or decode) wrapped with filename.
//   - ErrBadTuple with the tuple position.
func Load(filename string, src []byte) (*core.Graph, error) {
	hclFile, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "parse triple file %s", filename)
	}

	var parsed hclTripleFile
	if diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return nil, errors.Wrapf(diags, "decode triple file %s", filename)
	}

	ts := make([]triple.Triple, 0, len(parsed.Triples)+len(parsed.Tuples))
	for _, b := range parsed.Triples {
		ts = append(ts, triple.New(b.Subject, b.Relation, b.Object))
	}
	for i, tup := range parsed.Tuples {
		if len(tup) != 3 {
			return nil, errors.Wrapf(ErrBadTuple, "%s: tuples[%d] has %d elements", filename, i, len(tup))
		}
		ts = append(ts, triple.New(tup[0], tup[1], tup[2]))
	}

	policy := core.Undirected
	if parsed.Directed {
		policy = core.Directed
	}
	g := core.NewGraph(core.WithEdgePolicy(policy))
	g.AddTriples(ts...)

	return g, nil
}
