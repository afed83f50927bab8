// SPDX-License-Identifier: MIT

// Package triple defines the atomic statement of a knowledge graph: an
// ordered (subject, relation, object) triple of string labels.
//
// A Triple is an immutable, comparable value. Two triples are equal iff all
// three labels are byte-for-byte equal, so Triple can be used directly with
// == and as a map key.
//
// Rendering:
//
//	fmt.Sprint(t)   → (simon -- plays -- tennis)
//	fmt.Sprintf("%#v", t) → ("simon" -- "plays" -- "tennis")
package triple

import "fmt"

// Rendering literals shared by String and GoString.
const (
	_fmtDisplay = "(%s -- %s -- %s)"
	_fmtDebug   = "(%q -- %q -- %q)"
)

// Triple is a (subject, relation, object) statement.
// Fields are unexported so a Triple cannot change after New.
type Triple struct {
	subject  string // head label
	relation string // predicate label
	object   string // tail label
}

// Compile-time assertions for fmt conformance.
var (
	_ fmt.Stringer   = Triple{}
	_ fmt.GoStringer = Triple{}
)

// New creates a subject-relation-object triple.
// No validation is performed; empty labels are legal.
// Complexity: O(1).
func New(subject, relation, object string) Triple {
	return Triple{subject: subject, relation: relation, object: object}
}

// FromTuple builds a Triple from its raw 3-tuple form {subject, relation, object}.
func FromTuple(sro [3]string) Triple {
	return New(sro[0], sro[1], sro[2])
}

// Subject returns the head label.
func (t Triple) Subject() string { return t.subject }

// Relation returns the relation (predicate) label.
func (t Triple) Relation() string { return t.relation }

// Object returns the tail label.
func (t Triple) Object() string { return t.object }

// Tuple returns the raw {subject, relation, object} form.
func (t Triple) Tuple() [3]string {
	return [3]string{t.subject, t.relation, t.object}
}

// String renders the display form "(subject -- relation -- object)".
func (t Triple) String() string {
	return fmt.Sprintf(_fmtDisplay, t.subject, t.relation, t.object)
}

// GoString renders the debug form with quoted labels; used by %#v.
func (t Triple) GoString() string {
	return fmt.Sprintf(_fmtDebug, t.subject, t.relation, t.object)
}
