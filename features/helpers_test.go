package features_test

import "github.com/katalvlaran/triples/triple"

func tripleOf(t [3]string) triple.Triple { return triple.FromTuple(t) }
