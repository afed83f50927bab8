// SPDX-License-Identifier: MIT

package embedding

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// maxLineBytes bounds a single vector line (a 300-dim fastText line is ~4KB).
const maxLineBytes = 1 << 20

// LoadOption configures LoadText.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger *zap.Logger
	dims   int // expected dims; 0 = infer
	limit  int // max vectors; 0 = unlimited
}

// WithLogger sets the logger used for progress and header diagnostics.
func WithLogger(l *zap.Logger) LoadOption {
	return func(c *loadConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDims requires every vector to have exactly d components.
func WithDims(d int) LoadOption {
	return func(c *loadConfig) { c.dims = d }
}

// WithLimit stops reading after n vectors (n <= 0 means no limit).
func WithLimit(n int) LoadOption {
	return func(c *loadConfig) { c.limit = n }
}

// LoadTextFile opens path and delegates to LoadText.
func LoadTextFile(path string, opts ...LoadOption) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open embeddings %s", path)
	}
	defer f.Close()

	return LoadText(f, opts...)
}

// LoadText reads vectors in word2vec/fastText text format:
//
//	[count dims]          optional header
//	label v1 v2 ... vd    one vector per line
//
// Implementation:
//   - Stage 1: the first non-empty line is a header iff it is exactly two integers.
//   - Stage 2: dims come from WithDims, else the header, else the first vector.
//   - Stage 3: every vector line must carry a label plus dims floats.
//
// Behavior highlights:
//   - Blank lines are skipped.
//   - A repeated label keeps the last vector (Table.Put semantics).
//   - A header count that disagrees with the vectors read is logged, not fatal.
//
// Errors:
//   - ErrMalformedLine (with line number) for unparsable values or a missing label.
//   - ErrDimensionMismatch when a line's length differs from dims.
//   - ErrInvalidDims when nothing determines a positive dims.
func LoadText(r io.Reader, opts ...LoadOption) (*Table, error) {
	cfg := loadConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger.With(zap.String("component", "embedding.LoadText"))

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		tbl       *Table
		dims      = cfg.dims
		declared  = -1
		lineNo    int
		firstSeen bool
	)
	for sc.Scan() {
		lineNo++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if !firstSeen {
			firstSeen = true
			if n, d, ok := parseHeader(fields); ok {
				declared = n
				if dims == 0 {
					dims = d
				} else if d != dims {
					return nil, errors.Wrapf(ErrDimensionMismatch, "line %d: header dims %d, want %d", lineNo, d, dims)
				}
				log.Debug("vector file header", zap.Int("count", n), zap.Int("dims", d))
				continue
			}
		}
		if len(fields) < 2 {
			return nil, errors.Wrapf(ErrMalformedLine, "line %d: label without values", lineNo)
		}
		if dims == 0 {
			dims = len(fields) - 1
		}
		if tbl == nil {
			var err error
			if tbl, err = NewTable(dims); err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNo)
			}
		}
		label, vec, err := parseVector(fields, dims)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		if err = tbl.Put(label, vec); err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNo)
		}
		if cfg.limit > 0 && tbl.Len() >= cfg.limit {
			log.Debug("vector limit reached", zap.Int("limit", cfg.limit))
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read embeddings")
	}
	if tbl == nil {
		if dims <= 0 {
			return nil, errors.Wrap(ErrInvalidDims, "no vectors and no header")
		}
		tbl, _ = NewTable(dims)
	}
	if declared >= 0 && declared != tbl.Len() && cfg.limit <= 0 {
		log.Warn("header count differs from vectors read",
			zap.Int("declared", declared), zap.Int("read", tbl.Len()))
	}
	log.Info("embeddings loaded", zap.Int("vectors", tbl.Len()), zap.Int("dims", tbl.Dims()))

	return tbl, nil
}

// parseHeader recognises a "count dims" header line.
func parseHeader(fields []string) (count, dims int, ok bool) {
	if len(fields) != 2 {
		return 0, 0, false
	}
	c, err1 := strconv.Atoi(fields[0])
	d, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || c < 0 || d <= 0 {
		return 0, 0, false
	}

	return c, d, true
}

// parseVector splits "label v1..vd".
func parseVector(fields []string, dims int) (string, []float32, error) {
	if len(fields) < 2 {
		return "", nil, errors.Wrapf(ErrMalformedLine, "want label and %d values, got %d fields", dims, len(fields))
	}
	if len(fields)-1 != dims {
		return "", nil, errors.Wrapf(ErrDimensionMismatch, "label %q: %d values, want %d", fields[0], len(fields)-1, dims)
	}
	vec := make([]float32, dims)
	for i, f := range fields[1:] {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return "", nil, errors.Wrapf(ErrMalformedLine, "label %q: value %d %q", fields[0], i, f)
		}
		vec[i] = float32(v)
	}

	return fields[0], vec, nil
}
