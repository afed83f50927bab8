// Command kgdemo builds a knowledge graph from an HCL triple file (or a
// built-in fixture) and prints its derived matrix views.
//
// Usage:
//
//	kgdemo [-triples FILE] [-embeddings FILE] [-embed-limit N] [-log-level L] [-log-format F] [FILE]
//
// Settings may also come from KG_* environment variables or a .env file;
// see internal/config.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/triples/core"
	"github.com/katalvlaran/triples/embedding"
	"github.com/katalvlaran/triples/features"
	"github.com/katalvlaran/triples/internal/config"
	"github.com/katalvlaran/triples/internal/logging"
	"github.com/katalvlaran/triples/loader"
	"github.com/katalvlaran/triples/matrix"
)

// fixture is used when no triple file is given.
var fixture = [][3]string{
	{"simon", "plays", "tennis"},
	{"simon", "lives", "melbourne"},
	{"tennis", "sport", "melbourne"},
	{"melbourne", "located", "australia"},
	{"tennis", "plays", "simon"},
	{"melbourne", "lives", "simon"},
	{"melbourne", "sport", "tennis"},
	{"australia", "located", "melbourne"},
}

func main() {
	if err := run(context.Background(), os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "kgdemo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, args []string) error {
	cfg, err := config.Load(args, out)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return errors.Wrap(err, "build logger")
	}
	defer func() { _ = logger.Sync() }()

	g, err := loadGraph(cfg, logger)
	if err != nil {
		return err
	}

	var src embedding.Source
	if cfg.EmbeddingsPath != "" {
		tbl, lerr := embedding.LoadTextFile(cfg.EmbeddingsPath,
			embedding.WithLogger(logger), embedding.WithLimit(cfg.EmbedLimit))
		if lerr != nil {
			return lerr
		}
		src = tbl
	}

	views, err := features.BuildAll(ctx, g, src)
	if errors.Is(err, matrix.ErrNodeIndexExceedsEdges) {
		logger.Warn("edge-relation matrix unavailable", zap.Error(err))
		views, err = buildWithoutRelations(g, src)
	}
	if err != nil {
		return err
	}
	logger.Debug("views built",
		zap.Int("nodes", g.NNodes()), zap.Int("edges", g.NEdges()), zap.Int("triples", g.NTriples()))

	report(out, g, views)

	return nil
}

func loadGraph(cfg *config.Config, logger *zap.Logger) (*core.Graph, error) {
	if cfg.TriplesPath == "" {
		logger.Info("no triple file given, using built-in fixture")
		return core.FromTuples(fixture), nil
	}
	g, err := loader.LoadFile(cfg.TriplesPath)
	if err != nil {
		return nil, err
	}
	logger.Info("triples loaded",
		zap.String("path", cfg.TriplesPath), zap.Int("triples", g.NTriples()), zap.Stringer("policy", g.Policy()))

	return g, nil
}

// buildWithoutRelations is the fallback when node indices outgrow the
// edge-relation matrix; every other view is still well-defined.
func buildWithoutRelations(g *core.Graph, src embedding.Source) (*features.Views, error) {
	v := g.Snapshot()
	var (
		views features.Views
		err   error
	)
	if views.Adjacency, err = matrix.AdjacencyOf(v); err != nil {
		return nil, err
	}
	if src == nil {
		return &views, nil
	}
	if views.NodeFeatures, err = features.NodeFeaturesOf(v, src); err != nil {
		return nil, err
	}
	if views.EdgeEmbeddings, err = features.EdgeEmbeddingsOf(v, src); err != nil {
		return nil, err
	}

	return &views, nil
}

func report(out io.Writer, g *core.Graph, views *features.Views) {
	fmt.Fprintf(out, "triples (%s):\n%s", g.Policy(), g)
	fmt.Fprintf(out, "nodes: %q\n", g.Nodes())
	fmt.Fprintf(out, "edges: %q\n", g.Edges())

	r, c := views.Adjacency.Shape()
	fmt.Fprintf(out, "adjacency %dx%d:\n%s", r, c, views.Adjacency)

	if views.EdgeRelations == nil {
		fmt.Fprintln(out, "edge relations: unavailable")
	} else {
		r, c = views.EdgeRelations.Shape()
		fmt.Fprintf(out, "edge relations %dx%d, %d stored:\n%s", r, c, views.EdgeRelations.NNZ(), views.EdgeRelations.ToDense())
	}

	if views.NodeFeatures != nil {
		r, c = views.NodeFeatures.Shape()
		fmt.Fprintf(out, "node features %dx%d\n", r, c)
		r, c = views.EdgeEmbeddings.Shape()
		fmt.Fprintf(out, "edge embeddings %dx%d\n", r, c)
	}
}
