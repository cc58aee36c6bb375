// Command bsearch loads a dataset from a YAML file and prints every index at
// which each query occurs.
//
//	bsearch dataset.yaml 2 3 6
//
// The dataset's order can be overridden with BSEARCH_ORDER=ascending|descending.
// Logging is configured with LOG_JSON, LOG_LEVEL and LOG_OUTPUT.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amp-labs/amp-bsearch/bsearch"
	"github.com/amp-labs/amp-bsearch/envutil"
	"github.com/amp-labs/amp-bsearch/hashing"
	"github.com/amp-labs/amp-bsearch/logger"
	"github.com/amp-labs/amp-bsearch/sortable"
	"github.com/amp-labs/amp-bsearch/sorted"
)

var ErrUsage = errors.New("usage: bsearch <dataset.yaml> <query>...")

func main() {
	ctx := context.Background()

	if _, err := logger.ConfigureLogging(ctx, "bsearch"); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		logger.Get(ctx).Error("bsearch failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) < 1 {
		return ErrUsage
	}

	ds, err := loadDataset(args[0])
	if err != nil {
		return err
	}

	order, err := envutil.OneOf(ctx, "BSEARCH_ORDER",
		[]string{orderAscending, orderDescending}, envutil.Default(ds.Order)).Value()
	if err != nil {
		return err
	}

	values := ds.Values
	queries := args[1:]

	fingerprint, err := hashing.Fingerprint(values, func(s string) string { return s }, hashing.Xxh3)
	if err != nil {
		return fmt.Errorf("fingerprinting dataset: %w", err)
	}

	ctx = logger.With(ctx, "dataset", fingerprint, "kind", ds.Kind, "order", order)
	logger.Get(ctx).Info("loaded dataset", "path", args[0], "size", len(values), "queries", len(queries))

	switch ds.Kind {
	case kindInt:
		return runInts(ctx, out, order, values, queries)
	case kindNatural:
		return runNatural(ctx, out, order, values, queries)
	default:
		if order == orderDescending {
			return report(ctx, out, sorted.Descend(values), queries, queries)
		}

		return report(ctx, out, sorted.Ascend(values), queries, queries)
	}
}

func runInts(ctx context.Context, out io.Writer, order string, values, queries []string) error {
	data, err := parseInts(values)
	if err != nil {
		return fmt.Errorf("dataset: %w", err)
	}

	qs, err := parseInts(queries)
	if err != nil {
		return fmt.Errorf("query: %w", err)
	}

	if order == orderDescending {
		return report(ctx, out, sorted.Descend(data), qs, queries)
	}

	return report(ctx, out, sorted.Ascend(data), qs, queries)
}

func runNatural(ctx context.Context, out io.Writer, order string, values, queries []string) error {
	data := toNatural(values)
	qs := toNatural(queries)

	if order == orderDescending {
		return report(ctx, out,
			sorted.New[sortable.NaturalString, sortable.Descending[sortable.NaturalString]](data), qs, queries)
	}

	return report(ctx, out,
		sorted.New[sortable.NaturalString, sortable.Ascending[sortable.NaturalString]](data), qs, queries)
}

func toNatural(values []string) []sortable.NaturalString {
	out := make([]sortable.NaturalString, len(values))
	for i, v := range values {
		out[i] = sortable.NaturalString(v)
	}

	return out
}

// report searches for every query and writes one "label: [indices]" line each.
func report[T any, D sorted.Direction[T]](
	ctx context.Context,
	out io.Writer,
	c *sorted.Container[T, D],
	queries []T,
	labels []string,
) error {
	log := logger.Get(ctx)

	for i, q := range queries {
		res := bsearch.Search(q, c)

		log.Debug("searched", "query", labels[i], "matches", res.Len())

		if _, err := fmt.Fprintf(out, "%s: %s\n", labels[i], res); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}

	return nil
}
