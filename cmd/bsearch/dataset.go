package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownKind  = errors.New("unknown dataset kind")
	ErrUnknownOrder = errors.New("unknown dataset order")
	ErrBadValue     = errors.New("bad value")
)

const (
	kindInt     = "int"
	kindString  = "string"
	kindNatural = "natural"

	orderAscending  = "ascending"
	orderDescending = "descending"
)

// dataset is the on-disk description of what to search. Values are kept as
// the literal scalar text from the file ("007" stays "007"):
//
//	kind: int
//	order: descending
//	values: [1, 2, 3, 2, 2, 3, 3, 4, 4, 5]
type dataset struct {
	Kind   string   `yaml:"kind"`
	Order  string   `yaml:"order"`
	Values []string `yaml:"values"`
}

func loadDataset(path string) (*dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var ds dataset
	if err := yaml.Unmarshal(raw, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}

	ds.Kind = normalize(ds.Kind, kindInt)
	ds.Order = normalize(ds.Order, orderAscending)

	switch ds.Kind {
	case kindInt, kindString, kindNatural:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, ds.Kind)
	}

	switch ds.Order {
	case orderAscending, orderDescending:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, ds.Order)
	}

	return &ds, nil
}

// normalize lower-cases and trims s, returning dflt when nothing is left.
func normalize(s, dflt string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return dflt
	}

	return s
}

func parseInts(values []string) ([]int, error) {
	out := make([]int, len(values))

	for i, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not an int", ErrBadValue, v)
		}

		out[i] = n
	}

	return out, nil
}
