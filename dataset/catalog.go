package dataset

import (
	"context"
	"fmt"
	"sort"

	coalcheck "github.com/coalwatch/coalcheck"
)

// Runner validates one document against a registered schema, erasing the
// schema's value type so heterogeneous datasets share a single registry.
type Runner func(ctx context.Context, doc any) (any, error)

var registry = map[string]Runner{}

func register[T any](name string, s coalcheck.Schema[T]) {
	if _, dup := registry[name]; dup {
		panic("dataset: duplicate registration of " + name)
	}
	registry[name] = func(ctx context.Context, doc any) (any, error) {
		v, err := s.Parse(ctx, doc)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// Names lists registered dataset names in ascending order.
func Names() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Lookup returns the runner for a dataset name.
func Lookup(name string) (Runner, bool) {
	r, ok := registry[name]
	return r, ok
}

// Validate checks doc against the named dataset schema. On success it
// returns the fully coerced document; on failure the complete Issues list.
// An unknown dataset name is a caller bug, reported as a single issue.
func Validate(ctx context.Context, name string, doc any) (any, error) {
	r, ok := registry[name]
	if !ok {
		return nil, coalcheck.Issues{{
			Path:    "/",
			Code:    coalcheck.CodeParseError,
			Message: fmt.Sprintf("unknown dataset %q", name),
			Hint:    "see dataset.Names() for registered schemas",
		}}
	}
	return r(ctx, doc)
}
