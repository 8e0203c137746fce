package dsl

import (
	"context"
	"strconv"

	coalcheck "github.com/coalwatch/coalcheck"
)

// Array returns an array schema with the given element schema. Issues from an
// element are rebased under its index ("/3/year"). Length and content
// constraints attach as rules on the enclosing field.
func Array[E any](elem coalcheck.Schema[E]) coalcheck.Schema[[]E] {
	return arraySchema[E]{elem: elem}
}

// ArrayOf adapts Array[E] to AnyAdapter for use in Field builders.
// Example: Field("links", ArrayOf[string](String()).Rule("unique", ...))
func ArrayOf[E any](elem coalcheck.Schema[E]) AnyAdapter {
	return SchemaOf[[]E](Array[E](elem))
}

type arraySchema[E any] struct {
	elem coalcheck.Schema[E]
}

func (a arraySchema[E]) Parse(ctx context.Context, v any) ([]E, error) {
	var raw []any
	switch src := v.(type) {
	case []any:
		raw = src
	case []E:
		// already-coerced slice; re-validate element-wise for fixed-point parsing
		raw = make([]any, len(src))
		for i := range src {
			raw[i] = src[i]
		}
	default:
		return nil, invalidType("expected array")
	}

	out := make([]E, 0, len(raw))
	var iss coalcheck.Issues
	for i := range raw {
		ev, err := a.elem.Parse(ctx, raw[i])
		if err != nil {
			iss = coalcheck.AppendIssues(iss, coalcheck.Rebase("/"+strconv.Itoa(i), coalcheck.IssuesOf("/", err))...)
			if coalcheck.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out = append(out, ev)
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (a arraySchema[E]) Validate(ctx context.Context, v any) error {
	_, err := a.Parse(ctx, v)
	return err
}
