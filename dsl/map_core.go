package dsl

import (
	"context"
	"fmt"
	"sort"

	coalcheck "github.com/coalwatch/coalcheck"
)

// Map returns a schema for JSON objects whose every value is validated by the
// element schema. Use Keys to close the key universe (enum-keyed maps such as
// per-country records keyed by ISO code) and RequireKeys to demand specific
// entries.
func Map[V any](elem coalcheck.Schema[V]) *MapSchema[V] {
	return &MapSchema[V]{elem: elem}
}

// MapOf adapts a built map schema to AnyAdapter for use in Field builders.
func MapOf[V any](m coalcheck.Schema[map[string]V]) AnyAdapter {
	return SchemaOf[map[string]V](m)
}

type MapSchema[V any] struct {
	elem    coalcheck.Schema[V]
	allowed map[string]struct{}
	require []string
}

// Keys restricts map keys to the given closed set. Unknown keys are reported
// as invalid_enum at the key's path.
func (m *MapSchema[V]) Keys(allowed []string) *MapSchema[V] {
	m.allowed = make(map[string]struct{}, len(allowed))
	for _, k := range allowed {
		m.allowed[k] = struct{}{}
	}
	return m
}

// RequireKeys demands that every listed key is present. The full missing set
// is reported in a single missing_keys issue.
func (m *MapSchema[V]) RequireKeys(keys ...string) *MapSchema[V] {
	m.require = append(m.require, keys...)
	return m
}

func (m *MapSchema[V]) Parse(ctx context.Context, v any) (map[string]V, error) {
	var raw map[string]any
	switch src := v.(type) {
	case map[string]any:
		raw = src
	case map[string]V:
		raw = make(map[string]any, len(src))
		for k, vv := range src {
			raw[k] = vv
		}
	default:
		return nil, invalidType("expected object")
	}

	// stable key order for deterministic issue ordering
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[string]V, len(raw))
	var iss coalcheck.Issues
	for _, k := range keys {
		if m.allowed != nil {
			if _, ok := m.allowed[k]; !ok {
				iss = coalcheck.AppendIssues(iss, coalcheck.Issue{
					Path:    "/" + k,
					Code:    coalcheck.CodeInvalidEnum,
					Message: coalcheck.Message(coalcheck.CodeInvalidEnum),
					Hint:    "key is not a member of the closed key set",
					Params:  map[string]any{"got": k},
				})
				if coalcheck.IsFailFast(ctx) {
					return nil, iss
				}
				continue
			}
		}
		ev, err := m.elem.Parse(ctx, raw[k])
		if err != nil {
			iss = coalcheck.AppendIssues(iss, coalcheck.Rebase("/"+k, coalcheck.IssuesOf("/", err))...)
			if coalcheck.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out[k] = ev
	}

	if missing := m.missingFrom(raw); len(missing) > 0 {
		iss = coalcheck.AppendIssues(iss, coalcheck.Issue{
			Path:    "/",
			Code:    coalcheck.CodeMissingKeys,
			Message: fmt.Sprintf("expected keys: %v", missing),
			Params:  map[string]any{"missing": missing},
		})
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (m *MapSchema[V]) Validate(ctx context.Context, v any) error {
	_, err := m.Parse(ctx, v)
	return err
}

func (m *MapSchema[V]) missingFrom(raw map[string]any) []string {
	var missing []string
	for _, k := range m.require {
		if _, ok := raw[k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return missing
}
