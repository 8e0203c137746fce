package rules

import (
	"fmt"
	"net/url"
	"reflect"
	"sort"
	"strconv"

	coalcheck "github.com/coalwatch/coalcheck"
)

// LengthIs fails unless the collection (or string) has exactly n elements.
func LengthIs(n int) func(any) coalcheck.Issues {
	return func(v any) coalcheck.Issues {
		ln, ok := lengthOf(v)
		if !ok {
			return nil
		}
		if ln != n {
			return violation(fmt.Sprintf("must be of length %d, got %d.", n, ln))
		}
		return nil
	}
}

// MinLen fails when the collection (or string) has fewer than k elements.
func MinLen(k int) func(any) coalcheck.Issues {
	return func(v any) coalcheck.Issues {
		ln, ok := lengthOf(v)
		if !ok {
			return nil
		}
		if ln < k {
			return violation(fmt.Sprintf("minimum length required: %d, got %d.", k, ln))
		}
		return nil
	}
}

// Unique fails when two elements of a list project to the same key. Every
// duplicate is reported at the index of its later occurrence, with the
// duplicated value in the message.
func Unique(proj func(any) any) func(any) coalcheck.Issues {
	return func(v any) coalcheck.Issues {
		items, ok := asSlice(v)
		if !ok {
			return nil
		}
		seen := make(map[any]int, len(items))
		var iss coalcheck.Issues
		for i, item := range items {
			key := proj(item)
			if first, dup := seen[key]; dup {
				iss = coalcheck.AppendIssues(iss, coalcheck.Issue{
					Path:    "/" + strconv.Itoa(i),
					Code:    coalcheck.CodeDuplicateKey,
					Message: fmt.Sprintf("duplicate value %v (first at index %d).", key, first),
					Params:  map[string]any{"value": key, "first": first},
				})
				continue
			}
			seen[key] = i
		}
		return iss
	}
}

// Self is the identity projection for Unique over scalar lists.
func Self(v any) any { return v }

// ByField projects a list element (a coerced object) to one of its fields,
// for Unique over object lists ("year", "country", "unit_id").
func ByField(name string) func(any) any {
	return func(v any) any {
		m, ok := v.(map[string]any)
		if !ok {
			return v
		}
		return m[name]
	}
}

// SortedByCapacity fails unless a ranked list is ordered by non-increasing
// capacity_mw. Equal capacities may appear in any relative order.
func SortedByCapacity(v any) coalcheck.Issues {
	items, ok := asSlice(v)
	if !ok {
		return nil
	}
	var iss coalcheck.Issues
	prev := 0.0
	for i, item := range items {
		m, ok := item.(map[string]any)
		if !ok {
			return nil
		}
		c, ok := numeric(m["capacity_mw"])
		if !ok {
			return nil
		}
		if i > 0 && c > prev {
			iss = coalcheck.AppendIssues(iss, coalcheck.Issue{
				Path:    "/" + strconv.Itoa(i),
				Code:    coalcheck.CodeConstraint,
				Message: fmt.Sprintf("must be sorted by the capacity: %v after %v.", c, prev),
			})
		}
		prev = c
	}
	return iss
}

// RequireKeys fails when any of the listed keys is absent from a mapping,
// reporting the full missing set in one issue.
func RequireKeys(keys ...string) func(any) coalcheck.Issues {
	return func(v any) coalcheck.Issues {
		present, ok := asKeySet(v)
		if !ok {
			return nil
		}
		var missing []string
		for _, k := range keys {
			if _, found := present[k]; !found {
				missing = append(missing, k)
			}
		}
		if len(missing) == 0 {
			return nil
		}
		sort.Strings(missing)
		return coalcheck.Issues{{
			Path:    "/",
			Code:    coalcheck.CodeMissingKeys,
			Message: fmt.Sprintf("expected keys: %v", missing),
			Params:  map[string]any{"missing": missing},
		}}
	}
}

// Each applies a scalar rule to every element of a list, rebasing issues
// under the element index.
func Each(fn func(any) coalcheck.Issues) func(any) coalcheck.Issues {
	return func(v any) coalcheck.Issues {
		items, ok := asSlice(v)
		if !ok {
			return nil
		}
		var iss coalcheck.Issues
		for i, item := range items {
			iss = coalcheck.AppendIssues(iss, coalcheck.Rebase("/"+strconv.Itoa(i), fn(item))...)
		}
		return iss
	}
}

// Keys applies a scalar rule to every key of a mapping, rebasing issues
// under the key (for maps whose key space carries a format, like article-id
// indexes).
func Keys(fn func(any) coalcheck.Issues) func(any) coalcheck.Issues {
	return func(v any) coalcheck.Issues {
		present, ok := asKeySet(v)
		if !ok {
			return nil
		}
		ks := make([]string, 0, len(present))
		for k := range present {
			ks = append(ks, k)
		}
		sort.Strings(ks)
		var iss coalcheck.Issues
		for _, k := range ks {
			iss = coalcheck.AppendIssues(iss, coalcheck.Rebase("/"+k, fn(k))...)
		}
		return iss
	}
}

// At lifts a value rule into a document rule over one field. Absent fields
// are skipped: a missing required field is already a structural issue, and a
// document rule must not cascade on top of it.
func At(field string, fn func(any) coalcheck.Issues) func(map[string]any) coalcheck.Issues {
	return func(doc map[string]any) coalcheck.Issues {
		v, ok := doc[field]
		if !ok || v == nil {
			return nil
		}
		return coalcheck.Rebase("/"+field, fn(v))
	}
}

// AtEach lifts a value rule into a document rule over several fields at
// once, for the catalog's repeated per-status and per-region checks.
func AtEach(fields []string, fn func(any) coalcheck.Issues) func(map[string]any) coalcheck.Issues {
	return func(doc map[string]any) coalcheck.Issues {
		var iss coalcheck.Issues
		for _, f := range fields {
			iss = coalcheck.AppendIssues(iss, At(f, fn)(doc)...)
		}
		return iss
	}
}

// ---- helpers ----

func numeric(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case int:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// floats normalizes a coerced list into []float64, accepting integral
// elements. Returns false for non-list or non-numeric content.
func floats(v any) ([]float64, bool) {
	switch s := v.(type) {
	case []float64:
		return s, true
	case []any:
		out := make([]float64, 0, len(s))
		for _, e := range s {
			f, ok := numeric(e)
			if !ok {
				return nil, false
			}
			out = append(out, f)
		}
		return out, true
	}
	return nil, false
}

// asSlice normalizes any coerced slice type into []any via reflection, the
// same trick the projection-based rules need to stay agnostic of element
// types.
func asSlice(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func asKeySet(v any) (map[string]struct{}, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]struct{}, rv.Len())
	for _, k := range rv.MapKeys() {
		out[k.String()] = struct{}{}
	}
	return out, true
}

func lengthOf(v any) (int, bool) {
	if s, ok := v.(string); ok {
		return len(s), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

func validURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
