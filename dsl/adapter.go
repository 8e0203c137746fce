package dsl

import (
	"context"

	coalcheck "github.com/coalwatch/coalcheck"
)

// FieldRule is one named predicate attached to a field. Check receives the
// coerced field value and returns every violation it finds.
type FieldRule struct {
	Name  string
	Check func(any) coalcheck.Issues
}

// AnyAdapter adapts Schema[T] to an any-typed DSL wrapper so heterogeneous
// fields can live in one builder. It carries the ordered rule list for the
// field.
type AnyAdapter struct {
	parse func(context.Context, any) (any, error)
	rules []FieldRule
}

// SchemaOf wraps a strongly typed Schema[T] as an AnyAdapter for Field builders.
func SchemaOf[T any](s coalcheck.Schema[T]) AnyAdapter {
	return AnyAdapter{
		parse: func(ctx context.Context, v any) (any, error) { return s.Parse(ctx, v) },
	}
}

// Rule attaches a named rule to the field. Rules run in attachment order
// after coercion succeeds; every rule runs regardless of earlier failures on
// the same field.
func (ad AnyAdapter) Rule(name string, fn func(any) coalcheck.Issues) AnyAdapter {
	out := ad
	out.rules = append(append([]FieldRule(nil), ad.rules...), FieldRule{Name: name, Check: fn})
	return out
}

// RuleNames lists attached rule names in execution order.
func (ad AnyAdapter) RuleNames() []string {
	names := make([]string, 0, len(ad.rules))
	for _, r := range ad.rules {
		names = append(names, r.Name)
	}
	return names
}

// runRules executes the field's rules against a coerced value, stamping the
// rule name and default code/message on every issue.
func (ad AnyAdapter) runRules(ctx context.Context, v any) coalcheck.Issues {
	var iss coalcheck.Issues
	for _, r := range ad.rules {
		more := r.Check(v)
		for _, it := range more {
			if it.Code == "" {
				it.Code = coalcheck.CodeConstraint
			}
			if it.Message == "" {
				it.Message = coalcheck.Message(it.Code)
			}
			if it.Rule == "" {
				it.Rule = r.Name
			}
			iss = coalcheck.AppendIssues(iss, it)
			if coalcheck.IsFailFast(ctx) {
				return iss
			}
		}
	}
	return iss
}

// OrLiteral accepts the exact literal lit in place of the wrapped field type.
// It covers the catalog's "N/A"-or-value fields (plant age, footnote links).
func OrLiteral(lit any, ad AnyAdapter) AnyAdapter {
	prev := ad.parse
	out := ad
	out.parse = func(ctx context.Context, v any) (any, error) {
		if v == lit {
			return v, nil
		}
		return prev(ctx, v)
	}
	// literal values bypass the wrapped rules as well
	rules := out.rules
	out.rules = nil
	for _, r := range rules {
		check := r.Check
		out = out.Rule(r.Name, func(v any) coalcheck.Issues {
			if v == lit {
				return nil
			}
			return check(v)
		})
	}
	return out
}
