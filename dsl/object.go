package dsl

import (
	"context"
	"fmt"
	"sort"

	coalcheck "github.com/coalwatch/coalcheck"
)

// DocRule is one named document-level predicate. Check receives the coerced
// field map (possibly partial when some fields failed structurally) and must
// guard against fields that are absent from it.
type DocRule struct {
	Name  string
	Check func(map[string]any) coalcheck.Issues
}

type objectBuilder struct {
	fields   map[string]AnyAdapter
	order    []string
	required map[string]struct{}
	refines  []DocRule
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new closed-object builder. Undeclared keys in the input
// are always a structural error; there is no strip or passthrough mode for
// published datasets.
func Object() *objectBuilder {
	return &objectBuilder{
		fields:   map[string]AnyAdapter{},
		required: map[string]struct{}{},
	}
}

// Field registers a field with its adapter, preserving declaration order.
func (b *objectBuilder) Field(name string, ad AnyAdapter) *fieldStep {
	if _, dup := b.fields[name]; !dup {
		b.order = append(b.order, name)
	}
	b.fields[name] = ad
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	f.b.required[f.name] = struct{}{}
	return f.b
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	delete(f.b.required, f.name)
	return f.b
}

func (f *fieldStep) Field(name string, ad AnyAdapter) *fieldStep { return f.b.Field(name, ad) }
func (f *fieldStep) Require(names ...string) *objectBuilder      { return f.b.Require(names...) }
func (f *fieldStep) Refine(name string, fn func(map[string]any) coalcheck.Issues) *objectBuilder {
	return f.b.Refine(name, fn)
}
func (f *fieldStep) Build() (coalcheck.Schema[map[string]any], error) { return f.b.Build() }
func (f *fieldStep) MustBuild() coalcheck.Schema[map[string]any]      { return f.b.MustBuild() }

// Require marks one or more fields as required.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		b.required[n] = struct{}{}
	}
	return b
}

// Refine adds a document-level rule, executed in declaration order after all
// fields have been processed.
func (b *objectBuilder) Refine(name string, fn func(map[string]any) coalcheck.Issues) *objectBuilder {
	if fn == nil {
		return b
	}
	b.refines = append(b.refines, DocRule{Name: name, Check: fn})
	return b
}

// Build finalizes the schema.
func (b *objectBuilder) Build() (coalcheck.Schema[map[string]any], error) {
	for _, n := range b.order {
		if _, ok := b.fields[n]; !ok {
			return nil, fmt.Errorf("dsl: field %q registered out of band", n)
		}
	}
	for n := range b.required {
		if _, ok := b.fields[n]; !ok {
			return nil, fmt.Errorf("dsl: required field %q is not declared", n)
		}
	}
	return &objectSchema{
		fields:   b.fields,
		order:    append([]string(nil), b.order...),
		required: b.required,
		refines:  append([]DocRule(nil), b.refines...),
	}, nil
}

// MustBuild finalizes the schema and panics on a declaration error. Dataset
// schemas are package-level constants, so a bad declaration should fail loud
// at init.
func (b *objectBuilder) MustBuild() coalcheck.Schema[map[string]any] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

type objectSchema struct {
	fields   map[string]AnyAdapter
	order    []string
	required map[string]struct{}
	refines  []DocRule
}

var _ coalcheck.Schema[map[string]any] = (*objectSchema)(nil)

func (o *objectSchema) Parse(ctx context.Context, v any) (map[string]any, error) {
	src, ok := v.(map[string]any)
	if !ok {
		return nil, invalidType("expected object")
	}

	out := make(map[string]any, len(src))
	var iss coalcheck.Issues
	for _, k := range o.order {
		ad := o.fields[k]
		val, exists := src[k]
		if !exists {
			if _, req := o.required[k]; req {
				iss = coalcheck.AppendIssues(iss, coalcheck.Issue{
					Path:    "/" + k,
					Code:    coalcheck.CodeRequired,
					Message: coalcheck.Message(coalcheck.CodeRequired),
					Hint:    "required property missing",
				})
				if coalcheck.IsFailFast(ctx) {
					return nil, iss
				}
			}
			continue
		}
		parsed, err := ad.parse(ctx, val)
		if err != nil {
			// coercion failed; the field's own rules cannot run on a
			// value of the wrong shape
			iss = coalcheck.AppendIssues(iss, coalcheck.Rebase("/"+k, coalcheck.IssuesOf("/", err))...)
			if coalcheck.IsFailFast(ctx) {
				return nil, iss
			}
			continue
		}
		out[k] = parsed
		if riss := ad.runRules(ctx, parsed); len(riss) > 0 {
			iss = coalcheck.AppendIssues(iss, coalcheck.Rebase("/"+k, riss)...)
			if coalcheck.IsFailFast(ctx) {
				return nil, iss
			}
		}
	}

	iss = coalcheck.AppendIssues(iss, o.collectUnknown(src)...)
	if coalcheck.IsFailFast(ctx) && len(iss) > 0 {
		return nil, iss
	}

	// Document rules run even when the document is structurally damaged:
	// the curator still wants business-rule findings for the fields that
	// did survive. Rules see the partially coerced map and skip absent
	// fields themselves.
	for _, r := range o.refines {
		for _, it := range r.Check(out) {
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
				return nil, iss
			}
		}
	}

	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

func (o *objectSchema) Validate(ctx context.Context, v any) error {
	_, err := o.Parse(ctx, v)
	return err
}

func (o *objectSchema) collectUnknown(src map[string]any) coalcheck.Issues {
	var unknown []string
	for k := range src {
		if _, known := o.fields[k]; !known {
			unknown = append(unknown, k)
		}
	}
	sort.Strings(unknown)
	var iss coalcheck.Issues
	for _, k := range unknown {
		iss = coalcheck.AppendIssues(iss, coalcheck.Issue{
			Path:    "/" + k,
			Code:    coalcheck.CodeUnknownKey,
			Message: coalcheck.Message(coalcheck.CodeUnknownKey),
		})
	}
	return iss
}

// Fields lists declared field names in declaration order.
func (o *objectSchema) Fields() []string { return append([]string(nil), o.order...) }

// FieldRules reports attached rule names per field, in execution order.
func (o *objectSchema) FieldRules() map[string][]string {
	out := make(map[string][]string, len(o.fields))
	for name, ad := range o.fields {
		if names := ad.RuleNames(); len(names) > 0 {
			out[name] = names
		}
	}
	return out
}

// DocRules lists document-level rule names in execution order.
func (o *objectSchema) DocRules() []string {
	names := make([]string, 0, len(o.refines))
	for _, r := range o.refines {
		names = append(names, r.Name)
	}
	return names
}
