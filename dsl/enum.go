package dsl

import (
	"context"
	"fmt"
	"sort"

	coalcheck "github.com/coalwatch/coalcheck"
)

// Enum returns a string schema restricted to the given closed literal set.
func Enum(values ...string) coalcheck.Schema[string] {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return enumSchema{set: set}
}

// EnumOf adapts Enum for Field builders.
func EnumOf(values ...string) AnyAdapter { return SchemaOf[string](Enum(values...)) }

// Literal is a single-member enum, for constant discriminator fields such as
// "Feature" or "FeatureCollection".
func Literal(value string) coalcheck.Schema[string] { return Enum(value) }

// LiteralOf adapts Literal for Field builders.
func LiteralOf(value string) AnyAdapter { return SchemaOf[string](Literal(value)) }

type enumSchema struct {
	set map[string]struct{}
}

func (e enumSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalidType("expected string")
	}
	if _, ok := e.set[s]; !ok {
		return "", coalcheck.Issues{{
			Path:    "/",
			Code:    coalcheck.CodeInvalidEnum,
			Message: coalcheck.Message(coalcheck.CodeInvalidEnum),
			Hint:    fmt.Sprintf("%d permitted values", len(e.set)),
			Params:  map[string]any{"got": s},
		}}
	}
	return s, nil
}

func (e enumSchema) Validate(ctx context.Context, v any) error {
	_, err := e.Parse(ctx, v)
	return err
}

// Members lists the permitted values in ascending order.
func (e enumSchema) Members() []string {
	out := make([]string, 0, len(e.set))
	for v := range e.set {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
