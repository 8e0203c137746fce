package dsl

import (
	"context"
	"encoding/json"
	"strconv"

	coalcheck "github.com/coalwatch/coalcheck"
)

// String returns the strict string schema. Numbers and bools are rejected.
func String() coalcheck.Schema[string] { return stringSchema{} }

// Bool returns the strict bool schema.
func Bool() coalcheck.Schema[bool] { return boolSchema{} }

// Int returns the strict integer schema. JSON numbers with a fractional part,
// floats, bools, and numeric strings are all rejected.
func Int() coalcheck.Schema[int64] { return intSchema{} }

// Float returns the floating-point schema. Any JSON number is accepted
// (integral literals are valid floats on the wire); bools and numeric
// strings are rejected.
func Float() coalcheck.Schema[float64] { return floatSchema{} }

// StringOf, BoolOf, IntOf, FloatOf adapt the primitives for Field builders.
func StringOf() AnyAdapter { return SchemaOf[string](String()) }
func BoolOf() AnyAdapter   { return SchemaOf[bool](Bool()) }
func IntOf() AnyAdapter    { return SchemaOf[int64](Int()) }
func FloatOf() AnyAdapter  { return SchemaOf[float64](Float()) }

func invalidType(hint string) coalcheck.Issues {
	return coalcheck.Issues{{Path: "/", Code: coalcheck.CodeInvalidType, Message: coalcheck.Message(coalcheck.CodeInvalidType), Hint: hint}}
}

type stringSchema struct{}

func (stringSchema) Parse(ctx context.Context, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", invalidType("expected string")
	}
	return s, nil
}

func (stringSchema) Validate(ctx context.Context, v any) error {
	_, err := (stringSchema{}).Parse(ctx, v)
	return err
}

type boolSchema struct{}

func (boolSchema) Parse(ctx context.Context, v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, invalidType("expected bool")
	}
	return b, nil
}

func (boolSchema) Validate(ctx context.Context, v any) error {
	_, err := (boolSchema{}).Parse(ctx, v)
	return err
}

type intSchema struct{}

func (intSchema) Parse(ctx context.Context, v any) (int64, error) {
	switch n := v.(type) {
	case json.Number:
		i64, err := n.Int64()
		if err != nil {
			return 0, invalidType("expected integer")
		}
		return i64, nil
	case int64:
		// already-coerced value; validation is a fixed point
		return n, nil
	case int:
		return int64(n), nil
	default:
		return 0, invalidType("expected integer")
	}
}

func (intSchema) Validate(ctx context.Context, v any) error {
	_, err := (intSchema{}).Parse(ctx, v)
	return err
}

type floatSchema struct{}

func (floatSchema) Parse(ctx context.Context, v any) (float64, error) {
	switch n := v.(type) {
	case json.Number:
		f64, err := strconv.ParseFloat(n.String(), 64)
		if err != nil {
			return 0, invalidType("expected number")
		}
		return f64, nil
	case float64:
		return n, nil
	default:
		return 0, invalidType("expected number")
	}
}

func (floatSchema) Validate(ctx context.Context, v any) error {
	_, err := (floatSchema{}).Parse(ctx, v)
	return err
}
