package dsl_test

import (
	"context"
	"encoding/json"
	"testing"

	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/dsl"
)

func TestArray_Valid(t *testing.T) {
	ctx := context.Background()
	out, err := dsl.Array(dsl.Int()).Parse(ctx, []any{json.Number("1"), json.Number("2")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out[0] != 1 || out[1] != 2 {
		t.Fatalf("want [1 2], got %v", out)
	}
}

func TestArray_ElementIssuesCarryIndex(t *testing.T) {
	ctx := context.Background()
	iss := mustIssues(t, dsl.Array(dsl.Int()).Validate(ctx, []any{
		json.Number("1"), "two", json.Number("3"), true,
	}))
	if len(iss) != 2 {
		t.Fatalf("want both bad elements reported, got %v", iss)
	}
	if !hasIssue(iss, "/1", coalcheck.CodeInvalidType) || !hasIssue(iss, "/3", coalcheck.CodeInvalidType) {
		t.Fatalf("issues should sit at the element index, got %v", iss)
	}
}

func TestArray_NestedObjectPaths(t *testing.T) {
	ctx := context.Background()
	point := dsl.Object().Field("year", dsl.IntOf()).Required().MustBuild()
	iss := mustIssues(t, dsl.Array(point).Validate(ctx, []any{
		map[string]any{"year": json.Number("2024")},
		map[string]any{},
	}))
	if !hasIssue(iss, "/1/year", coalcheck.CodeRequired) {
		t.Fatalf("nested issue should read /1/year, got %v", iss)
	}
}

func TestArray_NonArrayInput(t *testing.T) {
	ctx := context.Background()
	iss := mustIssues(t, dsl.Array(dsl.Int()).Validate(ctx, map[string]any{}))
	if !hasIssue(iss, "/", coalcheck.CodeInvalidType) {
		t.Fatalf("want invalid_type at root, got %v", iss)
	}
}

func TestArray_FixedPoint(t *testing.T) {
	ctx := context.Background()
	out, err := dsl.Array(dsl.Int()).Parse(ctx, []any{json.Number("7")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// []int64 re-validates element-wise
	if again, err := dsl.Array(dsl.Int()).Parse(ctx, out); err != nil || again[0] != 7 {
		t.Fatalf("coerced slice should re-parse, got %v, %v", again, err)
	}
}

func TestArray_FailFast(t *testing.T) {
	ctx := coalcheck.WithFailFast(context.Background(), true)
	iss := mustIssues(t, dsl.Array(dsl.Int()).Validate(ctx, []any{"a", "b"}))
	if len(iss) != 1 {
		t.Fatalf("fail-fast should stop at the first element, got %v", iss)
	}
}
