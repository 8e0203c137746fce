package coalcheck_test

import (
	"context"
	"testing"

	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/dsl"
)

func TestSafeParse(t *testing.T) {
	ctx := context.Background()
	if v, ok := coalcheck.SafeParse(ctx, dsl.Int(), intoAny("not a number")); ok || v != 0 {
		t.Fatalf("expected zero and false for invalid input, got %v, %v", v, ok)
	}
	if v, ok := coalcheck.SafeParse(ctx, dsl.String(), intoAny("hello")); !ok || v != "hello" {
		t.Fatalf("expected hello, got %v, %v", v, ok)
	}
}

func TestIs(t *testing.T) {
	ctx := context.Background()
	if !coalcheck.Is(ctx, dsl.Bool(), intoAny(true)) {
		t.Fatalf("true should satisfy the bool schema")
	}
	if coalcheck.Is(ctx, dsl.Bool(), intoAny("true")) {
		t.Fatalf("a string must not satisfy the bool schema")
	}
}

func TestFailFastContext(t *testing.T) {
	ctx := context.Background()
	if coalcheck.IsFailFast(ctx) {
		t.Fatalf("fail-fast must default to off")
	}
	ctx = coalcheck.WithFailFast(ctx, true)
	if !coalcheck.IsFailFast(ctx) {
		t.Fatalf("fail-fast flag should round-trip through the context")
	}
	ctx = coalcheck.WithFailFast(ctx, false)
	if coalcheck.IsFailFast(ctx) {
		t.Fatalf("fail-fast flag should be clearable")
	}
}

func intoAny(v any) any { return v }

func TestBind(t *testing.T) {
	type totals struct {
		TotalNumber     int64  `json:"total_number"`
		TotalCapacityMW int64  `json:"total_capacity_mw"`
		NetChange       string `json:"total_number_net_change"`
	}
	doc := map[string]any{
		"total_number":            int64(2412),
		"total_capacity_mw":       int64(2003119),
		"total_number_net_change": "-1.2%",
	}
	got, err := coalcheck.Bind[totals](doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.TotalNumber != 2412 || got.NetChange != "-1.2%" {
		t.Fatalf("unexpected binding: %+v", got)
	}
}
