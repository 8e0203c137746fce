package dataset_test

import (
	"context"
	"testing"

	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/dataset"
)

func validCoalStatus() map[string]any {
	return map[string]any{
		"phase_out": map[string]any{
			"no_coal":                    []any{"ch", "no"},
			"phase_out_in_consideration": []any{"de", "pl"},
			"phase_out_by_2030":          []any{"gb", "fr", "it"},
			"phase_out_by_2040":          []any{"de"},
			"coal_free":                  []any{"se"},
			"ppca_member":                []any{"gb", "fr", "dk"},
		},
		"new_coal": map[string]any{
			"constructing_new_coal":             []any{"cn", "in", "id"},
			"planning_new_coal":                 []any{"cn", "in"},
			"committed_to_no_new_coal":          []any{"gb", "ca"},
			"part_of_no_new_coal_power_compact": []any{},
			"cancelled_coal":                    []any{"vn", "bd"},
		},
	}
}

func TestCoalStatus_Valid(t *testing.T) {
	if _, err := dataset.Validate(context.Background(), "coal_status", validCoalStatus()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCoalStatus_CompactMayBeEmpty(t *testing.T) {
	// covered by the valid fixture; the other buckets must not be empty
	doc := validCoalStatus()
	doc["phase_out"].(map[string]any)["coal_free"] = []any{}

	_, err := dataset.Validate(context.Background(), "coal_status", doc)
	iss := mustIssues(t, err)
	if !hasIssue(iss, "/phase_out/coal_free", coalcheck.CodeConstraint) {
		t.Fatalf("empty status buckets are invalid, got %v", iss)
	}
}

func TestCoalStatus_DuplicateMember(t *testing.T) {
	doc := validCoalStatus()
	doc["new_coal"].(map[string]any)["planning_new_coal"] = []any{"cn", "cn"}

	_, err := dataset.Validate(context.Background(), "coal_status", doc)
	iss := mustIssues(t, err)
	if !hasIssue(iss, "/new_coal/planning_new_coal/1", coalcheck.CodeDuplicateKey) {
		t.Fatalf("bucket members are unique, got %v", iss)
	}
}

func TestCoalStatus_UnknownCode(t *testing.T) {
	doc := validCoalStatus()
	doc["phase_out"].(map[string]any)["no_coal"] = []any{"ch", "xx"}

	_, err := dataset.Validate(context.Background(), "coal_status", doc)
	iss := mustIssues(t, err)
	if !hasIssue(iss, "/phase_out/no_coal/1", coalcheck.CodeInvalidEnum) {
		t.Fatalf("members come from the country universe, got %v", iss)
	}
}
