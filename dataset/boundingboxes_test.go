package dataset_test

import (
	"context"
	"testing"

	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/dataset"
)

func box(iso, name string, bounds []any) map[string]any {
	return map[string]any{"iso": iso, "name": name, "bounds": bounds}
}

func validBoundingBoxes() map[string]any {
	return map[string]any{
		"countries": map[string]any{
			"us": box("us", "United States", []any{-125.0, 24.5, -66.9, 49.4}),
			"in": box("in", "India", []any{68.1, 6.5, 97.4, 35.6}),
			"cn": box("cn", "China", []any{73.5, 18.2, 135.1, 53.6}),
		},
	}
}

func TestBoundingBoxes_Valid(t *testing.T) {
	if _, err := dataset.Validate(context.Background(), "bounding_boxes", validBoundingBoxes()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBoundingBoxes_SwappedEdges(t *testing.T) {
	doc := validBoundingBoxes()
	doc["countries"].(map[string]any)["cn"] = box("cn", "China", []any{135.1, 18.2, 73.5, 53.6})

	_, err := dataset.Validate(context.Background(), "bounding_boxes", doc)
	iss := mustIssues(t, err)
	if !hasIssue(iss, "/countries/cn/bounds", coalcheck.CodeConstraint) {
		t.Fatalf("want the inverted box rejected, got %v", iss)
	}
}

func TestBoundingBoxes_MissingMandatoryPages(t *testing.T) {
	doc := validBoundingBoxes()
	delete(doc["countries"].(map[string]any), "in")

	_, err := dataset.Validate(context.Background(), "bounding_boxes", doc)
	iss := mustIssues(t, err)
	if !hasIssue(iss, "/countries", coalcheck.CodeMissingKeys) {
		t.Fatalf("us and in are mandatory, got %v", iss)
	}
}

func TestBoundingBoxes_UnknownCountryKey(t *testing.T) {
	doc := validBoundingBoxes()
	doc["countries"].(map[string]any)["xx"] = box("xx", "China", []any{0.0, 0.0, 1.0, 1.0})

	_, err := dataset.Validate(context.Background(), "bounding_boxes", doc)
	iss := mustIssues(t, err)
	if !hasIssue(iss, "/countries/xx", coalcheck.CodeInvalidEnum) {
		t.Fatalf("country keys are a closed set, got %v", iss)
	}
}

func TestBoundingBoxes_BadIsoLength(t *testing.T) {
	doc := validBoundingBoxes()
	doc["countries"].(map[string]any)["us"] = box("usa", "United States", []any{-125.0, 24.5, -66.9, 49.4})

	_, err := dataset.Validate(context.Background(), "bounding_boxes", doc)
	iss := mustIssues(t, err)
	if !hasIssue(iss, "/countries/us/iso", coalcheck.CodeConstraint) {
		t.Fatalf("iso fields are two characters, got %v", iss)
	}
}
