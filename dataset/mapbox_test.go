package dataset_test

import (
	"context"
	"testing"

	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/dataset"
)

func feature(id string, lon, lat float64) map[string]any {
	return map[string]any{
		"type": "Feature",
		"id":   id,
		"geometry": map[string]any{
			"type":        "Point",
			"coordinates": []any{lon, lat},
		},
		"properties": map[string]any{
			"age":                           17,
			"capacity_mw":                   660,
			"coal_type":                     "Bituminous",
			"country":                       "China",
			"emission_factor_kg_co2_per_tj": 94600,
			"plant_name":                    "Tuoketuo",
			"status":                        "Operational",
			"technology":                    "Supercritical",
			"thermal_efficiency":            0.38,
			"unit_id":                       100231,
			"unit_name":                     "Tuoketuo 5",
		},
	}
}

func validMapbox() map[string]any {
	return map[string]any{
		"type": "FeatureCollection",
		"features": []any{
			feature("plant-100231", 111.36, 40.2),
			feature("plant-100232", 111.37, 40.21),
		},
	}
}

func TestMapbox_Valid(t *testing.T) {
	if _, err := dataset.Validate(context.Background(), "mapbox", validMapbox()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMapbox_AgeMayBeNA(t *testing.T) {
	doc := validMapbox()
	f := doc["features"].([]any)[0].(map[string]any)
	f["properties"].(map[string]any)["age"] = "N/A"

	if _, err := dataset.Validate(context.Background(), "mapbox", doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMapbox_CoordinatesOutOfRange(t *testing.T) {
	doc := validMapbox()
	f := doc["features"].([]any)[1].(map[string]any)
	f["geometry"].(map[string]any)["coordinates"] = []any{240.0, 40.2}

	_, err := dataset.Validate(context.Background(), "mapbox", doc)
	iss := mustIssues(t, err)
	if !hasIssue(iss, "/features/1/geometry/coordinates", coalcheck.CodeConstraint) {
		t.Fatalf("want the bad coordinate flagged in place, got %v", iss)
	}
}

func TestMapbox_DuplicateFeatureID(t *testing.T) {
	doc := validMapbox()
	doc["features"].([]any)[1].(map[string]any)["id"] = "plant-100231"

	_, err := dataset.Validate(context.Background(), "mapbox", doc)
	iss := mustIssues(t, err)
	if !hasIssue(iss, "/features/1", coalcheck.CodeDuplicateKey) {
		t.Fatalf("want the repeated id reported, got %v", iss)
	}
}

func TestMapbox_WrongCollectionType(t *testing.T) {
	doc := validMapbox()
	doc["type"] = "GeometryCollection"

	_, err := dataset.Validate(context.Background(), "mapbox", doc)
	iss := mustIssues(t, err)
	if !hasIssue(iss, "/type", coalcheck.CodeInvalidEnum) {
		t.Fatalf("only FeatureCollection is permitted, got %v", iss)
	}
}

func TestMapbox_UnknownStatus(t *testing.T) {
	doc := validMapbox()
	f := doc["features"].([]any)[0].(map[string]any)
	f["properties"].(map[string]any)["status"] = "Mothballed"

	_, err := dataset.Validate(context.Background(), "mapbox", doc)
	iss := mustIssues(t, err)
	if !hasIssue(iss, "/features/0/properties/status", coalcheck.CodeInvalidEnum) {
		t.Fatalf("statuses are a closed set, got %v", iss)
	}
}
