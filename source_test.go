package coalcheck_test

import (
	"encoding/json"
	"testing"

	coalcheck "github.com/coalwatch/coalcheck"
)

func TestDecodeJSON_PreservesNumberPrecision(t *testing.T) {
	doc, err := coalcheck.DecodeJSON([]byte(`{"year": 2024, "share": 61.5}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := doc.(map[string]any)
	if !ok {
		t.Fatalf("expected a map, got %T", doc)
	}
	n, ok := m["year"].(json.Number)
	if !ok {
		t.Fatalf("numbers must decode as json.Number, got %T", m["year"])
	}
	if n.String() != "2024" {
		t.Fatalf("want 2024, got %s", n)
	}
}

func TestDecodeJSON_ParseError(t *testing.T) {
	_, err := coalcheck.DecodeJSON([]byte(`{"year": `))
	iss, ok := coalcheck.AsIssues(err)
	if !ok || len(iss) == 0 {
		t.Fatalf("expected issues, got %v", err)
	}
	if iss[0].Code != coalcheck.CodeParseError {
		t.Fatalf("want parse_error, got %s", iss[0].Code)
	}
}

func TestDecodeJSON_RejectsTrailingContent(t *testing.T) {
	_, err := coalcheck.DecodeJSON([]byte(`{"a": 1} {"b": 2}`))
	iss, ok := coalcheck.AsIssues(err)
	if !ok || len(iss) == 0 || iss[0].Code != coalcheck.CodeParseError {
		t.Fatalf("expected a parse_error for trailing content, got %v", err)
	}
}

func TestScanDuplicateKeys(t *testing.T) {
	data := []byte(`{"a": 1, "b": {"x": 1, "x": 2}, "a": 3}`)

	iss := coalcheck.ScanDuplicateKeys(data, coalcheck.DupWarn)
	if len(iss) != 2 {
		t.Fatalf("expected two duplicates, got %d: %v", len(iss), iss)
	}
	paths := map[string]bool{}
	for _, it := range iss {
		if it.Code != coalcheck.CodeDuplicateKey {
			t.Fatalf("want duplicate_key, got %s", it.Code)
		}
		paths[it.Path] = true
	}
	if !paths["/b/x"] || !paths["/a"] {
		t.Fatalf("expected duplicates at /b/x and /a, got %v", paths)
	}
}

func TestScanDuplicateKeys_NestedInArray(t *testing.T) {
	data := []byte(`{"items": [{"id": 1}, {"id": 1, "id": 2}]}`)
	iss := coalcheck.ScanDuplicateKeys(data, coalcheck.DupWarn)
	if len(iss) != 1 {
		t.Fatalf("expected one duplicate, got %v", iss)
	}
	if iss[0].Path != "/items/1/id" {
		t.Fatalf("duplicate should carry the array index in its path, got %q", iss[0].Path)
	}
}

func TestScanDuplicateKeys_ScalarSiblingsAdvanceIndex(t *testing.T) {
	data := []byte(`{"list": ["x", "y", {"a": 1, "a": 2}]}`)
	iss := coalcheck.ScanDuplicateKeys(data, coalcheck.DupWarn)
	if len(iss) != 1 {
		t.Fatalf("expected one duplicate, got %v", iss)
	}
	if iss[0].Path != "/list/2/a" {
		t.Fatalf("scalar siblings must count toward the index, got %q", iss[0].Path)
	}
}

func TestScanDuplicateKeys_MixedElementKinds(t *testing.T) {
	data := []byte(`{"list": [1, true, null, [2, 3], {"k": 1, "k": 2}]}`)
	iss := coalcheck.ScanDuplicateKeys(data, coalcheck.DupWarn)
	if len(iss) != 1 {
		t.Fatalf("expected one duplicate, got %v", iss)
	}
	if iss[0].Path != "/list/4/k" {
		t.Fatalf("every element kind advances the index, got %q", iss[0].Path)
	}
}

func TestScanDuplicateKeys_Policies(t *testing.T) {
	data := []byte(`{"a": 1, "a": 2, "b": 1, "b": 2}`)

	if iss := coalcheck.ScanDuplicateKeys(data, coalcheck.DupIgnore); iss != nil {
		t.Fatalf("ignore policy must not scan, got %v", iss)
	}
	if iss := coalcheck.ScanDuplicateKeys(data, coalcheck.DupError); len(iss) != 1 {
		t.Fatalf("error policy should stop at the first duplicate, got %v", iss)
	}
	if iss := coalcheck.ScanDuplicateKeys(data, coalcheck.DupWarn); len(iss) != 2 {
		t.Fatalf("warn policy should report every duplicate, got %v", iss)
	}
}

func TestScanDuplicateKeys_CleanDocument(t *testing.T) {
	data := []byte(`{"a": {"b": [1, 2, {"c": true}]}, "d": "x"}`)
	if iss := coalcheck.ScanDuplicateKeys(data, coalcheck.DupError); len(iss) != 0 {
		t.Fatalf("clean document should have no findings, got %v", iss)
	}
}
