package report_test

import (
	"errors"
	"strings"
	"testing"

	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/report"
)

func TestSummary_AllValid(t *testing.T) {
	var s report.Summary
	s.Add(report.New("home_page", nil))
	s.Add(report.New("mapbox", nil))

	if !s.Valid() || s.IssueCount() != 0 {
		t.Fatalf("clean entries should make a valid summary")
	}

	var b strings.Builder
	if err := s.Render(&b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(b.String(), "all datasets valid") {
		t.Fatalf("unexpected output:\n%s", b.String())
	}
}

func TestSummary_RendersIssuesPerDataset(t *testing.T) {
	iss := coalcheck.Issues{
		{Path: "/year", Code: coalcheck.CodeConstraint, Message: "year out of range.", Rule: "valid_year"},
		{Path: "/extra", Code: coalcheck.CodeUnknownKey, Message: "unknown key."},
	}
	var s report.Summary
	s.Add(report.New("mapbox", nil))
	s.Add(report.New("home_page", error(iss)))

	if s.Valid() {
		t.Fatalf("a failing entry should invalidate the summary")
	}
	if s.IssueCount() != 2 {
		t.Fatalf("want 2 issues, got %d", s.IssueCount())
	}

	var b strings.Builder
	if err := s.Render(&b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := b.String()
	if !strings.Contains(out, "home_page") {
		t.Fatalf("failing dataset should be named:\n%s", out)
	}
	if !strings.Contains(out, "/year") || !strings.Contains(out, "constraint") {
		t.Fatalf("issue lines should carry path and code:\n%s", out)
	}
	if !strings.Contains(out, "valid_year") {
		t.Fatalf("issue lines should name the rule when known:\n%s", out)
	}
}

func TestNew_WrapsForeignErrors(t *testing.T) {
	e := report.New("news_feed", errors.New("read failed"))
	if e.Valid() {
		t.Fatalf("a foreign error still fails the dataset")
	}
	if len(e.Issues) != 1 || e.Issues[0].Code != coalcheck.CodeParseError {
		t.Fatalf("foreign errors wrap as parse_error, got %v", e.Issues)
	}
}
