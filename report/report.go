// Package report renders validation outcomes for the publish gate: one
// section per dataset, one line per issue, and a single boolean summary the
// build can branch on. It is purely presentational; nothing here mutates or
// recovers.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	coalcheck "github.com/coalwatch/coalcheck"
)

// Entry is the outcome for one named dataset.
type Entry struct {
	Dataset string
	Issues  coalcheck.Issues
}

// Valid reports whether the dataset passed.
func (e Entry) Valid() bool { return len(e.Issues) == 0 }

// New builds an Entry from a validation error. Non-Issues errors (I/O,
// malformed JSON) are folded into a single parse_error issue so the report
// stays uniform.
func New(dataset string, err error) Entry {
	if err == nil {
		return Entry{Dataset: dataset}
	}
	return Entry{Dataset: dataset, Issues: coalcheck.IssuesOf("/", err)}
}

// Summary aggregates per-dataset entries for one release.
type Summary struct {
	entries []Entry
}

// Add records an entry.
func (s *Summary) Add(e Entry) { s.entries = append(s.entries, e) }

// Valid reports whether every dataset passed.
func (s *Summary) Valid() bool {
	for _, e := range s.entries {
		if !e.Valid() {
			return false
		}
	}
	return true
}

// IssueCount returns the total number of issues across datasets.
func (s *Summary) IssueCount() int {
	n := 0
	for _, e := range s.entries {
		n += len(e.Issues)
	}
	return n
}

// Render writes the human-readable report: datasets in name order, issues in
// engine order, each line "path: code message" with the rule name when one
// applies.
func (s *Summary) Render(w io.Writer) error {
	entries := append([]Entry(nil), s.entries...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Dataset < entries[j].Dataset })

	for _, e := range entries {
		if e.Valid() {
			if _, err := fmt.Fprintf(w, "%s: ok\n", e.Dataset); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %d issue(s)\n", e.Dataset, len(e.Issues)); err != nil {
			return err
		}
		for _, it := range e.Issues {
			if _, err := fmt.Fprintf(w, "  %s\n", renderIssue(it)); err != nil {
				return err
			}
		}
	}
	if s.Valid() {
		_, err := fmt.Fprintln(w, "all datasets valid")
		return err
	}
	_, err := fmt.Fprintf(w, "%d issue(s) across %d dataset(s)\n", s.IssueCount(), len(invalid(entries)))
	return err
}

func renderIssue(it coalcheck.Issue) string {
	b := &strings.Builder{}
	fmt.Fprintf(b, "%s: %s %s", it.Path, it.Code, it.Message)
	if it.Rule != "" {
		fmt.Fprintf(b, " [%s]", it.Rule)
	}
	return b.String()
}

func invalid(entries []Entry) []Entry {
	var out []Entry
	for _, e := range entries {
		if !e.Valid() {
			out = append(out, e)
		}
	}
	return out
}
