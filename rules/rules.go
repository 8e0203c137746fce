// Package rules holds the predicate library for the dataset catalog: scalar
// format checks (years, dates, percentage strings, coordinates) and
// collection checks (uniqueness, length, ordering, required keys).
//
// Every rule is a pure function from a coerced value to the complete set of
// violations it can see. Scalar rules ignore values of the wrong type: type
// errors are the engine's job, and a rule must never cascade on top of an
// invalid_type issue for the same field.
package rules

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	coalcheck "github.com/coalwatch/coalcheck"
)

func violation(msg string) coalcheck.Issues {
	return coalcheck.Issues{{Path: "/", Code: coalcheck.CodeConstraint, Message: msg}}
}

// NonNegative fails when a numeric value is below zero.
func NonNegative(v any) coalcheck.Issues {
	if f, ok := numeric(v); ok && f < 0 {
		return violation("must be non-negative.")
	}
	return nil
}

// ValidYear fails unless an integer year falls within 2000..2050.
func ValidYear(v any) coalcheck.Issues {
	n, ok := v.(int64)
	if !ok {
		return nil
	}
	if n < 2000 || n > 2050 {
		return violation("year must be between 2000 and 2050.")
	}
	return nil
}

// PercentageString passes "N/A" verbatim; otherwise strips one trailing '%'
// and requires the remainder to parse as a float ("12.5%", "-3%").
func PercentageString(v any) coalcheck.Issues {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	if s == "N/A" {
		return nil
	}
	if _, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64); err != nil {
		return violation(fmt.Sprintf("%q is not a percentage string.", s))
	}
	return nil
}

// americanDateLayout matches the site's editorial convention exactly: full
// month name, day, comma, four-digit year.
const americanDateLayout = "January 2, 2006"

// AmericanDate fails unless the string parses as e.g. "March 14, 2024".
func AmericanDate(v any) coalcheck.Issues {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	if _, err := time.Parse(americanDateLayout, s); err != nil {
		return violation(fmt.Sprintf("%q is not a '%s' date.", s, americanDateLayout))
	}
	return nil
}

// ArticleID requires the lightweight provenance tag on article identifiers:
// the id must mention its source feed, "coalwire" or "newsapi".
func ArticleID(v any) coalcheck.Issues {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	l := strings.ToLower(s)
	if !strings.Contains(l, "coalwire") && !strings.Contains(l, "newsapi") {
		return violation(fmt.Sprintf("article id %q does not have the required format.", s))
	}
	return nil
}

// LongLat fails unless the value is a [longitude, latitude] pair within
// [-180, 180] and [-90, 90].
func LongLat(v any) coalcheck.Issues {
	pair, ok := floats(v)
	if !ok {
		return nil
	}
	if len(pair) != 2 {
		return violation("long-lat pair must have length of two.")
	}
	if !longLatInRange(pair[0], pair[1]) {
		return violation(fmt.Sprintf(
			"invalid long-lat pair %v. expected long-lat ranges [-180, 180] and [-90, 90] respectively.", pair))
	}
	return nil
}

// Bounds fails unless the value is a [left, top, right, bottom] box whose
// corners are valid long-lat pairs and whose edges are axis-ordered
// (left <= right, top <= bottom).
func Bounds(v any) coalcheck.Issues {
	box, ok := floats(v)
	if !ok {
		return nil
	}
	if len(box) != 4 {
		return violation("bounds must have length of four.")
	}
	left, top, right, bottom := box[0], box[1], box[2], box[3]
	if !longLatInRange(left, top) || !longLatInRange(right, bottom) {
		return violation(fmt.Sprintf(
			"invalid bounds %v. corners must be valid long-lat pairs.", box))
	}
	if !(left <= right && top <= bottom) {
		return violation("invalid bounding box.")
	}
	return nil
}

func longLatInRange(lon, lat float64) bool {
	return -180.0 <= lon && lon <= 180.0 && -90.0 <= lat && lat <= 90.0
}

// ValidURL requires an absolute http(s) URL. The catalog's link fields all
// point at published articles or analysis pages.
func ValidURL(v any) coalcheck.Issues {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	if !validURL(s) {
		return violation(fmt.Sprintf("%q is not a valid http(s) URL.", s))
	}
	return nil
}
