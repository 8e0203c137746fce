package dataset

import (
	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/countries"
	"github.com/coalwatch/coalcheck/dsl"
	"github.com/coalwatch/coalcheck/rules"
)

// Plant lifecycle statuses, the spine of most per-status breakdowns.
var statusKeys = []string{"operational", "construction", "planned", "cancelled", "halted", "retired"}

// Common field adapters. AnyAdapter values are immutable (Rule copies), so
// sharing them across schemas is safe.
var (
	posInt    = dsl.IntOf().Rule("non_negative", rules.NonNegative)
	posFloat  = dsl.FloatOf().Rule("non_negative", rules.NonNegative)
	yearInt   = dsl.IntOf().Rule("valid_year", rules.ValidYear)
	pctString = dsl.StringOf().Rule("percentage_string", rules.PercentageString)
	urlString = dsl.StringOf().Rule("valid_url", rules.ValidURL)
	articleID = dsl.StringOf().Rule("article_id_format", rules.ArticleID)

	isoEnum         = dsl.Enum(countries.Codes()...)
	countryNameEnum = dsl.EnumOf(countries.Names()...)
)

// statusObject declares an object with one non-negative integer per plant
// status (plant counts or capacities by status).
func statusObject() coalcheck.SchemaMap {
	b := dsl.Object()
	for _, k := range statusKeys {
		b.Field(k, posInt).Required()
	}
	return b.MustBuild()
}

// capacitySnapshot is the per-year status breakdown shared by the home page
// and country trend series.
var capacitySnapshot = func() coalcheck.SchemaMap {
	b := dsl.Object().Field("year", yearInt).Required()
	for _, k := range statusKeys {
		b.Field(k, posInt).Required()
	}
	b.Field("expected_retirements_by_2030", posInt).Required()
	return b.MustBuild()
}()
