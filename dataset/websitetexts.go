package dataset

import (
	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/countries"
	"github.com/coalwatch/coalcheck/dsl"
	"github.com/coalwatch/coalcheck/rules"
)

// Editorial analysis regions; distinct from the news feed's continent
// regions and the generation datasets' OECD grouping.
var analysisRegion = dsl.EnumOf(
	"north_america",
	"south_america",
	"caribbean",
	"europe",
	"africa",
	"middle_east",
	"central_asia",
	"india",
	"china",
	"indo_pacific",
	"global",
)

var analysisSchema = dsl.Object().
	Field("date", dsl.StringOf().Rule("american_date", rules.AmericanDate)).Required().
	Field("timestamp", posInt).Required().
	Field("link", urlString).Required().
	Field("summary", dsl.StringOf()).Required().
	Field("title", dsl.StringOf()).Required().
	Field("countries", dsl.ArrayOf(isoEnum)).Required().
	Field("region", analysisRegion).Required().
	MustBuild()

var footNoteSchema = dsl.Object().
	Field("text", dsl.StringOf()).Required().
	Field("link", dsl.OrLiteral("N/A", urlString)).Required().
	MustBuild()

var countryTextsSchema = dsl.Object().
	Field("country_overview", dsl.ArrayOf(dsl.String())).Required().
	Field("coal_overview", dsl.ArrayOf(dsl.String())).Required().
	Field("electricity_overview", dsl.ArrayOf(dsl.String())).Required().
	Field("footnotes", dsl.ArrayOf(footNoteSchema)).Required().
	Refine("overview_min_length", rules.AtEach(
		[]string{"country_overview", "coal_overview", "electricity_overview"},
		rules.MinLen(1),
	)).
	MustBuild()

// WebsiteTexts validates the "website_texts" dataset: the site's analysis
// feed plus per-country editorial copy. Indonesia ("id") anchors the
// country-texts rollout and must always be present.
var WebsiteTexts coalcheck.SchemaMap = dsl.Object().
	Field("analysis", dsl.ArrayOf(analysisSchema)).Required().
	Field("countries", dsl.MapOf(dsl.Map(countryTextsSchema).Keys(countries.Codes()))).Required().
	Refine("required_countries", rules.At("countries", rules.RequireKeys("id"))).
	MustBuild()

func init() { register("website_texts", WebsiteTexts) }
