package dataset

import (
	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/countries"
	"github.com/coalwatch/coalcheck/dsl"
	"github.com/coalwatch/coalcheck/rules"
)

var phaseOutStatusEnum = dsl.EnumOf(
	"N/A",
	"coal_free",
	"phase_out_by_2030",
	"phase_out_by_2040",
	"phase_out_in_consideration",
)

var newCoalStatusEnum = dsl.EnumOf(
	"N/A",
	"cancelled_coal",
	"committed_to_no_new_coal",
	"part_of_no_new_coal_power_compact",
	"constructing_new_coal",
	"planning_new_coal",
)

var countryStatusesSchema = dsl.Object().
	Field("phase_out", phaseOutStatusEnum).Required().
	Field("new_coal", newCoalStatusEnum).Required().
	Field("ppca_member", dsl.BoolOf()).Required().
	MustBuild()

var capacityTimeSeriesPointSchema = dsl.Object().
	Field("year", yearInt).Required().
	Field("capacity", posInt).Required().
	Field("net_change", pctString).Required().
	MustBuild()

var singleCountryMainSchema = dsl.Object().
	Field("capacity_time_series", dsl.ArrayOf(capacityTimeSeriesPointSchema).
		Rule("min_length", rules.MinLen(1)).
		Rule("unique_years", rules.Unique(rules.ByField("year")))).Required().
	Field("capacity_trends", dsl.ArrayOf(capacitySnapshot).
		Rule("min_length", rules.MinLen(1)).
		Rule("unique_years", rules.Unique(rules.ByField("year")))).Required().
	Field("statuses", dsl.SchemaOf(countryStatusesSchema)).Required().
	MustBuild()

// CountryMain validates the "country_main" dataset: the headline capacity
// series and status badges per country page.
var CountryMain coalcheck.SchemaMap = dsl.Object().
	Field("countries", dsl.MapOf(
		dsl.Map(singleCountryMainSchema).Keys(countries.Codes()).RequireKeys("us", "in"),
	)).Required().
	MustBuild()

func init() { register("country_main", CountryMain) }
