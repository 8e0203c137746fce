package dataset

import (
	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/countries"
	"github.com/coalwatch/coalcheck/dsl"
	"github.com/coalwatch/coalcheck/rules"
)

var techBucketEnum = dsl.EnumOf(
	"subcritical",
	"supercritical",
	"ultra_supercritical",
	"other",
	"unknown",
)

var capacityRankingsSchema = dsl.Object().
	Field("operational", posInt).Required().
	Field("new_coal_risk", posInt).Required().
	MustBuild()

var currentCapacitySchema = dsl.Object().
	Field("capacity", posInt).Required().
	Field("capacity_net_change", pctString).Required().
	MustBuild()

var capacityByTechnologySchema = dsl.Object().
	Field("subcritical", posInt).Required().
	Field("supercritical", posInt).Required().
	Field("ultra_supercritical", posInt).Required().
	Field("other", posInt).Required().
	Field("unknown", posInt).Required().
	MustBuild()

// Swarm years fall outside the validated 2000..2050 window (plants built in
// the 20th century appear), so the year field stays a plain integer.
var plantSwarmPointSchema = dsl.Object().
	Field("id", techBucketEnum).Required().
	Field("unit_id", dsl.StringOf()).Required().
	Field("year", dsl.IntOf()).Required().
	Field("capacity_mw_sqrt", posFloat).Required().
	MustBuild()

var countryLandscapeSchema = dsl.Object().
	Field("statuses", dsl.SchemaOf(countryStatusesSchema)).Required().
	Field("rankings", dsl.SchemaOf(capacityRankingsSchema)).Required().
	Field("current_capacity", dsl.SchemaOf(currentCapacitySchema)).Required().
	Field("capacity_by_status", dsl.SchemaOf(statusObject())).Required().
	Field("capacity_by_technology", dsl.SchemaOf(capacityByTechnologySchema)).Required().
	Field("historical_capacities", dsl.ArrayOf(capacitySnapshot).
		Rule("min_length", rules.MinLen(1)).
		Rule("unique_years", rules.Unique(rules.ByField("year")))).Required().
	Field("plant_swarm", dsl.ArrayOf(plantSwarmPointSchema).
		Rule("unique_unit_ids", rules.Unique(rules.ByField("unit_id")))).Required().
	MustBuild()

// CapacityLandscape validates the "capacity_landscape" dataset: the per-
// country capacity breakdowns behind the landscape charts. China anchors
// the landscape section and must always be present.
var CapacityLandscape coalcheck.SchemaMap = dsl.Object().
	Field("countries", dsl.MapOf(
		dsl.Map(countryLandscapeSchema).Keys(countries.Codes()).RequireKeys("cn"),
	)).Required().
	MustBuild()

func init() { register("capacity_landscape", CapacityLandscape) }
