package dataset

import (
	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/dsl"
	"github.com/coalwatch/coalcheck/rules"
)

var globalTotalsSchema = dsl.Object().
	Field("total_number", posInt).Required().
	Field("total_number_net_change", pctString).Required().
	Field("total_capacity_mw", posInt).Required().
	Field("total_capacity_mw_net_change", pctString).Required().
	MustBuild()

var rankedCountrySchema = dsl.Object().
	Field("country", countryNameEnum).Required().
	Field("capacity_mw", posInt).Required().
	MustBuild()

// rankedList is a homepage leaderboard: exactly ten countries, descending
// capacity, no country twice.
var rankedList = dsl.ArrayOf(rankedCountrySchema).
	Rule("length_of_ten", rules.LengthIs(10)).
	Rule("sorted_by_capacity", rules.SortedByCapacity).
	Rule("unique_countries", rules.Unique(rules.ByField("country")))

var countryRankingsSchema = func() coalcheck.SchemaMap {
	b := dsl.Object()
	for _, k := range statusKeys {
		b.Field(k, rankedList).Required()
	}
	return b.MustBuild()
}()

var emissionPathwaySchema = dsl.Object().
	Field("current", posFloat).Required().
	Field("no_action", posFloat).Required().
	Field("target_1_5_deg", posFloat).Required().
	Field("target_2_deg", posFloat).Required().
	Field("year", yearInt).Required().
	MustBuild()

// snapshotSeries is a year-keyed trend series of capacity snapshots.
var snapshotSeries = dsl.ArrayOf(capacitySnapshot).
	Rule("unique_years", rules.Unique(rules.ByField("year")))

var regionalCapacityChangesSchema = dsl.Object().
	Field("oecd_and_eu", snapshotSeries).Required().
	Field("china", snapshotSeries).Required().
	Field("non_oecd_no_china", snapshotSeries).Required().
	MustBuild()

// HomePage validates the "home_page" dataset: global totals, the six
// per-status leaderboards, plant counts, emission pathways, and regional
// capacity trend series.
var HomePage coalcheck.SchemaMap = dsl.Object().
	Field("global_totals", dsl.SchemaOf(globalTotalsSchema)).Required().
	Field("country_rankings_by_status", dsl.SchemaOf(countryRankingsSchema)).Required().
	Field("coal_plants_by_status", dsl.SchemaOf(statusObject())).Required().
	Field("emission_pathways", dsl.ArrayOf(emissionPathwaySchema).
		Rule("unique_years", rules.Unique(rules.ByField("year")))).Required().
	Field("regional_capacity_changes", dsl.SchemaOf(regionalCapacityChangesSchema)).Required().
	MustBuild()

func init() { register("home_page", HomePage) }
