package dataset

import (
	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/countries"
	"github.com/coalwatch/coalcheck/dsl"
	"github.com/coalwatch/coalcheck/rules"
)

// Fuel sources of the generation datasets, in the site's display order.
var fuelKeys = []string{
	"bioenergy", "coal", "gas", "hydro", "nuclear",
	"other_fossil", "other_renewables", "wind", "solar",
}

// fuelObject declares one field per fuel source: plain year-less mixes, or
// per-year rows when withYear is set; ad controls the numeric strictness
// (counts, signed changes, ratios).
func fuelObject(withYear bool, ad dsl.AnyAdapter) coalcheck.SchemaMap {
	b := dsl.Object()
	if withYear {
		b.Field("year", yearInt).Required()
	}
	for _, k := range fuelKeys {
		b.Field(k, ad).Required()
	}
	return b.MustBuild()
}

var (
	energyMixSchema        = fuelObject(false, posInt)
	generationByFuelSchema = fuelObject(true, posInt)
	generationChangeSchema = fuelObject(true, dsl.IntOf()) // cumulative changes go negative
	generationRatioSchema  = fuelObject(true, posFloat)
)

var electricityDemandSchema = dsl.Object().
	Field("year", yearInt).Required().
	Field("demand", posFloat).Required().
	MustBuild()

var electricityDemandChangeSchema = dsl.Object().
	Field("year", yearInt).Required().
	Field("demand", dsl.FloatOf()).Required().
	MustBuild()

var progressRatiosSchema = dsl.Object().
	Field("year_2010", dsl.FloatOf()).Required().
	Field("now", dsl.FloatOf()).Required().
	MustBuild()

var progressComparisonsSchema = dsl.Object().
	Field("clean_energy", dsl.SchemaOf(progressRatiosSchema)).Required().
	Field("phase_out", dsl.SchemaOf(progressRatiosSchema)).Required().
	MustBuild()

// yearSeries wraps a per-year row schema as a non-empty series with unique
// years.
func yearSeries(row coalcheck.SchemaMap) dsl.AnyAdapter {
	return dsl.ArrayOf(row).
		Rule("min_length", rules.MinLen(1)).
		Rule("unique_years", rules.Unique(rules.ByField("year")))
}

var worldGenerationSchema = dsl.Object().
	Field("progress", dsl.SchemaOf(progressComparisonsSchema)).Required().
	Field("energy_mix", dsl.SchemaOf(energyMixSchema)).Required().
	Field("electricity_demand_per_capita", yearSeries(electricityDemandSchema)).Required().
	MustBuild()

var regionalGenerationSchema = dsl.Object().
	Field("progress", dsl.MapOf(
		dsl.Map(progressComparisonsSchema).Keys([]string{"china", "non_oecd_no_china", "oecd_and_eu"}),
	)).Required().
	MustBuild()

var countryGenerationSchema = dsl.Object().
	Field("progress", dsl.SchemaOf(progressComparisonsSchema)).Required().
	Field("energy_mix", dsl.SchemaOf(energyMixSchema)).Required().
	Field("electricity_demand_per_capita", yearSeries(electricityDemandSchema)).Required().
	Field("electricity_generation_by_fuel", yearSeries(generationByFuelSchema)).Required().
	Field("cumulative_generation_changes", yearSeries(generationChangeSchema)).Required().
	Field("cumulative_demand_changes", yearSeries(electricityDemandChangeSchema)).Required().
	Field("electricity_generation_ratios", yearSeries(generationRatioSchema)).Required().
	MustBuild()

// PowerGeneration validates the "power_generation" dataset: world, regional,
// and per-country electricity generation and demand series.
var PowerGeneration coalcheck.SchemaMap = dsl.Object().
	Field("world", dsl.SchemaOf(worldGenerationSchema)).Required().
	Field("regions", dsl.SchemaOf(regionalGenerationSchema)).Required().
	Field("countries", dsl.MapOf(
		dsl.Map(countryGenerationSchema).Keys(countries.Codes()).RequireKeys("cn"),
	)).Required().
	MustBuild()

func init() { register("power_generation", PowerGeneration) }
