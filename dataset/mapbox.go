package dataset

import (
	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/dsl"
	"github.com/coalwatch/coalcheck/rules"
)

var coalTypeEnum = dsl.EnumOf(
	"Anthracite",
	"Biomass & Bituminous",
	"Bituminous",
	"Bituminous & Anthracite",
	"Lignite",
	"Lignite & Bituminous",
	"Lignite & Sub-Bituminous",
	"Sub-Bituminous",
	"Sub-Bituminous & Bituminous",
	"Waste Coal",
	"Unknown",
)

var plantStatusEnum = dsl.EnumOf(
	"Retired",
	"Construction",
	"Halted",
	"Planned",
	"Cancelled",
	"Operational",
)

var technologyEnum = dsl.EnumOf(
	"Integrated Gasification Combined Cycle",
	"Integrated Gasification Combined Cycle with Carbon Capture & Storage",
	"Subcritical",
	"Subcritical with Carbon Capture & Storage",
	"Subcritical with Circulating Fluidized Bed",
	"Supercritical",
	"Supercritical with Carbon Capture & Storage",
	"Ultra-Supercritical",
	"Unknown",
	"Unknown with Carbon Capture & Storage",
)

var geometrySchema = dsl.Object().
	Field("coordinates", dsl.ArrayOf(dsl.Float()).Rule("valid_long_lat", rules.LongLat)).Required().
	Field("type", dsl.LiteralOf("Point")).Required().
	MustBuild()

var propertiesSchema = dsl.Object().
	Field("age", dsl.OrLiteral("N/A", dsl.IntOf())).Required().
	Field("capacity_mw", posInt).Required().
	Field("coal_type", coalTypeEnum).Required().
	Field("country", countryNameEnum).Required().
	Field("emission_factor_kg_co2_per_tj", posInt).Required().
	Field("plant_name", dsl.StringOf()).Required().
	Field("status", plantStatusEnum).Required().
	Field("technology", technologyEnum).Required().
	Field("thermal_efficiency", posFloat).Required().
	Field("unit_id", posInt).Required().
	Field("unit_name", dsl.StringOf()).Required().
	MustBuild()

var featureSchema = dsl.Object().
	Field("geometry", dsl.SchemaOf(geometrySchema)).Required().
	Field("id", dsl.StringOf()).Required().
	Field("properties", dsl.SchemaOf(propertiesSchema)).Required().
	Field("type", dsl.LiteralOf("Feature")).Required().
	MustBuild()

// Mapbox validates the "mapbox" dataset: a GeoJSON-shaped FeatureCollection
// of plant units rendered on the map. Feature ids must be unique or the map
// layer drops markers silently.
var Mapbox coalcheck.SchemaMap = dsl.Object().
	Field("features", dsl.ArrayOf(featureSchema)).Required().
	Field("type", dsl.LiteralOf("FeatureCollection")).Required().
	Refine("unique_feature_id", rules.At("features", rules.Unique(rules.ByField("id")))).
	MustBuild()

func init() { register("mapbox", Mapbox) }
