package dataset

import (
	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/countries"
	"github.com/coalwatch/coalcheck/dsl"
	"github.com/coalwatch/coalcheck/rules"
)

var boundingBoxSchema = dsl.Object().
	Field("iso", dsl.StringOf().Rule("iso_length", rules.LengthIs(2))).Required().
	Field("name", countryNameEnum).Required().
	Field("bounds", dsl.ArrayOf(dsl.Float()).Rule("valid_bounds", rules.Bounds)).Required().
	MustBuild()

// BoundingBoxes validates the "bounding_boxes" dataset: the map viewport per
// country page. The US and India pages ship first and must always be
// covered.
var BoundingBoxes coalcheck.SchemaMap = dsl.Object().
	Field("countries", dsl.MapOf(
		dsl.Map(boundingBoxSchema).Keys(countries.Codes()).RequireKeys("us", "in"),
	)).Required().
	MustBuild()

func init() { register("bounding_boxes", BoundingBoxes) }
