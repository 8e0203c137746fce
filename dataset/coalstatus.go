package dataset

import (
	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/dsl"
	"github.com/coalwatch/coalcheck/rules"
)

// isoList is a non-empty, duplicate-free list of country codes.
var isoList = dsl.ArrayOf(isoEnum).
	Rule("min_length", rules.MinLen(1)).
	Rule("unique", rules.Unique(rules.Self))

var phaseOutSchema = dsl.Object().
	Field("no_coal", isoList).Required().
	Field("phase_out_in_consideration", isoList).Required().
	Field("phase_out_by_2030", isoList).Required().
	Field("phase_out_by_2040", isoList).Required().
	Field("coal_free", isoList).Required().
	Field("ppca_member", isoList).Required().
	MustBuild()

var newCoalSchema = dsl.Object().
	Field("constructing_new_coal", isoList).Required().
	Field("planning_new_coal", isoList).Required().
	Field("committed_to_no_new_coal", isoList).Required().
	// The compact has no minimum membership: it may legitimately be empty
	// between signing rounds.
	Field("part_of_no_new_coal_power_compact", dsl.ArrayOf(isoEnum)).Required().
	Field("cancelled_coal", isoList).Required().
	MustBuild()

// CoalStatus validates the "coal_status" dataset: country membership in the
// phase-out and new-coal status buckets.
var CoalStatus coalcheck.SchemaMap = dsl.Object().
	Field("phase_out", dsl.SchemaOf(phaseOutSchema)).Required().
	Field("new_coal", dsl.SchemaOf(newCoalSchema)).Required().
	MustBuild()

func init() { register("coal_status", CoalStatus) }
