package dataset

import (
	coalcheck "github.com/coalwatch/coalcheck"
	"github.com/coalwatch/coalcheck/countries"
	"github.com/coalwatch/coalcheck/dsl"
)

// IsoCountry validates the "iso_country" lookup: a closed map from ISO code
// to display name, both drawn from the catalog universes.
var IsoCountry coalcheck.Schema[map[string]string] = dsl.Map(
	dsl.Enum(countries.Names()...),
).Keys(countries.Codes())

// CountryIso validates the inverse "country_iso" lookup.
var CountryIso coalcheck.Schema[map[string]string] = dsl.Map(
	dsl.Enum(countries.Codes()...),
).Keys(countries.Names())

func init() {
	register("iso_country", IsoCountry)
	register("country_iso", CountryIso)
}
