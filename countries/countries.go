// Package countries holds the tracker's closed country universe: ISO 3166-1
// alpha-2 codes (lower case, as used for dataset map keys) and the display
// names used by plant records. Both sets are fixed at init and read-only;
// schemas reference them as literal-value universes and closed key sets.
package countries

import "sort"

type country struct {
	code string
	name string
}

// The tracker's country set: every country with coal plants or a coal
// phase-out status on the site. Keep sorted by code.
var table = []country{
	{"ar", "Argentina"},
	{"au", "Australia"},
	{"ba", "Bosnia and Herzegovina"},
	{"bd", "Bangladesh"},
	{"bg", "Bulgaria"},
	{"br", "Brazil"},
	{"bw", "Botswana"},
	{"ca", "Canada"},
	{"ch", "Switzerland"},
	{"cl", "Chile"},
	{"cn", "China"},
	{"co", "Colombia"},
	{"cz", "Czech Republic"},
	{"de", "Germany"},
	{"dk", "Denmark"},
	{"do", "Dominican Republic"},
	{"dz", "Algeria"},
	{"eg", "Egypt"},
	{"es", "Spain"},
	{"fi", "Finland"},
	{"fr", "France"},
	{"gb", "United Kingdom"},
	{"ge", "Georgia"},
	{"gr", "Greece"},
	{"hn", "Honduras"},
	{"hr", "Croatia"},
	{"hu", "Hungary"},
	{"id", "Indonesia"},
	{"ie", "Ireland"},
	{"il", "Israel"},
	{"in", "India"},
	{"ir", "Iran"},
	{"it", "Italy"},
	{"jp", "Japan"},
	{"ke", "Kenya"},
	{"kg", "Kyrgyzstan"},
	{"kh", "Cambodia"},
	{"kr", "South Korea"},
	{"kz", "Kazakhstan"},
	{"la", "Laos"},
	{"lk", "Sri Lanka"},
	{"ma", "Morocco"},
	{"md", "Moldova"},
	{"me", "Montenegro"},
	{"mg", "Madagascar"},
	{"mk", "North Macedonia"},
	{"mm", "Myanmar"},
	{"mn", "Mongolia"},
	{"mw", "Malawi"},
	{"mx", "Mexico"},
	{"my", "Malaysia"},
	{"mz", "Mozambique"},
	{"ne", "Niger"},
	{"ng", "Nigeria"},
	{"nl", "Netherlands"},
	{"no", "Norway"},
	{"nz", "New Zealand"},
	{"pa", "Panama"},
	{"pe", "Peru"},
	{"ph", "Philippines"},
	{"pk", "Pakistan"},
	{"pl", "Poland"},
	{"pt", "Portugal"},
	{"ro", "Romania"},
	{"rs", "Serbia"},
	{"ru", "Russia"},
	{"se", "Sweden"},
	{"si", "Slovenia"},
	{"sk", "Slovakia"},
	{"sn", "Senegal"},
	{"sv", "El Salvador"},
	{"th", "Thailand"},
	{"tj", "Tajikistan"},
	{"tr", "Turkey"},
	{"tw", "Taiwan"},
	{"tz", "Tanzania"},
	{"ua", "Ukraine"},
	{"us", "United States"},
	{"uz", "Uzbekistan"},
	{"ve", "Venezuela"},
	{"vn", "Vietnam"},
	{"za", "South Africa"},
	{"zm", "Zambia"},
	{"zw", "Zimbabwe"},
}

var (
	codes      []string
	names      []string
	nameByCode = map[string]string{}
	codeByName = map[string]string{}
)

func init() {
	for _, c := range table {
		codes = append(codes, c.code)
		names = append(names, c.name)
		nameByCode[c.code] = c.name
		codeByName[c.name] = c.code
	}
	sort.Strings(names)
}

// Codes returns the ISO alpha-2 code universe in ascending order. The slice
// is a copy; callers may not mutate the catalog.
func Codes() []string { return append([]string(nil), codes...) }

// Names returns the display-name universe in ascending order, copied.
func Names() []string { return append([]string(nil), names...) }

// NameByCode resolves an ISO code to its display name.
func NameByCode(code string) (string, bool) {
	n, ok := nameByCode[code]
	return n, ok
}

// CodeByName resolves a display name to its ISO code.
func CodeByName(name string) (string, bool) {
	c, ok := codeByName[name]
	return c, ok
}

// HasCode reports membership in the ISO code universe.
func HasCode(code string) bool {
	_, ok := nameByCode[code]
	return ok
}
