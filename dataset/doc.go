// Package dataset declares the published-site schema catalog: one closed
// schema per dataset the build pipeline emits (home page, country pages,
// news feed, mapbox features, bounding boxes, coal statuses, power
// generation, website texts, ISO lookups), plus a name-keyed registry so the
// publish gate selects schemas by dataset name rather than sniffing
// documents.
//
// Schemas are package-level values assembled once at init and never mutated.
package dataset
