// Package dsl provides the schema construction DSL for coalcheck.
//
// Overview
//   - Builder API: declare closed JSON object shapes with Object()/Field()/
//     Required()/Refine()/MustBuild(). Unknown keys are always rejected:
//     dataset schemas are closed-world by contract.
//   - Primitives: String()/Bool()/Int()/Float() are strict; integers reject
//     floats and bools, strings reject numbers.
//   - Enum(values...): closed literal universes (statuses, regions, ISO codes).
//   - Array(elem), Map(elem): element-wise validation with JSON Pointer
//     prefixes per index/key; Map additionally supports a closed key set
//     (Keys) and a required-key constraint (RequireKeys).
//   - AnyAdapter: adapt any Schema[T] into a field via SchemaOf[T](s), and
//     attach named field rules with Rule(name, fn).
//
// Every schema node holds its field and document rules as plain ordered
// lists, resolved and executed by the parse engine; there is no reflection
// over model types. Parsing is collect-all: a failed field never blocks its
// siblings, and document rules run even when parts of the document failed
// structurally (each rule guards against fields that did not survive).
package dsl
