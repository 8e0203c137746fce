package coalcheck

// Package coalcheck validates coal-tracker site datasets before publish.
//
// It provides:
//
// - A stable error model via Issues (JSON Pointer path, code, message)
// - Schema[T]: strict parse/validate of untyped JSON-decoded input
// - A JSON document source with json.Number decoding and duplicate-key scanning
// - Typed projection of validated documents via Bind[T]
//
// Design policy:
// - Keep only public APIs in the root package.
// - Place the schema DSL under dsl/, predicate rules under rules/, the
//   concrete dataset catalog under dataset/, and the CLI under cmd/coalcheck.
// - Validation is collect-all by default: every violated constraint is
//   reported in one pass. Fail-fast is available as a context option.
//
// Typical usage:
//
//	doc, err := coalcheck.DecodeJSON(data)
//	v, err := dataset.Validate(ctx, "home_page", doc)
