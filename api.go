package coalcheck

import "context"

// Schema validates an untyped JSON-decoded value and coerces it to T.
type Schema[T any] interface {
	// Parse transforms an unknown input into T (structural check -> coercion
	// -> field rules -> document rules). It returns Issues when validation
	// fails; the coerced value is only returned when the issue set is empty.
	Parse(ctx context.Context, v any) (T, error)

	// Validate runs Parse and discards the coerced value.
	Validate(ctx context.Context, v any) error
}

// SchemaMap abbreviates the engine's untyped-document schema shape, which
// every object node produces.
type SchemaMap = Schema[map[string]any]

// SafeParse parses v into T, returning (zero, false) on validation error.
func SafeParse[T any](ctx context.Context, s Schema[T], v any) (T, bool) {
	val, err := s.Parse(ctx, v)
	if err != nil {
		var zero T
		return zero, false
	}
	return val, true
}

// Is reports whether v conforms to the schema s.
func Is[T any](ctx context.Context, s Schema[T], v any) bool {
	return s.Validate(ctx, v) == nil
}

// ---- Parse-time context options ----

type contextKey int

const _ctxKeyFailFast contextKey = iota

// WithFailFast returns a child context that marks fail-fast parsing behavior.
// Schema implementations consult it to stop on the first issue. The default
// is collect-all: the publish gate needs the complete defect list per build.
func WithFailFast(ctx context.Context, enabled bool) context.Context {
	return context.WithValue(ctx, _ctxKeyFailFast, enabled)
}

// IsFailFast reports whether the current parse should stop on the first issue.
func IsFailFast(ctx context.Context) bool {
	v := ctx.Value(_ctxKeyFailFast)
	b, _ := v.(bool)
	return b
}
