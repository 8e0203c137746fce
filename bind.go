package coalcheck

import (
	json "github.com/goccy/go-json"
)

// Bind projects a coerced document (as returned by a successful Parse) onto a
// Go struct via its json tags. It is a convenience for downstream pipeline
// stages that prefer typed access over map indexing; the document has already
// passed schema validation, so the round-trip cannot reintroduce shape errors.
func Bind[T any](doc any) (T, error) {
	var out T
	b, err := json.Marshal(doc)
	if err != nil {
		return out, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	return out, nil
}
