package coalcheck

import (
	"bytes"
	"io"
	"strconv"

	json "github.com/goccy/go-json"
)

// DupPolicy controls duplicate-key handling when decoding raw JSON.
type DupPolicy int

const (
	// DupIgnore skips the duplicate-key scan entirely.
	DupIgnore DupPolicy = iota
	// DupWarn reports every duplicate key but does not fail the decode.
	DupWarn
	// DupError reports duplicate keys and treats any occurrence as fatal.
	DupError
)

// DecodeJSON decodes one JSON document into untyped Go values, preserving
// number precision as json.Number. Schemas decide per field whether a number
// is integral or floating.
func DecodeJSON(data []byte) (any, error) {
	return DecodeJSONReader(bytes.NewReader(data))
}

// DecodeJSONReader decodes a JSON document from r. See DecodeJSON.
func DecodeJSONReader(r io.Reader) (any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err}}
	}
	// Trailing content after the document is a producer bug worth surfacing.
	if err := dec.Decode(new(any)); err != io.EOF {
		return nil, Issues{{Path: "/", Code: CodeParseError, Message: "unexpected trailing content after JSON document"}}
	}
	return v, nil
}

// ScanDuplicateKeys walks raw JSON tokens and reports object keys that appear
// more than once within the same object. Go's map decoding silently keeps the
// last value, so this is the only place the collision is still observable.
func ScanDuplicateKeys(data []byte, policy DupPolicy) Issues {
	if policy == DupIgnore {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	type frame struct {
		object       bool
		keys         map[string]struct{}
		expectingKey bool
		path         string
		pendingKey   string
		nextIndex    int
	}

	var iss Issues
	var stack []frame

	childPath := func() string {
		if len(stack) == 0 {
			return ""
		}
		top := &stack[len(stack)-1]
		if top.object {
			return top.path + "/" + top.pendingKey
		}
		return top.path + "/" + strconv.Itoa(top.nextIndex)
	}
	// closeValue marks one child value of the top frame as complete: objects
	// go back to expecting a key, arrays advance to the next index. Scalars
	// count as children too, or the indices drift.
	closeValue := func() {
		if n := len(stack); n > 0 {
			top := &stack[n-1]
			if top.object {
				if !top.expectingKey {
					top.expectingKey = true
					top.pendingKey = ""
				}
				return
			}
			top.nextIndex++
		}
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			iss = AppendIssues(iss, Issue{Path: "/", Code: CodeParseError, Message: err.Error(), Cause: err})
			break
		}
		switch v := tok.(type) {
		case json.Delim:
			switch v {
			case '{':
				stack = append(stack, frame{object: true, keys: make(map[string]struct{}), expectingKey: true, path: childPath()})
			case '[':
				stack = append(stack, frame{path: childPath()})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				closeValue()
			}
		case string:
			if n := len(stack); n > 0 {
				top := &stack[n-1]
				if top.object && top.expectingKey {
					if _, seen := top.keys[v]; seen {
						p := top.path + "/" + v
						iss = AppendIssues(iss, Issue{Path: p, Code: CodeDuplicateKey, Message: "key '" + v + "' duplicated", Params: map[string]any{"key": v}})
						if policy == DupError {
							return iss
						}
					}
					top.keys[v] = struct{}{}
					top.expectingKey = false
					top.pendingKey = v
					continue
				}
			}
			closeValue()
		default:
			closeValue()
		}
	}
	return iss
}
