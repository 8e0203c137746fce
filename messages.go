package coalcheck

// Message returns the default English message for an issue code. Datasets are
// curated in English, so unlike a general-purpose library there is no
// translator indirection here.
func Message(code string) string {
	switch code {
	case CodeInvalidType:
		return "invalid type"
	case CodeRequired:
		return "required property missing"
	case CodeUnknownKey:
		return "unknown key"
	case CodeDuplicateKey:
		return "duplicate key"
	case CodeInvalidEnum:
		return "value is not a member of the enum"
	case CodeConstraint:
		return "constraint violated"
	case CodeMissingKeys:
		return "required keys missing"
	case CodeParseError:
		return "parse error"
	}
	return code
}
