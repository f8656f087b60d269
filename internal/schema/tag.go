package schema

import (
	"fmt"
	"strings"
)

// TagKey is the struct tag key interpreted by the classifier.
const TagKey = "builder"

const defaultPrefix = "default="

// ParseTag interprets a builder tag value and returns the resulting
// classification plus the verbatim default expression, if any.
//
// Grammar, in priority order:
//
//	""                -> Required
//	"required"        -> Required
//	"default"         -> OptionalZero
//	"default=<expr>"  -> OptionalDefault; <expr> is everything after the
//	                     first '=' and may itself contain '=' or ','
//
// Anything else is a malformed or conflicting annotation.
func ParseTag(value string) (Classification, string, error) {
	switch value {
	case "", "required":
		return Required, "", nil
	case "default":
		return OptionalZero, "", nil
	}

	if expr, ok := strings.CutPrefix(value, defaultPrefix); ok {
		if strings.TrimSpace(expr) == "" {
			return Required, "", fmt.Errorf("empty default expression in builder tag %q", value)
		}

		return OptionalDefault, expr, nil
	}

	// Distinguish conflicting known options from plain garbage so the
	// diagnostic points at the real mistake.
	if head, rest, ok := strings.Cut(value, ","); ok && isTagOption(head) && rest != "" {
		return Required, "", fmt.Errorf("conflicting builder tag options %q", value)
	}

	return Required, "", fmt.Errorf("unknown builder tag option %q", value)
}

// isTagOption reports whether s is a recognized standalone option head.
func isTagOption(s string) bool {
	return s == "required" || s == "default" || strings.HasPrefix(s, defaultPrefix)
}
