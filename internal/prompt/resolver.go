// Package prompt turns a generator's prompt template and a set of user
// answers into the literal instruction string sent to the image provider.
package prompt

import (
	"fmt"
	"regexp"
	"strings"
)

// Answers maps question ids to the user's answers. Values are either a
// string or a list of strings; anything else is stringified as a fallback.
type Answers map[string]any

var (
	conditionalPattern = regexp.MustCompile(`(?s)\{\{\s*#if\s+([A-Za-z0-9_-]+)\s*\}\}(.*?)\{\{\s*/if\s*\}\}`)
	fieldPattern       = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_-]+)\s*\}\}`)
)

// Resolve substitutes answers into template. {{fieldId}} tokens become the
// stringified answer (multi-select joined with ", "), missing answers become
// the empty string. {{#if fieldId}}...{{/if}} blocks are kept only when the
// answer is non-empty, otherwise the whole block is dropped. Field ids are
// matched case-sensitively; answers without a matching token are ignored.
// Resolve never fails: schema validation happens at save time, not here.
func Resolve(template string, answers Answers) string {
	out := conditionalPattern.ReplaceAllStringFunc(template, func(block string) string {
		m := conditionalPattern.FindStringSubmatch(block)
		if Stringify(answers[m[1]]) == "" {
			return ""
		}
		return m[2]
	})

	// Replacement text is not rescanned, so brace sequences inside user
	// answers pass through untouched.
	return fieldPattern.ReplaceAllStringFunc(out, func(token string) string {
		m := fieldPattern.FindStringSubmatch(token)
		return Stringify(answers[m[1]])
	})
}

// Stringify renders a single answer value. Multi-select answers are joined
// with ", "; nil and empty values render as "".
func Stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []string:
		return strings.Join(val, ", ")
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			if s := Stringify(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", val)
	}
}
