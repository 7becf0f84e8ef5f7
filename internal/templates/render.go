package templates

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// placeholderPattern matches {{TOKEN}} markers in template text.
var placeholderPattern = regexp.MustCompile(`\{\{([A-Z][A-Z0-9_]*)\}\}`)

// Substitute replaces {{TOKEN}} markers with values from vars. Tokens
// without a value are left in place.
func Substitute(text string, vars map[string]string) string {
	if len(vars) == 0 {
		return text
	}
	return placeholderPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[2 : len(match)-2]
		if value, ok := vars[name]; ok {
			return value
		}
		return match
	})
}

// Placeholders returns the sorted set of token names referenced in text.
func Placeholders(text string) []string {
	matches := placeholderPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(matches))
	names := make([]string, 0, len(matches))
	for _, match := range matches {
		if _, exists := seen[match[1]]; exists {
			continue
		}
		seen[match[1]] = struct{}{}
		names = append(names, match[1])
	}

	sort.Strings(names)
	return names
}

// Unresolved returns the tokens still present in text, typically after a
// substitution pass.
func Unresolved(text string) []string {
	return Placeholders(text)
}

// Render substitutes vars across every section of the template. In strict
// mode any token left unresolved is an error.
func Render(tmpl *Template, vars map[string]string, strict bool) (map[string]string, error) {
	if tmpl == nil {
		return nil, fmt.Errorf("template is required")
	}

	sections := tmpl.Sections()
	keys := make([]string, 0, len(sections))
	for key := range sections {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	rendered := make(map[string]string, len(sections))
	for _, key := range keys {
		text := Substitute(sections[key], vars)
		if strict {
			if missing := Unresolved(text); len(missing) > 0 {
				return nil, fmt.Errorf("render template %q section %s: unresolved tokens: %s",
					tmpl.Name, key, strings.Join(missing, ", "))
			}
		}
		rendered[key] = text
	}

	return rendered, nil
}
