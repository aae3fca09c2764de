package seo

import (
	"fmt"
	"regexp"
	"strings"
)

// placeholderPattern matches {{ path.to.value }} tokens. Paths are
// dot-separated identifiers; anything else is left alone.
var placeholderPattern = regexp.MustCompile(`\{\{\s*([A-Za-z0-9_]+(?:\.[A-Za-z0-9_]+)*)\s*\}\}`)

// RenderTemplate substitutes {{path}} placeholders in an admin-authored
// string using the supplied context map. Missing or unresolvable paths
// render as the empty string; the literal {{...}} never survives in output.
// There are no conditionals or loops: these are short trusted strings, not a
// templating language.
func RenderTemplate(template string, context map[string]any) string {
	if template == "" {
		return ""
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		match := placeholderPattern.FindStringSubmatch(token)
		if len(match) != 2 {
			return ""
		}
		return stringifyValue(resolvePath(context, match[1]))
	})
}

func resolvePath(context map[string]any, path string) any {
	var current any = context
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = node[segment]
		if !ok {
			return nil
		}
	}
	return current
}

func stringifyValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case map[string]any:
		// Intermediate nodes have no sensible text form.
		return ""
	default:
		return fmt.Sprint(v)
	}
}
