package swagger

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	pathVarRegexp  = regexp.MustCompile(`:([^/]+)`)
	nonWordRegexp  = regexp.MustCompile(`[^\w ]+`)
	separatorChars = strings.NewReplacer("/", " ", "_", " ")
)

// convertPath rewrites ":name" variables to "{name}".
func convertPath(tpl string) string {
	return pathVarRegexp.ReplaceAllString(tpl, "{$1}")
}

// capitalize upper-cases the first letter of s and keeps the rest.
func capitalize(s string) string {
	return cases.Title(language.Und, cases.NoLower).String(s)
}

// camelCase drops everything but word characters and spaces, then joins
// the space separated words, capitalizing all but the first. The first word
// is kept as written.
func camelCase(s string) string {
	words := strings.Split(nonWordRegexp.ReplaceAllString(s, ""), " ")
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(w)
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// operationName derives the default nickname and body model name of a
// route: "/asdf/:p1/:p2" becomes "AsdfP1P2".
func operationName(tpl string) string {
	return camelCase(separatorChars.Replace(tpl))
}

// subtypeName is the model name hoisted from a nested body field.
func subtypeName(field string) string {
	return capitalize(camelCase(field))
}

// resourceGroup returns the first segment of a route template.
func resourceGroup(tpl string) string {
	parts := strings.Split(tpl, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}
