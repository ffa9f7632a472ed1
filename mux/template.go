package mux

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// routeTemplate stores a compiled path template and its variable names.
//
// Templates use restify-style variables: a ":" starts a variable whose
// name runs up to the next "/". "/users/:id/posts/:post" declares the
// variables id and post.
type routeTemplate struct {
	// template is the original template string.
	template string
	// regexp matches request paths.
	regexp *regexp.Regexp
	// varsN are the variable names in order of appearance.
	varsN []string
	// prefix indicates a prefix match (no $ anchor).
	prefix bool
}

// newRouteTemplate parses a path template and compiles the matcher.
func newRouteTemplate(tpl string, prefix bool) (*routeTemplate, error) {
	if tpl != "" && tpl[0] != '/' {
		return nil, fmt.Errorf("mux: path must start with a slash, got %q", tpl)
	}

	var (
		pattern bytes.Buffer
		varsN   []string
	)

	pattern.WriteByte('^')

	segments := strings.Split(tpl, "/")
	for i, seg := range segments {
		if i > 0 {
			pattern.WriteByte('/')
		}
		lit, name, hasVar := strings.Cut(seg, ":")
		pattern.WriteString(regexp.QuoteMeta(lit))
		if !hasVar {
			continue
		}
		if name == "" {
			return nil, fmt.Errorf("mux: missing variable name in segment %q of %q", seg, tpl)
		}
		if strings.Contains(name, ":") {
			return nil, fmt.Errorf("mux: multiple variables in segment %q of %q", seg, tpl)
		}
		pattern.WriteString("([^/]+)")
		varsN = append(varsN, name)
	}

	if !prefix {
		pattern.WriteByte('$')
	}

	if err := checkDuplicateVars(varsN); err != nil {
		return nil, err
	}

	reg, err := regexp.Compile(pattern.String())
	if err != nil {
		return nil, fmt.Errorf("mux: invalid template %q: %w", tpl, err)
	}

	return &routeTemplate{
		template: tpl,
		regexp:   reg,
		varsN:    varsN,
		prefix:   prefix,
	}, nil
}

func (t *routeTemplate) matches(path string) bool {
	return t.regexp.MatchString(path)
}

// setVars stores the variables of path in dst, percent-decoded.
func (t *routeTemplate) setVars(path string, dst map[string]string) {
	matches := t.regexp.FindStringSubmatch(path)
	if len(matches) != len(t.varsN)+1 {
		return
	}
	for i, name := range t.varsN {
		v := matches[i+1]
		if unescaped, err := url.PathUnescape(v); err == nil {
			v = unescaped
		}
		dst[name] = v
	}
}

// checkDuplicateVars returns an error if any variable name is repeated.
func checkDuplicateVars(vars []string) error {
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if seen[v] {
			return fmt.Errorf("mux: duplicated route variable %q", v)
		}
		seen[v] = true
	}
	return nil
}
