// Package validation describes per-field validation metadata attached to
// routes by their authors.
//
// A field is described by one or more FieldRule fragments. Fragments are
// merged left to right, so a later fragment overrides attributes set by an
// earlier one:
//
//	rules := validation.Rules{
//	    "name":   validation.Field(validation.FieldRule{Scope: validation.ScopeBody, Required: validation.Bool(true)}),
//	    "limit":  validation.Field(validation.FieldRule{Scope: validation.ScopeQuery, IsInt: validation.Bool(true)}),
//	    "X-Auth": validation.Field(validation.FieldRule{Scope: validation.ScopeHeader}),
//	}
//
// Structured request bodies are frequently described with flattened keys
// ("address.street"). Deflatten rebuilds the nested structure and is the
// left inverse of Flatten.
package validation
