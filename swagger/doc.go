// Package swagger generates Swagger 1.2 discovery documents from the routes
// mounted on a mux.Router and serves them over HTTP.
//
// Routes are documented by attaching field validation rules to them. The
// registry compiles those rules into operation parameters and body models,
// groups operations into resources by the first path segment and serves one
// document per resource next to a resource listing:
//
//	r := mux.NewRouter()
//	reg := swagger.NewRegistry()
//
//	reg.Route(r.HandleFunc("/pets/:id", updatePet).Methods(http.MethodPut)).
//	    Summary("Update a pet").
//	    Validation(validation.Rules{
//	        "name":          validation.Field(validation.FieldRule{Scope: validation.ScopeBody, Required: validation.Bool(true)}),
//	        "owner.email":   validation.Field(validation.FieldRule{Scope: validation.ScopeBody}),
//	        "X-Request-Tag": validation.Field(validation.FieldRule{Scope: validation.ScopeHeader}),
//	    })
//
//	if err := reg.Configure(r, swagger.Config{Version: "1.0.0"}); err != nil {
//	    log.Fatal(err)
//	}
//	if err := reg.LoadRoutes(); err != nil {
//	    log.Fatal(err)
//	}
//
//	// GET /swagger/resources.json  lists the resources
//	// GET /swagger/pets            documents /pets/{id}
//
// # Body models
//
// Body fields are collected into a model named after the route ("PetsId"
// above). Dotted field names nest: "owner.email" yields an "owner" property
// that is hoisted into its own "Owner" model and referenced by name.
//
// # Authorization
//
// Routes may declare the scopes allowed to see them with Authorizations.
// A resource document lists a path only when the caller holds one of the
// scopes required by the path's first operation. Callers present a
// credential in the api_key query parameter or header; a ScopeResolver
// (for example an AccessControlFunc) maps it to scopes. Everyone holds the
// "public" scope.
//
// # Output formats
//
// Documents are JSON by default and YAML with ?format=yaml. ExportOpenAPI3
// converts rendered documents into an OpenAPI 3 document.
package swagger
