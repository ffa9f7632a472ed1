// Package mux implements a request router whose path templates use
// restify-style variables.
//
// A ":" inside a path segment starts a variable that runs to the end of the
// segment:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/pets/:petId", GetPet).Methods(http.MethodGet)
//	r.HandleFunc("/pets/:petId/photos/:photoId", GetPhoto).Methods(http.MethodGet)
//
// Handlers read the extracted values through Vars or VarGet:
//
//	id, ok := mux.VarGet(r, "petId")
//
// # Subrouters
//
// Routes can be grouped under a shared prefix. The subrouter's routes carry
// the full template, so GetPathTemplate on a nested route reports the path a
// client would request:
//
//	api := r.PathPrefix("/api").Subrouter()
//	api.HandleFunc("/pets/:petId", GetPet) // template "/api/pets/:petId"
//
// # Errors
//
// NotFoundHandler runs when no route matches (RFC 9110 Section 15.5.5).
// MethodNotAllowedHandler runs when a path matches under another method;
// the Allow header is set before it is invoked (RFC 9110 Section 15.5.6).
//
// # Walking routes
//
// Walk visits every route, subrouters included. Documentation generators use
// it to enumerate mounted endpoints:
//
//	r.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
//	    tpl, _ := route.GetPathTemplate()
//	    methods, _ := route.GetMethods()
//	    fmt.Println(methods, tpl)
//	    return nil
//	})
//
// Return SkipRouter to skip descending into a subrouter.
package mux
