package swagger

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"

	"github.com/vitalvas/swaggerdoc/mux"
)

// setCORSHeaders allows browser-hosted documentation viewers on any origin
// to read discovery documents.
func setCORSHeaders(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, PATCH, POST, DELETE, PUT")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

// writeDocument encodes v as YAML when the request asks for ?format=yaml,
// else as JSON.
func writeDocument(w http.ResponseWriter, req *http.Request, v any) {
	setCORSHeaders(w)
	if strings.EqualFold(req.URL.Query().Get("format"), "yaml") {
		mux.ResponseYAML(w, http.StatusOK, v)
		return
	}
	mux.ResponseJSON(w, http.StatusOK, v)
}

func (r *Registry) writeError(w http.ResponseWriter, req *http.Request, err error) {
	r.mu.RLock()
	log := r.logger
	r.mu.RUnlock()

	log.Error("swagger render failed", "path", req.URL.Path, "error", err)
	setCORSHeaders(w)
	http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
}

func (r *Registry) rootHandler(w http.ResponseWriter, req *http.Request) {
	listing, err := r.RenderRoot(req)
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	writeDocument(w, req, listing)
}

// resourceHandler serves the resource registered under path at the time
// of the request.
func (r *Registry) resourceHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		res, ok := r.Resource(path)
		if !ok {
			if r.isConfigured() {
				http.NotFound(w, req)
				return
			}
			r.writeError(w, req, &NotConfiguredError{Op: "RenderResource"})
			return
		}

		decl, err := r.RenderResource(res, req)
		if err != nil {
			r.writeError(w, req, err)
			return
		}
		writeDocument(w, req, decl)
	}
}

func (r *Registry) openAPIHandler(w http.ResponseWriter, req *http.Request) {
	listing, decls, err := r.RenderAll(req)
	if err != nil {
		r.writeError(w, req, err)
		return
	}
	writeDocument(w, req, ExportOpenAPI3(listing, decls))
}

func (r *Registry) docsHandler(w http.ResponseWriter, req *http.Request) {
	r.mu.RLock()
	configured := r.configured
	cfg := r.cfg
	r.mu.RUnlock()

	if !configured {
		r.writeError(w, req, &NotConfiguredError{Op: "Docs"})
		return
	}

	title := "API documentation"
	if cfg.Info != nil && cfg.Info.Title != "" {
		title = cfg.Info.Title
	}
	specURL := cfg.OpenAPIPath
	if specURL == "" {
		specURL = cfg.discoveryURL()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, swaggerUIPage(title, specURL))
}

func swaggerUIPage(title, specURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%s</title>
<link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist/swagger-ui-bundle.js"></script>
<script>
SwaggerUIBundle({url: %q, dom_id: "#swagger-ui"});
</script>
</body>
</html>`, html.EscapeString(title), specURL)
}
