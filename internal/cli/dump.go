package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/swaggerdoc/swagger"
)

// Dump output formats.
const (
	formatJSON     = "json"
	formatYAML     = "yaml"
	formatOpenAPI3 = "openapi3"
)

type dumpOptions struct {
	resource string
	format   string
	apiKey   string
	host     string
	validate bool
}

func newDumpCmd() *cobra.Command {
	opts := &dumpOptions{}

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print a discovery document without starting a server",
		Long: "Print the resource listing, one API declaration (--resource) or the whole API " +
			"converted to OpenAPI 3 (--format openapi3), as seen by the caller holding --api-key.",
		Example: `  swaggerdoc dump
  swaggerdoc dump --resource /swagger/pets --format yaml
  swaggerdoc dump --format openapi3 --api-key s3cret --validate`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.check(); err != nil {
				return err
			}
			a, _, err := newApp(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runDump(cmd, a, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.resource, "resource", "", "Resource path to print (default: the resource listing)")
	flags.StringVar(&opts.format, "format", formatJSON, "Output format (json|yaml|openapi3)")
	flags.StringVar(&opts.apiKey, "api-key", "", "Credential sent as the api_key query parameter")
	flags.StringVar(&opts.host, "host", "localhost", "Host used for the default base path")
	flags.BoolVar(&opts.validate, "validate", false, "Validate the OpenAPI 3 document before printing it")

	return cmd
}

func (o *dumpOptions) check() error {
	switch o.format {
	case formatJSON, formatYAML:
		if o.validate {
			return newUsageError("dump: --validate requires --format openapi3")
		}
	case formatOpenAPI3:
		if o.resource != "" {
			return newUsageError("dump: --resource cannot be combined with --format openapi3")
		}
	default:
		return newUsageError(fmt.Sprintf("dump: unknown format %q (want json, yaml or openapi3)", o.format))
	}
	return nil
}

func runDump(cmd *cobra.Command, a *app, opts *dumpOptions) error {
	ctx := cmd.Context()

	req, err := opts.request(cmd, "/"+strings.TrimPrefix(opts.resource, "/"))
	if err != nil {
		return err
	}

	var doc any
	switch {
	case opts.format == formatOpenAPI3:
		listing, decls, err := a.registry.RenderAll(req)
		if err != nil {
			return err
		}
		out := swagger.ExportOpenAPI3(listing, decls)
		if opts.validate {
			if err := out.Validate(ctx); err != nil {
				return fmt.Errorf("dump: invalid OpenAPI document: %w", err)
			}
		}
		doc = out
	case opts.resource != "":
		res, ok := a.registry.Resource(opts.resource)
		if !ok {
			return newUsageError(fmt.Sprintf("dump: unknown resource %q", opts.resource))
		}
		if doc, err = a.registry.RenderResource(res, req); err != nil {
			return err
		}
	default:
		if doc, err = a.registry.RenderRoot(req); err != nil {
			return err
		}
	}

	return encode(cmd.OutOrStdout(), opts.format, doc)
}

func (o *dumpOptions) request(cmd *cobra.Command, path string) (*http.Request, error) {
	u := &url.URL{Scheme: "http", Host: o.host, Path: path}
	if o.apiKey != "" {
		u.RawQuery = url.Values{swagger.APIKeyParam: {o.apiKey}}.Encode()
	}
	return http.NewRequestWithContext(cmd.Context(), http.MethodGet, u.String(), nil)
}

func encode(w io.Writer, format string, doc any) error {
	if strings.EqualFold(format, formatYAML) {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
