package swagger

import "strings"

// Defaults applied to zero Config fields.
const (
	DefaultPathPrefix = "/swagger"
	DefaultAPIVersion = "1.0.0"
	DefaultMediaType  = "application/json"
)

// Config holds the registry-wide options. Zero fields take the defaults
// documented on each field.
type Config struct {
	// PathPrefix is prepended to every resource path (default "/swagger").
	PathPrefix string `yaml:"pathPrefix"`

	// DiscoveryURL serves the resource listing
	// (default PathPrefix + "/resources.json").
	DiscoveryURL string `yaml:"discoveryUrl"`

	// Version is the declared API version (default "1.0.0").
	Version string `yaml:"version"`

	// BasePath is the API base URL. When empty, "http://" plus the request
	// host is used.
	BasePath string `yaml:"basePath"`

	Info *Info `yaml:"info"`

	// Blacklist lists resource groups whose routes are never documented.
	Blacklist []string `yaml:"blacklist"`

	// AllowMethodInModelNames prefixes body model names with the HTTP
	// method, so one URL registered under several methods yields distinct
	// models.
	AllowMethodInModelNames bool `yaml:"allowMethodInModelNames"`

	// APIDescriptions maps a resource group (resource path without the
	// prefix) to its description.
	APIDescriptions map[string]string `yaml:"apiDescriptions"`

	// Produces, Consumes and ResponseMessages are used by routes that do
	// not declare their own.
	Produces         []string          `yaml:"produces"`
	Consumes         []string          `yaml:"consumes"`
	ResponseMessages []ResponseMessage `yaml:"responseMessages"`

	// OpenAPIPath, when set, serves the documentation converted to
	// OpenAPI 3 as JSON.
	OpenAPIPath string `yaml:"openapiPath"`

	// DocsPath, when set, serves a Swagger UI page. It points at
	// OpenAPIPath when configured, else at DiscoveryURL.
	DocsPath string `yaml:"docsPath"`

	// ScopeResolver resolves caller scopes for every resource that has no
	// resolver of its own. Nil grants only the public scope.
	ScopeResolver ScopeResolver `yaml:"-"`

	Logger Logger `yaml:"-"`
}

func (c Config) pathPrefix() string {
	if c.PathPrefix == "" {
		return DefaultPathPrefix
	}
	return strings.TrimRight(c.PathPrefix, "/")
}

func (c Config) discoveryURL() string {
	if c.DiscoveryURL == "" {
		return c.pathPrefix() + "/resources.json"
	}
	return c.DiscoveryURL
}

func (c Config) apiVersion() string {
	if c.Version == "" {
		return DefaultAPIVersion
	}
	return c.Version
}

func (c Config) logger() Logger {
	if c.Logger == nil {
		return NopLogger{}
	}
	return c.Logger
}

// resourcePath returns the discovery path of a resource group.
func (c Config) resourcePath(group string) string {
	return c.pathPrefix() + "/" + group
}

// apiDescription looks up the description of a resource path.
func (c Config) apiDescription(resourcePath string) string {
	group := strings.TrimPrefix(resourcePath, c.pathPrefix()+"/")
	return c.APIDescriptions[group]
}

func (c Config) blacklisted(group string) bool {
	for _, b := range c.Blacklist {
		if b == group {
			return true
		}
	}
	return false
}

func (c Config) produces() []string {
	if len(c.Produces) == 0 {
		return []string{DefaultMediaType}
	}
	return c.Produces
}

func (c Config) consumes() []string {
	if len(c.Consumes) == 0 {
		return []string{DefaultMediaType}
	}
	return c.Consumes
}

func (c Config) responseMessages() []ResponseMessage {
	if len(c.ResponseMessages) == 0 {
		return []ResponseMessage{{Code: 500, Message: "Internal Server Error"}}
	}
	return c.ResponseMessages
}
