// Package config loads the documentation server configuration from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vitalvas/swaggerdoc/swagger"
)

// Defaults for zero fields.
const (
	DefaultAddr              = ":8080"
	DefaultReadHeaderTimeout = 5 * time.Second
	DefaultShutdownTimeout   = 10 * time.Second
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
)

// File is the content of a configuration file.
//
//	server:
//	  addr: ":8080"
//	log:
//	  level: debug
//	  format: json
//	apiKeys:
//	  s3cret: "admin, user"
//	swagger:
//	  pathPrefix: /swagger
//	  version: 2.0.0
//	  info:
//	    title: Petstore
type File struct {
	Server  Server         `yaml:"server"`
	Log     Log            `yaml:"log"`
	Swagger swagger.Config `yaml:"swagger"`

	// APIKeys maps an api_key credential to the scopes it grants, space
	// or comma separated.
	APIKeys map[string]string `yaml:"apiKeys"`
}

type Server struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"readHeaderTimeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdownTimeout"`
}

type Log struct {
	// Level is debug, info, warn or error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// Default returns a configuration with every default applied.
func Default() *File {
	f := &File{}
	f.applyDefaults()
	return f
}

// Load reads the file at path. An empty path yields Default(). Unknown keys
// are rejected.
func Load(path string) (*File, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a YAML document. An empty document yields Default().
func Parse(data []byte) (*File, error) {
	f := &File{}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	f.applyDefaults()
	if err := f.validate(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) applyDefaults() {
	if f.Server.Addr == "" {
		f.Server.Addr = DefaultAddr
	}
	if f.Server.ReadHeaderTimeout == 0 {
		f.Server.ReadHeaderTimeout = DefaultReadHeaderTimeout
	}
	if f.Server.ShutdownTimeout == 0 {
		f.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if f.Log.Level == "" {
		f.Log.Level = DefaultLogLevel
	}
	if f.Log.Format == "" {
		f.Log.Format = DefaultLogFormat
	}
}

func (f *File) validate() error {
	if _, err := parseLevel(f.Log.Level); err != nil {
		return err
	}
	switch f.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", f.Log.Format)
	}
	if p := f.Swagger.PathPrefix; p != "" && !strings.HasPrefix(p, "/") {
		return fmt.Errorf("swagger.pathPrefix must start with a slash, got %q", p)
	}
	return nil
}

// Logger builds the slog logger described by the log section.
func (f *File) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(f.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	if f.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// SwaggerConfig returns the registry options with the logger and the
// api key resolver installed.
func (f *File) SwaggerConfig(logger swagger.Logger) swagger.Config {
	cfg := f.Swagger
	cfg.Logger = logger
	if len(f.APIKeys) > 0 {
		cfg.ScopeResolver = f.scopeResolver()
	}
	return cfg
}

// scopeResolver looks the request's api_key up in APIKeys.
func (f *File) scopeResolver() swagger.AccessControlFunc {
	keys := f.APIKeys
	return func(r *http.Request) string {
		key := r.URL.Query().Get(swagger.APIKeyParam)
		if key == "" {
			key = r.Header.Get(swagger.APIKeyParam)
		}
		return keys[key]
	}
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
