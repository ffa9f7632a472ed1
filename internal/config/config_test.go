package config

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/swaggerdoc/swagger"
)

func TestDefault(t *testing.T) {
	f := Default()

	assert.Equal(t, DefaultAddr, f.Server.Addr)
	assert.Equal(t, DefaultReadHeaderTimeout, f.Server.ReadHeaderTimeout)
	assert.Equal(t, DefaultShutdownTimeout, f.Server.ShutdownTimeout)
	assert.Equal(t, "info", f.Log.Level)
	assert.Equal(t, "text", f.Log.Format)
	assert.Equal(t, swagger.Config{}, f.Swagger)
}

func TestParse(t *testing.T) {
	data := []byte(`
server:
  addr: 127.0.0.1:9000
  shutdownTimeout: 3s
log:
  level: debug
  format: json
apiKeys:
  s3cret: "Admin, user"
swagger:
  pathPrefix: /docs
  version: 2.0.0
  basePath: https://api.example.com
  blacklist: [internal]
  allowMethodInModelNames: true
  apiDescriptions:
    pets: Everything about pets
  produces: [application/json, application/xml]
  responseMessages:
    - code: 400
      message: Bad Request
  openapiPath: /openapi.json
  info:
    title: Petstore
    license: MIT
`)

	f, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", f.Server.Addr)
	assert.Equal(t, 3*time.Second, f.Server.ShutdownTimeout)
	assert.Equal(t, DefaultReadHeaderTimeout, f.Server.ReadHeaderTimeout)
	assert.Equal(t, Log{Level: "debug", Format: "json"}, f.Log)

	sc := f.Swagger
	assert.Equal(t, "/docs", sc.PathPrefix)
	assert.Equal(t, "2.0.0", sc.Version)
	assert.Equal(t, "https://api.example.com", sc.BasePath)
	assert.Equal(t, []string{"internal"}, sc.Blacklist)
	assert.True(t, sc.AllowMethodInModelNames)
	assert.Equal(t, map[string]string{"pets": "Everything about pets"}, sc.APIDescriptions)
	assert.Equal(t, []string{"application/json", "application/xml"}, sc.Produces)
	assert.Equal(t, []swagger.ResponseMessage{{Code: 400, Message: "Bad Request"}}, sc.ResponseMessages)
	assert.Equal(t, "/openapi.json", sc.OpenAPIPath)
	require.NotNil(t, sc.Info)
	assert.Equal(t, "Petstore", sc.Info.Title)
	assert.Equal(t, "MIT", sc.Info.License)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{name: "unknown key", data: "swagger:\n  pathprefix: /x\n", want: "pathprefix"},
		{name: "bad level", data: "log:\n  level: loud\n", want: `unknown log level "loud"`},
		{name: "bad format", data: "log:\n  format: xml\n", want: `unknown log format "xml"`},
		{name: "relative prefix", data: "swagger:\n  pathPrefix: docs\n", want: "must start with a slash"},
		{name: "bad duration", data: "server:\n  shutdownTimeout: soon\n", want: "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	f, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), f)
}

func TestLoad(t *testing.T) {
	t.Run("empty path", func(t *testing.T) {
		f, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default(), f)
	})

	t.Run("file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "swaggerdoc.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: :9999\n"), 0o600))

		f, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, ":9999", f.Server.Addr)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name   string
		log    Log
		want   string
		silent bool
	}{
		{name: "text", log: Log{Level: "info", Format: "text"}, want: "msg=hello"},
		{name: "json", log: Log{Level: "info", Format: "json"}, want: `"msg":"hello"`},
		{name: "level filters", log: Log{Level: "error", Format: "text"}, silent: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f := &File{Log: tt.log}

			logger, err := f.Logger(&buf)
			require.NoError(t, err)
			logger.Info("hello")

			if tt.silent {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestSwaggerConfig(t *testing.T) {
	f := Default()
	f.Swagger.Version = "3.0.0"

	cfg := f.SwaggerConfig(swagger.NopLogger{})
	assert.Equal(t, "3.0.0", cfg.Version)
	assert.Equal(t, swagger.NopLogger{}, cfg.Logger)
	assert.Nil(t, cfg.ScopeResolver)

	f.APIKeys = map[string]string{"s3cret": "Admin, user"}
	cfg = f.SwaggerConfig(nil)
	require.NotNil(t, cfg.ScopeResolver)

	tests := []struct {
		name   string
		target string
		header string
		want   []string
	}{
		{name: "no key", target: "/swagger/pets", want: []string{swagger.ScopePublic}},
		{name: "unknown key", target: "/swagger/pets?api_key=other", want: []string{swagger.ScopePublic}},
		{name: "query key", target: "/swagger/pets?api_key=s3cret", want: []string{"admin", "user"}},
		{name: "header key", target: "/swagger/pets", header: "s3cret", want: []string{"admin", "user"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(swagger.APIKeyParam, tt.header)
			}
			assert.Equal(t, tt.want, cfg.ScopeResolver.ResolveScopes(req))
		})
	}
}
