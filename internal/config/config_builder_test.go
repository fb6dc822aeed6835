package config

import (
	"encoding/json"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// resetFlags gives ParseFlags a fresh flag set and a command line with args.
func resetFlags(t *testing.T, args ...string) {
	t.Helper()
	oldCommandLine := flag.CommandLine
	oldArgs := os.Args

	flag.CommandLine = flag.NewFlagSet("cmd", flag.ContinueOnError)
	os.Args = append([]string{"cmd"}, args...)

	t.Cleanup(func() {
		flag.CommandLine = oldCommandLine
		os.Args = oldArgs
	})
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RoutePrefix:     "/market",
			ShutdownTimeout: 10 * time.Second,
		},
		Upstream: Upstream{
			BaseURL:        "https://portals-market.com/api",
			AuthToken:      "tma secret",
			RequestTimeout: 10 * time.Second,
		},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty config fails validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that a non-zero field of a later
// config overrides the same field of an earlier one, while zero fields keep
// the earlier value.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{Upstream: Upstream{AuthToken: "from-flags"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.Upstream.AuthToken)
	assert.Equal(t, "https://portals-market.com/api", cfg.Upstream.BaseURL)
	assert.Equal(t, "/market", cfg.Server.RoutePrefix)
}

// TestBuild_MergesMultipleConfigs verifies that fields from multiple configs
// are merged into a single result.
func TestBuild_MergesMultipleConfigs(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{LogLevel: "warn"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("UPSTREAM_AUTH_TOKEN", "env-token")

	b := newConfigBuilder()
	b.withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-token", b.configs[0].Upstream.AuthToken)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_AppendsParsedFlags verifies that command-line flags become a
// config entry.
func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	resetFlags(t, "-token", "flag-token")

	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags())
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-token", b.configs[0].Upstream.AuthToken)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoOp_WhenNoPathSet verifies that withJSON does nothing when
// no config has a JSONFilePath.
func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

// TestWithJSON_AppendsConfig_WhenValidFile verifies that a valid JSON file is
// parsed and appended.
func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Upstream.AuthToken = "json-token"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-token", b.configs[1].Upstream.AuthToken)
}

// TestWithJSON_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when multiple configs have a
// JSONFilePath, the last non-empty one wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_DefaultsAndPriority exercises the full chain:
// env defaults, a flag override and a JSON override.
func TestGetStructuredConfig_DefaultsAndPriority(t *testing.T) {
	clearEnvVars(t)

	payload := StructuredJSONConfig{}
	payload.Upstream.AuthToken = "json-token"
	path := writeTempJSONConfig(t, payload)

	t.Setenv("UPSTREAM_AUTH_TOKEN", "env-token")
	resetFlags(t, "-request-timeout", "3s", "-c", path)

	cfg, err := GetStructuredConfig()
	require.NoError(t, err)

	assert.Equal(t, "json-token", cfg.Upstream.AuthToken)
	assert.Equal(t, 3*time.Second, cfg.Upstream.RequestTimeout)
	assert.Equal(t, "https://portals-market.com/api", cfg.Upstream.BaseURL)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "/market", cfg.Server.RoutePrefix)
}

// TestGetStructuredConfig_MissingToken verifies that the proxy refuses to
// start without an upstream credential.
func TestGetStructuredConfig_MissingToken(t *testing.T) {
	clearEnvVars(t)
	resetFlags(t)

	_, err := GetStructuredConfig()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingAuthToken)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"valid", func(*StructuredConfig) {}, nil},
		{"empty prefix is allowed", func(c *StructuredConfig) { c.Server.RoutePrefix = "" }, nil},
		{"empty address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"zero shutdown timeout", func(c *StructuredConfig) { c.Server.ShutdownTimeout = 0 }, ErrInvalidServerConfigs},
		{"prefix without leading slash", func(c *StructuredConfig) { c.Server.RoutePrefix = "market" }, ErrInvalidServerConfigs},
		{"prefix with trailing slash", func(c *StructuredConfig) { c.Server.RoutePrefix = "/market/" }, ErrInvalidServerConfigs},
		{"blank token", func(c *StructuredConfig) { c.Upstream.AuthToken = "  " }, ErrMissingAuthToken},
		{"base url without scheme", func(c *StructuredConfig) { c.Upstream.BaseURL = "portals-market.com" }, ErrInvalidUpstreamConfigs},
		{"zero request timeout", func(c *StructuredConfig) { c.Upstream.RequestTimeout = 0 }, ErrInvalidUpstreamConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
