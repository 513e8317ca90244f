package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// validation
// ─────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		nodeAPIURL string
		wantErr    bool
	}{
		{name: "http URL passes", nodeAPIURL: "http://localhost:1633", wantErr: false},
		{name: "https URL passes", nodeAPIURL: "https://bee.example.com", wantErr: false},
		{name: "trailing slash passes", nodeAPIURL: "http://localhost:1633/", wantErr: false},
		{name: "empty URL fails", nodeAPIURL: "", wantErr: true},
		{name: "missing scheme fails", nodeAPIURL: "localhost:1633", wantErr: true},
		{name: "unsupported scheme fails", nodeAPIURL: "ftp://localhost:1633", wantErr: true},
		{name: "scheme without host fails", nodeAPIURL: "http://", wantErr: true},
		{name: "garbage fails", nodeAPIURL: "://not a url", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{
				Adapter: Adapter{NodeAPIURL: tt.nodeAPIURL},
			}

			err := cfg.validate()

			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ─────────────────────────────────────────────
// defaults
// ─────────────────────────────────────────────

func TestApplyDefaults_FillsUnsetValues(t *testing.T) {
	cfg := &StructuredConfig{}

	cfg.applyDefaults()

	assert.Equal(t, DefaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{
		Server:  Server{HTTPAddress: ":9999"},
		Adapter: Adapter{RequestTimeout: 3 * time.Second},
	}

	cfg.applyDefaults()

	assert.Equal(t, ":9999", cfg.Server.HTTPAddress)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
}

func TestApplyDefaults_ReplacesNegativeTimeout(t *testing.T) {
	cfg := &StructuredConfig{
		Adapter: Adapter{RequestTimeout: -time.Second},
	}

	cfg.applyDefaults()

	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
}

// ─────────────────────────────────────────────
// environment source
// ─────────────────────────────────────────────

func TestParseEnv_ReadsPrefixedVariables(t *testing.T) {
	t.Setenv("APP_VERSION", "1.2.3")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8000")
	t.Setenv("SERVER_METRICS_ADDRESS", "0.0.0.0:9090")
	t.Setenv("ADAPTER_NODE_API_URL", "http://localhost:1633")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "15s")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.HTTPAddress)
	assert.Equal(t, "0.0.0.0:9090", cfg.Server.MetricsAddress)
	assert.Equal(t, "http://localhost:1633", cfg.Adapter.NodeAPIURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidDurationFails(t *testing.T) {
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}

// ─────────────────────────────────────────────
// JSON source
// ─────────────────────────────────────────────

func TestParseJSON_ReadsFullConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"app": {"version": "2.0.0"},
		"server": {"http_address": ":8080", "metrics_address": ":9090"},
		"adapter": {"node_api_url": "http://bee:1633", "request_timeout": "30s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddress)
	assert.Equal(t, ":9090", cfg.Server.MetricsAddress)
	assert.Equal(t, "http://bee:1633", cfg.Adapter.NodeAPIURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseJSON_MissingFileFails(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))

	assert.Error(t, err)
}

func TestParseJSON_InvalidJSONFails(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	_, err := parseJSON(path)

	assert.Error(t, err)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// ─────────────────────────────────────────────
// Duration
// ─────────────────────────────────────────────

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "duration string", input: `"10s"`, want: 10 * time.Second},
		{name: "minutes string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "plain nanoseconds", input: `5000000000`, want: 5 * time.Second},
		{name: "unparsable string", input: `"soon"`, wantErr: true},
		{name: "wrong type", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

// ─────────────────────────────────────────────
// NetAddress
// ─────────────────────────────────────────────

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "localhost with port", input: "localhost:8000", wantHost: "localhost", wantPort: 8000},
		{name: "ip with port", input: "127.0.0.1:9090", wantHost: "127.0.0.1", wantPort: 9090},
		{name: "empty host", input: ":8000", wantHost: "", wantPort: 8000},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "non-numeric port", input: "localhost:http", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "not_an_ip:8000", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, a.Host)
			assert.Equal(t, tt.wantPort, a.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	assert.Empty(t, (&NetAddress{}).String())
	assert.Equal(t, "localhost:8000", (&NetAddress{Host: "localhost", Port: 8000}).String())
	assert.Equal(t, ":9090", (&NetAddress{Port: 9090}).String())
}
