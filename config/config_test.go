package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
env:
  env: test
  serviceName: uiagate
  log:
    level: debug
http:
  port: 8008
uia:
  username:
    pendingTimeout: 600s
    domain: example.org
  terms:
    policies:
      - name: privacy
        version: "1.0"
        en:
          name: Privacy Policy
          url: https://example.org/privacy/1.0.html
          markdownUrl: https://example.org/privacy/1.0.md
  routes:
    - path: /_matrix/client/v3/register
      method: post
      flows:
        - stages: [m.login.terms, m.enroll.username]
        - stages: [m.login.registration_token, m.enroll.username]
`

func writeConfig(t *testing.T, content string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ParsesRoutesAndPolicies(t *testing.T) {
	writeConfig(t, sampleConfig)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)
	cfg.applyDefaults()

	require.Len(t, cfg.UIA.Routes, 1)
	route := cfg.UIA.Routes[0]
	assert.Equal(t, "/_matrix/client/v3/register", route.Path)
	assert.Equal(t, "POST", route.Method)
	require.Len(t, route.Flows, 2)
	assert.Equal(t, []string{"m.login.terms", "m.enroll.username"}, route.Flows[0].Stages)

	require.Len(t, cfg.UIA.Terms.Policies, 1)
	policy := cfg.UIA.Terms.Policies[0]
	assert.Equal(t, "privacy", policy.Name)
	assert.Equal(t, "1.0", policy.Version)
	require.NotNil(t, policy.EN)
	assert.Equal(t, "https://example.org/privacy/1.0.md", policy.EN.MarkdownURL)

	assert.Equal(t, 600*time.Second, cfg.UIA.Username.PendingTimeout)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	assert.Nil(t, cfg.Redis)
	require.NoError(t, cfg.Validate())
}

func TestLoadWithEnv_EnvOverridesPendingTimeout(t *testing.T) {
	writeConfig(t, sampleConfig)
	t.Setenv("UIA_USERNAME_PENDINGTIMEOUT", "30s")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.UIA.Username.PendingTimeout)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.ErrorContains(t, err, "config.yaml not found")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.UIA.Routes = []RouteConfig{{
			Path:   "/register",
			Method: "POST",
			Flows:  []FlowConfig{{Stages: []string{"m.login.dummy"}}},
		}}

		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{
			name:    "relative path",
			mutate:  func(cfg *Config) { cfg.UIA.Routes[0].Path = "register" },
			wantErr: "must start with /",
		},
		{
			name:    "bad method",
			mutate:  func(cfg *Config) { cfg.UIA.Routes[0].Method = "BREW" },
			wantErr: "unsupported method",
		},
		{
			name:    "no flows",
			mutate:  func(cfg *Config) { cfg.UIA.Routes[0].Flows = nil },
			wantErr: "has no flows",
		},
		{
			name:    "empty flow",
			mutate:  func(cfg *Config) { cfg.UIA.Routes[0].Flows = []FlowConfig{{}} },
			wantErr: "flow has no stages",
		},
		{
			name: "duplicate route",
			mutate: func(cfg *Config) {
				cfg.UIA.Routes = append(cfg.UIA.Routes, cfg.UIA.Routes[0])
			},
			wantErr: "duplicate route",
		},
		{
			name: "policy without version",
			mutate: func(cfg *Config) {
				cfg.UIA.Terms.Policies = []PolicyConfig{{Name: "privacy"}}
			},
			wantErr: "name and version are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
