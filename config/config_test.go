package config

import (
	"net/url"
	"os"
	"path/filepath"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func loadDefault(t *testing.T) *Config {
	t.Helper()
	cfg, err := Load(Options{Getenv: env(nil)})
	require.NoError(t, err)
	return cfg
}

func TestLoad_DefaultProfile(t *testing.T) {
	cfg := loadDefault(t)

	assert.Equal(t, ProfileDev, cfg.Profile())
	assert.Equal(t, "https://fo6qub5e53.execute-api.us-east-2.amazonaws.com/dev", cfg.APIEndpoint())
	assert.Equal(t, AuthConfig{
		Domain:      "dev-9ts9zgd3.eu.auth0.com",
		ClientID:    "yBDauQdTNmsNrR1RwnH60jUof6CWeZUj",
		CallbackURL: "http://localhost:3000/callback",
	}, cfg.Auth())
}

func TestAPIEndpoint_IsConstant(t *testing.T) {
	cfg := loadDefault(t)

	first := cfg.APIEndpoint()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, cfg.APIEndpoint())
	}
	assert.Equal(t, EndpointConfig{APIEndpoint: first}, cfg.Endpoint())
}

func TestAPIEndpoint_GatewayShape(t *testing.T) {
	u, err := url.Parse(loadDefault(t).APIEndpoint())
	require.NoError(t, err)

	assert.Equal(t, "https", u.Scheme)
	assert.NotEmpty(t, u.Host)
	assert.Equal(t, "/dev", u.Path)
}

func TestAuth_Fields(t *testing.T) {
	cfg := loadDefault(t)
	auth := cfg.Auth()

	assert.NotEmpty(t, auth.Domain)
	assert.NotEmpty(t, auth.ClientID)
	assert.NotEmpty(t, auth.CallbackURL)

	u, err := url.Parse(auth.CallbackURL)
	require.NoError(t, err)
	assert.NotEmpty(t, u.Scheme)
	assert.NotEmpty(t, u.Host)
	assert.NotEqual(t, cfg.APIEndpoint(), auth.CallbackURL)
}

func TestAuth_ReturnsCopy(t *testing.T) {
	cfg := loadDefault(t)

	first := cfg.Auth()
	first.ClientID = "tampered"
	second := cfg.Auth()

	assert.NotEqual(t, first, second)
	assert.Equal(t, "yBDauQdTNmsNrR1RwnH60jUof6CWeZUj", second.ClientID)
}

func TestLoad_TwiceIsDeepEqual(t *testing.T) {
	first := loadDefault(t)
	second := loadDefault(t)

	assert.NotSame(t, first, second)
	assert.Equal(t, first, second)
	assert.Equal(t, first.Auth(), second.Auth())
}

func TestLoad_SwitchToLocal(t *testing.T) {
	dev := loadDefault(t)

	local, err := Load(Options{Profile: ProfileLocal, Getenv: env(nil)})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3003/dev", local.APIEndpoint())
	assert.NotContains(t, local.APIEndpoint(), "execute-api")
	assert.Equal(t, ProfileLocal, local.Profile())
	assert.Equal(t, "https://fo6qub5e53.execute-api.us-east-2.amazonaws.com/dev", dev.APIEndpoint())
}

func TestLoad_Sources(t *testing.T) {
	tests := []struct {
		name         string
		opts         Options
		env          map[string]string
		wantEndpoint string
		wantAuth     AuthConfig
	}{
		{
			name:         "profile from environment",
			env:          map[string]string{EnvProfile: ProfileLocal},
			wantEndpoint: "http://localhost:3003/dev",
			wantAuth:     newConfig(ProfileLocal, "").auth,
		},
		{
			name: "environment overrides",
			env: map[string]string{
				EnvAPIEndpoint:     "https://abc.execute-api.eu-west-1.amazonaws.com/prod",
				EnvAuthDomain:      "tenant.eu.auth0.com",
				EnvAuthClientID:    "client",
				EnvAuthCallbackURL: "https://todo.example.com/callback",
			},
			wantEndpoint: "https://abc.execute-api.eu-west-1.amazonaws.com/prod",
			wantAuth: AuthConfig{
				Domain:      "tenant.eu.auth0.com",
				ClientID:    "client",
				CallbackURL: "https://todo.example.com/callback",
			},
		},
		{
			name: "explicit overrides win over environment",
			opts: Options{
				Profile:   ProfileDev,
				Overrides: Overrides{APIEndpoint: "http://127.0.0.1:9000/dev"},
			},
			env: map[string]string{
				EnvProfile:     ProfileLocal,
				EnvAPIEndpoint: "http://localhost:4000/dev",
			},
			wantEndpoint: "http://127.0.0.1:9000/dev",
			wantAuth:     newConfig(ProfileDev, "").auth,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Getenv = env(tt.env)

			cfg, err := Load(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEndpoint, cfg.APIEndpoint())
			assert.Equal(t, tt.wantAuth, cfg.Auth())
		})
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"apiEndpoint": "https://xyz.execute-api.us-east-1.amazonaws.com/staging",
		"authConfig": {"clientId": "from-file"}
	}`), 0o600))

	cfg, err := Load(Options{File: path, Getenv: env(map[string]string{EnvAuthClientID: "from-env"})})
	require.NoError(t, err)

	assert.Equal(t, "https://xyz.execute-api.us-east-1.amazonaws.com/staging", cfg.APIEndpoint())
	assert.Equal(t, "from-env", cfg.Auth().ClientID)
	assert.Equal(t, "dev-9ts9zgd3.eu.auth0.com", cfg.Auth().Domain)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte(`{"apiEndpoint":`), 0o600))
	wrongType := filepath.Join(dir, "wrong-type.json")
	require.NoError(t, os.WriteFile(wrongType, []byte(`{"authConfig": {"domain": 42}}`), 0o600))

	tests := []struct {
		name    string
		opts    Options
		env     map[string]string
		wantErr error
	}{
		{name: "unknown profile", opts: Options{Profile: "prod"}, wantErr: ErrUnknownProfile},
		{name: "missing file", opts: Options{File: filepath.Join(dir, "absent.json")}, wantErr: ErrSource},
		{name: "malformed file", opts: Options{File: malformed}, wantErr: ErrSource},
		{name: "non-string value", env: map[string]string{EnvFile: wrongType}, wantErr: ErrSource},
		{name: "relative endpoint", env: map[string]string{EnvAPIEndpoint: "/dev"}, wantErr: ErrInvalid},
		{name: "unsupported scheme", env: map[string]string{EnvAPIEndpoint: "ftp://host/dev"}, wantErr: ErrInvalid},
		{name: "domain with scheme", env: map[string]string{EnvAuthDomain: "https://tenant.auth0.com"}, wantErr: ErrInvalid},
		{name: "callback without host", env: map[string]string{EnvAuthCallbackURL: "http:///callback"}, wantErr: ErrInvalid},
		{
			name:    "callback equals endpoint",
			opts:    Options{Overrides: Overrides{AuthCallbackURL: "https://fo6qub5e53.execute-api.us-east-2.amazonaws.com/dev"}},
			wantErr: ErrInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Getenv = env(tt.env)

			cfg, err := Load(tt.opts)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, cfg)
		})
	}
}

func TestValidate_RequiresFields(t *testing.T) {
	cfg := newConfig(ProfileDev, GatewayURL("id", "eu-west-1", "dev"))
	require.NoError(t, Validate(cfg))

	cfg.auth.ClientID = ""
	assert.ErrorIs(t, Validate(cfg), ErrInvalid)

	cfg = newConfig(ProfileDev, "")
	assert.ErrorIs(t, Validate(cfg), ErrInvalid)
}

func TestValidate_Nil(t *testing.T) {
	err := Validate(nil)
	assert.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "nil config")
}

func TestProfiles(t *testing.T) {
	assert.Equal(t, []string{ProfileDev, ProfileLocal}, Profiles())
}

func TestConfig_MarshalJSON(t *testing.T) {
	raw, err := json.Marshal(loadDefault(t))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"profile": "dev",
		"apiEndpoint": "https://fo6qub5e53.execute-api.us-east-2.amazonaws.com/dev",
		"authConfig": {
			"domain": "dev-9ts9zgd3.eu.auth0.com",
			"clientId": "yBDauQdTNmsNrR1RwnH60jUof6CWeZUj",
			"callbackUrl": "http://localhost:3000/callback"
		}
	}`, string(raw))
}
