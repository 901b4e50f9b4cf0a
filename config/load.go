package config

import (
	"fmt"
	"os"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/simonnilsson/ask"
	log "github.com/sirupsen/logrus"
	"github.com/thoas/go-funk"
)

const (
	EnvProfile         = "TODO_CONFIG_PROFILE"
	EnvFile            = "TODO_CONFIG_FILE"
	EnvAPIEndpoint     = "TODO_API_ENDPOINT"
	EnvAuthDomain      = "AUTH0_DOMAIN"
	EnvAuthClientID    = "AUTH0_CLIENT_ID"
	EnvAuthCallbackURL = "AUTH0_CALLBACK_URL"
)

// Overrides replace individual profile values. Empty fields are ignored.
type Overrides struct {
	APIEndpoint     string
	AuthDomain      string
	AuthClientID    string
	AuthCallbackURL string
}

type Options struct {
	// Profile selects a built-in profile, falling back to TODO_CONFIG_PROFILE
	// and then DefaultProfile.
	Profile string
	// File is an optional JSON document, falling back to TODO_CONFIG_FILE.
	File      string
	Overrides Overrides
	Getenv    func(string) string
}

// Load resolves the configuration in order: profile, file, environment,
// explicit overrides. Each call builds a new Config.
func Load(opts Options) (*Config, error) {
	var getenv = opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	var profile = firstNonEmpty(opts.Profile, getenv(EnvProfile), DefaultProfile)
	build, ok := profiles[profile]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownProfile, profile, strings.Join(Profiles(), ", "))
	}
	var cfg = build()

	if file := firstNonEmpty(opts.File, getenv(EnvFile)); file != "" {
		fileOverrides, err := readFile(file)
		if err != nil {
			return nil, err
		}
		log.Debugf("[CONFIG] - Applying configuration file %s", file)
		cfg.apply(fileOverrides)
	}

	cfg.apply(Overrides{
		APIEndpoint:     getenv(EnvAPIEndpoint),
		AuthDomain:      getenv(EnvAuthDomain),
		AuthClientID:    getenv(EnvAuthClientID),
		AuthCallbackURL: getenv(EnvAuthCallbackURL),
	})
	cfg.apply(opts.Overrides)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	log.Infof("[CONFIG] - Loaded profile %q with API endpoint %s", cfg.profile, cfg.endpoint.APIEndpoint)
	return cfg, nil
}

func (c *Config) apply(o Overrides) {
	if funk.NotEmpty(o.APIEndpoint) {
		c.endpoint.APIEndpoint = o.APIEndpoint
	}
	if funk.NotEmpty(o.AuthDomain) {
		c.auth.Domain = o.AuthDomain
	}
	if funk.NotEmpty(o.AuthClientID) {
		c.auth.ClientID = o.AuthClientID
	}
	if funk.NotEmpty(o.AuthCallbackURL) {
		c.auth.CallbackURL = o.AuthCallbackURL
	}
}

func readFile(path string) (Overrides, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, fmt.Errorf("%w: %v", ErrSource, err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Overrides{}, fmt.Errorf("%w: %s: %v", ErrSource, path, err)
	}

	var o Overrides
	var fields = map[string]*string{
		"apiEndpoint":            &o.APIEndpoint,
		"authConfig.domain":      &o.AuthDomain,
		"authConfig.clientId":    &o.AuthClientID,
		"authConfig.callbackUrl": &o.AuthCallbackURL,
	}
	for key, target := range fields {
		answer := ask.For(doc, key)
		if !answer.Exists() {
			continue
		}
		value, ok := answer.String("")
		if !ok {
			return Overrides{}, fmt.Errorf("%w: %s: %s is not a string", ErrSource, path, key)
		}
		*target = value
	}
	return o, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
