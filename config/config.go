package config

import (
	"errors"

	json "github.com/json-iterator/go"
)

var (
	ErrUnknownProfile = errors.New("unknown configuration profile")
	ErrSource         = errors.New("unreadable configuration source")
	ErrInvalid        = errors.New("invalid configuration")
)

type EndpointConfig struct {
	APIEndpoint string `json:"apiEndpoint"`
}

type AuthConfig struct {
	Domain      string `json:"domain"`
	ClientID    string `json:"clientId"`
	CallbackURL string `json:"callbackUrl"`
}

// Config is resolved once by Load and is read-only afterwards. Accessors hand
// out copies, so it is safe to share between goroutines. A nil *Config is not
// usable; Validate rejects it.
type Config struct {
	profile  string
	endpoint EndpointConfig
	auth     AuthConfig
}

func (c *Config) Profile() string {
	return c.profile
}

func (c *Config) APIEndpoint() string {
	return c.endpoint.APIEndpoint
}

func (c *Config) Endpoint() EndpointConfig {
	return c.endpoint
}

func (c *Config) Auth() AuthConfig {
	return c.auth
}

type document struct {
	Profile     string     `json:"profile"`
	APIEndpoint string     `json:"apiEndpoint"`
	AuthConfig  AuthConfig `json:"authConfig"`
}

// MarshalJSON uses the key names the web client reads.
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(document{
		Profile:     c.profile,
		APIEndpoint: c.endpoint.APIEndpoint,
		AuthConfig:  c.auth,
	})
}
