package config

import (
	"fmt"
	"sort"

	"github.com/thoas/go-funk"
)

const (
	ProfileDev     = "dev"
	ProfileLocal   = "local"
	DefaultProfile = ProfileDev
)

const (
	gatewayAPIID  = "fo6qub5e53"
	gatewayRegion = "us-east-2"
	gatewayStage  = "dev"

	auth0Domain        = "dev-9ts9zgd3.eu.auth0.com"
	auth0ClientID      = "yBDauQdTNmsNrR1RwnH60jUof6CWeZUj"
	defaultCallbackURL = "http://localhost:3000/callback"

	localAPIEndpoint = "http://localhost:3003/dev"
)

// GatewayURL returns the base URL of an API Gateway stage.
func GatewayURL(apiID, region, stage string) string {
	return fmt.Sprintf("https://%s.execute-api.%s.amazonaws.com/%s", apiID, region, stage)
}

var profiles = map[string]func() *Config{
	ProfileDev: func() *Config {
		return newConfig(ProfileDev, GatewayURL(gatewayAPIID, gatewayRegion, gatewayStage))
	},
	ProfileLocal: func() *Config {
		return newConfig(ProfileLocal, localAPIEndpoint)
	},
}

func newConfig(profile, apiEndpoint string) *Config {
	return &Config{
		profile:  profile,
		endpoint: EndpointConfig{APIEndpoint: apiEndpoint},
		auth: AuthConfig{
			Domain:      auth0Domain,
			ClientID:    auth0ClientID,
			CallbackURL: defaultCallbackURL,
		},
	}
}

// Profiles lists the built-in profile names in sorted order.
func Profiles() []string {
	var names = funk.Keys(profiles).([]string)
	sort.Strings(names)
	return names
}
