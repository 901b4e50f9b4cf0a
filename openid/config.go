package openid

import (
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/nanotower/c4-todo-serverless/config"
)

const DiscoveryPath = ".well-known/openid-configuration"

var DefaultScopes = []string{oidc.ScopeOpenID, "profile", "email"}

// IssuerURL is the Auth0 issuer for a tenant domain; Auth0 keeps the trailing slash.
func IssuerURL(domain string) string {
	return fmt.Sprintf("https://%s/", domain)
}

func DiscoveryURL(domain string) string {
	return IssuerURL(domain) + DiscoveryPath
}

// ProviderConfig describes the Auth0 tenant without fetching its discovery document.
func ProviderConfig(auth config.AuthConfig) oidc.ProviderConfig {
	var issuer = IssuerURL(auth.Domain)
	return oidc.ProviderConfig{
		IssuerURL:   issuer,
		AuthURL:     issuer + "authorize",
		TokenURL:    issuer + "oauth/token",
		UserInfoURL: issuer + "userinfo",
		JWKSURL:     issuer + ".well-known/jwks.json",
		Algorithms:  []string{oidc.RS256},
	}
}
