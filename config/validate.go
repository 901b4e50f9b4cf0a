package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/thoas/go-funk"
)

func Validate(c *Config) error {
	if c == nil {
		return fmt.Errorf("%w: nil config", ErrInvalid)
	}
	if err := validateURL("apiEndpoint", c.endpoint.APIEndpoint); err != nil {
		return err
	}
	if funk.IsEmpty(c.auth.Domain) {
		return fmt.Errorf("%w: authConfig.domain is required", ErrInvalid)
	}
	if strings.ContainsAny(c.auth.Domain, ":/ ") {
		return fmt.Errorf("%w: authConfig.domain %q must be a bare hostname", ErrInvalid, c.auth.Domain)
	}
	if funk.IsEmpty(c.auth.ClientID) {
		return fmt.Errorf("%w: authConfig.clientId is required", ErrInvalid)
	}
	if err := validateURL("authConfig.callbackUrl", c.auth.CallbackURL); err != nil {
		return err
	}
	if c.auth.CallbackURL == c.endpoint.APIEndpoint {
		return fmt.Errorf("%w: authConfig.callbackUrl must differ from apiEndpoint", ErrInvalid)
	}
	return nil
}

func validateURL(key, raw string) error {
	if funk.IsEmpty(raw) {
		return fmt.Errorf("%w: %s is required", ErrInvalid, key)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalid, key, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: %s %q must use http or https", ErrInvalid, key, raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: %s %q has no host", ErrInvalid, key, raw)
	}
	return nil
}
