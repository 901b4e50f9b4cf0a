package openid

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/nanotower/c4-todo-serverless/config"
	log "github.com/sirupsen/logrus"
	"github.com/thoas/go-funk"
	"golang.org/x/net/context"
	"golang.org/x/oauth2"
)

// Client carries the pieces an OIDC login needs, derived from an AuthConfig.
type Client struct {
	auth         config.AuthConfig
	provider     *oidc.Provider
	oauthConf    oauth2.Config
	callbackPath string
}

// AuthRequest is a prepared authorize redirect. State and CodeVerifier must be
// kept by the caller until the callback arrives.
type AuthRequest struct {
	URL          string
	State        string
	CodeVerifier string
}

func New(ctx context.Context, auth config.AuthConfig, scopes ...string) (*Client, error) {
	if funk.IsEmpty(auth.Domain) || funk.IsEmpty(auth.ClientID) {
		return nil, errors.New("[OIDC] - domain and client id are required")
	}
	callback, err := url.Parse(auth.CallbackURL)
	if err != nil || callback.Host == "" {
		return nil, fmt.Errorf("[OIDC] - invalid callback url %q", auth.CallbackURL)
	}
	if len(scopes) == 0 {
		scopes = DefaultScopes
	}

	var providerConf = ProviderConfig(auth)
	var provider = providerConf.NewProvider(ctx)
	log.Debugf("[OIDC] - Using issuer %s", providerConf.IssuerURL)

	return &Client{
		auth:     auth,
		provider: provider,
		oauthConf: oauth2.Config{
			ClientID:    auth.ClientID,
			Endpoint:    provider.Endpoint(),
			RedirectURL: auth.CallbackURL,
			Scopes:      scopes,
		},
		callbackPath: callback.EscapedPath(),
	}, nil
}

func (s *Client) AuthCodeURL() AuthRequest {
	var state = generateID()
	var codeVerifier = oauth2.GenerateVerifier()
	return AuthRequest{
		URL:          s.oauthConf.AuthCodeURL(state, oauth2.S256ChallengeOption(codeVerifier)),
		State:        state,
		CodeVerifier: codeVerifier,
	}
}

func (s *Client) Verifier() *oidc.IDTokenVerifier {
	return s.provider.Verifier(&oidc.Config{ClientID: s.auth.ClientID})
}

func (s *Client) OAuth2() oauth2.Config {
	var conf = s.oauthConf
	conf.Scopes = append([]string(nil), s.oauthConf.Scopes...)
	return conf
}

func (s *Client) Provider() *oidc.Provider {
	return s.provider
}

func (s *Client) CallbackPath() string {
	return s.callbackPath
}
