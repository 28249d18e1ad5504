// Package oauth implements the social login providers (Google, Naver,
// Kakao) behind one Provider interface driven by golang.org/x/oauth2.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
)

// UserInfo is the normalized identity returned by every provider.
type UserInfo struct {
	Provider   string
	ProviderID string
	Email      string
	Name       string
}

// Provider is one configured OAuth identity provider.
type Provider interface {
	// Name is the lowercase provider key used in routes and user rows.
	Name() string
	// AuthCodeURL builds the consent page redirect for the given CSRF state.
	AuthCodeURL(state string) string
	// Exchange trades an authorization code for a token.
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	// FetchUser loads the provider profile for a token.
	FetchUser(ctx context.Context, token *oauth2.Token) (*UserInfo, error)
}

// Registry holds the configured providers keyed by name.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry builds a registry from the given providers. Providers with an
// empty client id are treated as unconfigured and skipped.
func NewRegistry(providers ...Provider) *Registry {
	r := &Registry{providers: make(map[string]Provider)}
	for _, p := range providers {
		if p != nil {
			r.providers[p.Name()] = p
		}
	}
	return r
}

// Get returns the provider for the given name.
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, apperrors.ErrUnknownProvider
	}
	return p, nil
}

// fetchJSON performs an authenticated GET against a provider userinfo
// endpoint and decodes the JSON body into out.
func fetchJSON(ctx context.Context, config *oauth2.Config, token *oauth2.Token, url string, out interface{}) error {
	client := config.Client(ctx, token)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build userinfo request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("userinfo request returned %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode userinfo response: %w", err)
	}

	return nil
}
