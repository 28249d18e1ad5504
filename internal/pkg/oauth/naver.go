package oauth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
)

const naverUserInfoURL = "https://openapi.naver.com/v1/nid/me"

var naverEndpoint = oauth2.Endpoint{
	AuthURL:  "https://nid.naver.com/oauth2.0/authorize",
	TokenURL: "https://nid.naver.com/oauth2.0/token",
}

// NaverProvider implements Provider for Naver sign-in.
type NaverProvider struct {
	config *oauth2.Config
}

// NewNaverProvider builds the Naver provider. Returns nil when the client id
// is unset so the registry skips it.
func NewNaverProvider(clientID, clientSecret, redirectURL string) *NaverProvider {
	if clientID == "" {
		return nil
	}
	return &NaverProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     naverEndpoint,
		},
	}
}

func (p *NaverProvider) Name() string {
	return "naver"
}

func (p *NaverProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

func (p *NaverProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return p.config.Exchange(ctx, code)
}

func (p *NaverProvider) FetchUser(ctx context.Context, token *oauth2.Token) (*UserInfo, error) {
	// Naver wraps the profile in a response envelope.
	var payload struct {
		ResultCode string `json:"resultcode"`
		Response   struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"response"`
	}
	if err := fetchJSON(ctx, p.config, token, naverUserInfoURL, &payload); err != nil {
		return nil, err
	}
	if payload.Response.ID == "" {
		return nil, fmt.Errorf("naver userinfo response missing id (resultcode %s)", payload.ResultCode)
	}

	return &UserInfo{
		Provider:   p.Name(),
		ProviderID: payload.Response.ID,
		Email:      payload.Response.Email,
		Name:       payload.Response.Name,
	}, nil
}
