package oauth

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/oauth2"
)

const kakaoUserInfoURL = "https://kapi.kakao.com/v2/user/me"

var kakaoEndpoint = oauth2.Endpoint{
	AuthURL:  "https://kauth.kakao.com/oauth/authorize",
	TokenURL: "https://kauth.kakao.com/oauth/token",
}

// KakaoProvider implements Provider for Kakao sign-in.
type KakaoProvider struct {
	config *oauth2.Config
}

// NewKakaoProvider builds the Kakao provider. Returns nil when the client id
// is unset so the registry skips it.
func NewKakaoProvider(clientID, clientSecret, redirectURL string) *KakaoProvider {
	if clientID == "" {
		return nil
	}
	return &KakaoProvider{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     kakaoEndpoint,
		},
	}
}

func (p *KakaoProvider) Name() string {
	return "kakao"
}

func (p *KakaoProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state)
}

func (p *KakaoProvider) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	return p.config.Exchange(ctx, code)
}

func (p *KakaoProvider) FetchUser(ctx context.Context, token *oauth2.Token) (*UserInfo, error) {
	// Kakao identifies users with a numeric id and nests the profile under
	// kakao_account. Email may be absent when the user withholds consent.
	var payload struct {
		ID      int64 `json:"id"`
		Account struct {
			Email   string `json:"email"`
			Profile struct {
				Nickname string `json:"nickname"`
			} `json:"profile"`
		} `json:"kakao_account"`
	}
	if err := fetchJSON(ctx, p.config, token, kakaoUserInfoURL, &payload); err != nil {
		return nil, err
	}
	if payload.ID == 0 {
		return nil, fmt.Errorf("kakao userinfo response missing id")
	}

	return &UserInfo{
		Provider:   p.Name(),
		ProviderID: strconv.FormatInt(payload.ID, 10),
		Email:      payload.Account.Email,
		Name:       payload.Account.Profile.Nickname,
	}, nil
}
