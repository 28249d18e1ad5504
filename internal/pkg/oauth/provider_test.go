package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
)

func TestUnconfiguredProvidersReturnNil(t *testing.T) {
	assert.Nil(t, NewGoogleProvider("", "secret", "http://localhost/cb"))
	assert.Nil(t, NewNaverProvider("", "secret", "http://localhost/cb"))
	assert.Nil(t, NewKakaoProvider("", "secret", "http://localhost/cb"))
}

func TestRegistryGet(t *testing.T) {
	google := NewGoogleProvider("client-id", "secret", "http://localhost/cb")
	require.NotNil(t, google)

	registry := NewRegistry(google, nil)

	p, err := registry.Get("google")
	require.NoError(t, err)
	assert.Equal(t, "google", p.Name())

	_, err = registry.Get("github")
	assert.ErrorIs(t, err, apperrors.ErrUnknownProvider)
}

func TestAuthCodeURL(t *testing.T) {
	testCases := []struct {
		name     string
		provider Provider
		authHost string
	}{
		{"google", NewGoogleProvider("gid", "gs", "http://localhost/auth/google/callback"), "accounts.google.com"},
		{"naver", NewNaverProvider("nid", "ns", "http://localhost/auth/naver/callback"), "nid.naver.com"},
		{"kakao", NewKakaoProvider("kid", "ks", "http://localhost/auth/kakao/callback"), "kauth.kakao.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := tc.provider.AuthCodeURL("csrf-state")
			assert.Contains(t, u, tc.authHost)
			assert.Contains(t, u, "state=csrf-state")
			assert.Contains(t, u, "client_id=")
		})
	}
}

func TestFetchJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "abc-123", "email": "user@example.com"}`))
	}))
	defer srv.Close()

	config := &oauth2.Config{ClientID: "cid"}
	token := &oauth2.Token{AccessToken: "test-token", TokenType: "Bearer"}

	var payload struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	err := fetchJSON(context.Background(), config, token, srv.URL, &payload)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", payload.ID)
	assert.Equal(t, "user@example.com", payload.Email)
}

func TestFetchJSONNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	config := &oauth2.Config{ClientID: "cid"}
	token := &oauth2.Token{AccessToken: "bad", TokenType: "Bearer"}

	var payload struct{}
	err := fetchJSON(context.Background(), config, token, srv.URL, &payload)
	assert.ErrorContains(t, err, "401")
}
