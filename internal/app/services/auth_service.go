package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/rs/zerolog"

	"github.com/eohue/ibookee-web-sub001/internal/app/models"
	"github.com/eohue/ibookee-web-sub001/internal/app/models/dto"
	"github.com/eohue/ibookee-web-sub001/internal/app/repositories"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/apperrors"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/auth"
	"github.com/eohue/ibookee-web-sub001/internal/pkg/oauth"
)

// AuthService handles registration, login and the OAuth flows
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)

	// OAuthRedirectURL builds the consent page URL for a provider.
	OAuthRedirectURL(provider, state string) (string, error)
	// HandleOAuthCallback exchanges the authorization code, upserting the
	// social user and issuing a token pair.
	HandleOAuthCallback(ctx context.Context, provider, code string) (*dto.TokenResponse, error)
}

type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
	providers  *oauth.Registry
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	providers *oauth.Registry,
	logger zerolog.Logger,
) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		providers:  providers,
		logger:     logger,
	}
}

// validatePassword checks the password policy: at least 8 characters with
// one letter and one digit. Gin's binding already enforces the length, this
// guards non-HTTP callers too.
func (s *authServiceImpl) validatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("%w: password must be at least 8 characters long", apperrors.ErrInvalidPassword)
	}

	hasLetter, hasDigit := false, false
	for _, char := range password {
		switch {
		case unicode.IsLetter(char):
			hasLetter = true
		case unicode.IsDigit(char):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return fmt.Errorf("%w: password must contain at least one letter and one digit", apperrors.ErrInvalidPassword)
	}

	return nil
}

func (s *authServiceImpl) issueTokens(ctx context.Context, user *models.User) (*dto.TokenResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	if err := s.tokenRepo.StoreRefreshToken(ctx, user.ID, refreshToken, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login timestamp")
	}

	return &dto.TokenResponse{
		AccessToken:      accessToken,
		RefreshToken:     refreshToken,
		ExpiresIn:        expiresIn,
		RefreshExpiresIn: refreshExpiresIn,
		TokenType:        "Bearer",
	}, nil
}

// Register creates a password account and logs it in
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email existence: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:      email,
		Password:   passwordHash,
		Name:       strings.TrimSpace(req.Name),
		RoleType:   models.RoleUser,
		IsVerified: false,
		IsActive:   true,
	}

	userID, err := s.userRepo.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	user.ID = userID

	s.logger.Info().Int64("userID", userID).Str("email", email).Msg("User registered")
	return s.issueTokens(ctx, user)
}

// Login authenticates a password account
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}

	// Social accounts have no password to check.
	if user.Password == "" || !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token into a new token pair. The old token
// is revoked whether or not issuance succeeds.
func (s *authServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	stored, err := s.tokenRepo.GetRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("error getting refresh token: %w", err)
	}

	if stored.Revoked {
		return nil, apperrors.ErrTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.userRepo.GetUserByID(ctx, stored.UserID)
	if err != nil {
		return nil, fmt.Errorf("error getting user for refresh: %w", err)
	}
	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if err := s.tokenRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("error revoking refresh token: %w", err)
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes the refresh token; the access token expires on its own
func (s *authServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if err := s.tokenRepo.RevokeRefreshToken(ctx, refreshToken); err != nil {
		if errors.Is(err, repositories.ErrTokenNotFound) {
			return apperrors.ErrTokenNotFound
		}
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	return nil
}

// GetUserByID loads the authenticated user's profile
func (s *authServiceImpl) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error getting user: %w", err)
	}
	return user, nil
}

// OAuthRedirectURL builds the provider consent URL
func (s *authServiceImpl) OAuthRedirectURL(provider, state string) (string, error) {
	p, err := s.providers.Get(provider)
	if err != nil {
		return "", err
	}
	return p.AuthCodeURL(state), nil
}

// HandleOAuthCallback completes a social login. First-time users are created
// with the provider identity; returning users are matched on (provider, id).
func (s *authServiceImpl) HandleOAuthCallback(ctx context.Context, provider, code string) (*dto.TokenResponse, error) {
	p, err := s.providers.Get(provider)
	if err != nil {
		return nil, err
	}

	token, err := p.Exchange(ctx, code)
	if err != nil {
		s.logger.Warn().Err(err).Str("provider", provider).Msg("OAuth code exchange failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderDenied, err)
	}

	info, err := p.FetchUser(ctx, token)
	if err != nil {
		s.logger.Warn().Err(err).Str("provider", provider).Msg("OAuth userinfo fetch failed")
		return nil, fmt.Errorf("%w: %v", apperrors.ErrProviderDenied, err)
	}

	user, err := s.userRepo.GetUserByProvider(ctx, info.Provider, info.ProviderID)
	if err != nil && !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, fmt.Errorf("error looking up social user: %w", err)
	}

	if user == nil {
		name := info.Name
		if name == "" {
			name = info.Provider + " user"
		}
		user = &models.User{
			Email:      strings.ToLower(info.Email),
			Name:       name,
			RoleType:   models.RoleUser,
			Provider:   &info.Provider,
			ProviderID: &info.ProviderID,
			IsVerified: true,
			IsActive:   true,
		}
		userID, err := s.userRepo.CreateUser(ctx, user)
		if err != nil {
			return nil, fmt.Errorf("error creating social user: %w", err)
		}
		user.ID = userID
		s.logger.Info().Int64("userID", userID).Str("provider", provider).Msg("Social user registered")
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	return s.issueTokens(ctx, user)
}
