package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strconv"
	"sync"
	"time"

	apperrors "field-marketing-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 30 * 24 * time.Hour
	tokenIssuer     = "field-marketing-backend"
)

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	Profile   UserProfile `json:"profile"`
	Provider  string      `json:"provider"`
	ExpiresAt time.Time   `json:"expires_at"`
	CreatedAt time.Time   `json:"created_at"`
}

// AuthService provides authentication functionality
type AuthService struct {
	config        *AuthConfig
	githubClients map[string]*GitHubClient
	refreshTokens map[string]*RefreshTokenData // In-memory store for refresh tokens
	tokenMutex    sync.RWMutex
	now           func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               int64  `json:"user_id" example:"1001"`
	Username             string `json:"username" example:"sjohnson"`
	Email                string `json:"email" example:"sarah@company.com"`
	Name                 string `json:"name,omitempty" example:"Sarah Johnson"`
	Provider             string `json:"provider" example:"github"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// OwnerID is the key every owned record is scoped by
func (c *AuthClaims) OwnerID() string {
	return OwnerID(c.Provider, c.UserID)
}

// OwnerID builds the "<provider>:<id>" owner key
func OwnerID(provider string, userID int64) string {
	return provider + ":" + strconv.FormatInt(userID, 10)
}

// AuthHandlerResponse represents the tokens issued after sign-in or refresh
type AuthHandlerResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType" example:"bearer"`
	ExpiresIn    int64       `json:"expiresInSeconds" example:"3600"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	OwnerID      string      `json:"ownerId" example:"github:1001"`
	Profile      UserProfile `json:"profile"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid   bool        `json:"valid" example:"true"`
	OwnerID string      `json:"ownerId,omitempty" example:"github:1001"`
	Claims  *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	githubClients := make(map[string]*GitHubClient)
	for providerName, providerConfig := range config.Providers {
		if !providerConfig.Enabled() {
			continue
		}
		pc := providerConfig
		githubClients[providerName] = NewGitHubClient(&pc)
	}

	return &AuthService{
		config:        config,
		githubClients: githubClients,
		refreshTokens: make(map[string]*RefreshTokenData),
		now:           time.Now,
	}, nil
}

// HasProvider reports whether provider can be used to sign in
func (s *AuthService) HasProvider(provider string) bool {
	_, ok := s.githubClients[provider]
	return ok
}

// Providers lists the enabled sign-in providers
func (s *AuthService) Providers() []string {
	return s.config.ProviderNames()
}

func (s *AuthService) callbackURL(provider string) string {
	return fmt.Sprintf("%s/api/auth/%s/handler/frame", s.config.RedirectURL, provider)
}

// GetAuthURL generates OAuth2 authorization URL
func (s *AuthService) GetAuthURL(provider, state string) (string, error) {
	githubClient, exists := s.githubClients[provider]
	if !exists {
		return "", fmt.Errorf("provider '%s' not found", provider)
	}

	oauth2Config := githubClient.GetOAuth2Config(s.callbackURL(provider))
	return oauth2Config.AuthCodeURL(state), nil
}

// HandleCallback exchanges the authorization code, loads the profile and issues tokens
func (s *AuthService) HandleCallback(ctx context.Context, provider, code, state string) (*AuthHandlerResponse, error) {
	githubClient, exists := s.githubClients[provider]
	if !exists {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}

	oauth2Config := githubClient.GetOAuth2Config(s.callbackURL(provider))

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := githubClient.GetUserProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	return s.IssueTokens(profile, provider)
}

// IssueTokens signs an access token and stores a fresh refresh token for profile
func (s *AuthService) IssueTokens(profile *UserProfile, provider string) (*AuthHandlerResponse, error) {
	jwtToken, err := s.GenerateJWT(profile, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := s.generateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := s.now()
	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		Profile:   *profile,
		Provider:  provider,
		ExpiresAt: now.Add(refreshTokenTTL),
		CreatedAt: now,
	}
	s.tokenMutex.Unlock()

	return &AuthHandlerResponse{
		AccessToken:  jwtToken,
		TokenType:    "bearer",
		ExpiresIn:    int64(accessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		OwnerID:      OwnerID(provider, profile.ID),
		Profile:      *profile,
	}, nil
}

// RefreshToken rotates a refresh token and issues a new access token
func (s *AuthService) RefreshToken(refreshToken string) (*AuthHandlerResponse, error) {
	s.tokenMutex.Lock()
	tokenData, exists := s.refreshTokens[refreshToken]
	if exists {
		delete(s.refreshTokens, refreshToken)
	}
	s.tokenMutex.Unlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}
	if s.now().After(tokenData.ExpiresAt) {
		return nil, apperrors.ErrRefreshTokenExpired
	}

	profile := tokenData.Profile
	return s.IssueTokens(&profile, tokenData.Provider)
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(userProfile *UserProfile, provider string) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:   userProfile.ID,
		Username: userProfile.Username,
		Email:    userProfile.Email,
		Name:     userProfile.Name,
		Provider: provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   OwnerID(provider, userProfile.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Provider == "" || claims.UserID == 0 {
		return nil, fmt.Errorf("token has no owner")
	}
	return claims, nil
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return generateRandomString(32)
}

func (s *AuthService) generateRefreshToken() (string, error) {
	return generateRandomString(64)
}

// generateRandomString generates a random base64 encoded string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// Logout revokes refreshToken. Access tokens are stateless and expire on their own.
func (s *AuthService) Logout(refreshToken string) {
	if refreshToken == "" {
		return
	}
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}
