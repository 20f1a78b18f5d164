package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "field-marketing-backend/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:   "test-signing-key",
		RedirectURL: "http://localhost:7008",
		Providers: map[string]ProviderConfig{
			"github": {
				ClientID:     "test-client-id",
				ClientSecret: "test-client-secret",
			},
			"githubenterprise": {
				ClientID:          "ghe-client-id",
				ClientSecret:      "ghe-client-secret",
				EnterpriseBaseURL: "https://github.example.com/",
			},
		},
	}
}

func testProfile() *UserProfile {
	return &UserProfile{
		ID:       1001,
		Username: "sjohnson",
		Email:    "sarah@company.com",
		Name:     "Sarah Johnson",
	}
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config structure", func(t *testing.T) {
		config := testConfig()
		assert.NoError(t, config.ValidateConfig())
		assert.Equal(t, []string{"github", "githubenterprise"}, config.ProviderNames())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		config := testConfig()
		config.JWTSecret = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("missing redirect url", func(t *testing.T) {
		config := testConfig()
		config.RedirectURL = ""

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "redirect URL is required")
	})

	t.Run("half configured provider", func(t *testing.T) {
		config := testConfig()
		config.Providers["github"] = ProviderConfig{ClientID: "only-id"}

		err := config.ValidateConfig()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "provider 'github'")
	})

	t.Run("no providers still validates tokens", func(t *testing.T) {
		config := &AuthConfig{JWTSecret: "secret", RedirectURL: "http://localhost:7008"}
		assert.NoError(t, config.ValidateConfig())
		assert.Empty(t, config.ProviderNames())
	})
}

func TestGetProvider(t *testing.T) {
	config := testConfig()
	config.Providers["disabled"] = ProviderConfig{}

	provider, err := config.GetProvider("githubenterprise")
	require.NoError(t, err)
	assert.Equal(t, "ghe-client-id", provider.ClientID)

	_, err = config.GetProvider("nonexistent")
	assert.ErrorContains(t, err, "provider 'nonexistent' not found")

	_, err = config.GetProvider("disabled")
	assert.Error(t, err)
}

func TestGitHubClientConfig(t *testing.T) {
	t.Run("github.com", func(t *testing.T) {
		client := NewGitHubClient(&ProviderConfig{ClientID: "id", ClientSecret: "secret"})
		oauthConfig := client.GetOAuth2Config("http://localhost:7008/callback")

		assert.Equal(t, "id", oauthConfig.ClientID)
		assert.Equal(t, "http://localhost:7008/callback", oauthConfig.RedirectURL)
		assert.Equal(t, "https://github.com/login/oauth/authorize", oauthConfig.Endpoint.AuthURL)
		assert.ElementsMatch(t, []string{"read:user", "user:email"}, oauthConfig.Scopes)
	})

	t.Run("enterprise", func(t *testing.T) {
		client := NewGitHubClient(&ProviderConfig{ClientID: "id", ClientSecret: "secret", EnterpriseBaseURL: "https://github.example.com/"})
		oauthConfig := client.GetOAuth2Config("http://localhost:7008/callback")

		assert.Equal(t, "https://github.example.com/login/oauth/authorize", oauthConfig.Endpoint.AuthURL)
		assert.Equal(t, "https://github.example.com/login/oauth/access_token", oauthConfig.Endpoint.TokenURL)
	})
}

func TestJWTOperations(t *testing.T) {
	service, err := NewAuthService(testConfig())
	require.NoError(t, err)

	token, err := service.GenerateJWT(testProfile(), "github")
	require.NoError(t, err)

	claims, err := service.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1001), claims.UserID)
	assert.Equal(t, "sjohnson", claims.Username)
	assert.Equal(t, "Sarah Johnson", claims.Name)
	assert.Equal(t, "github:1001", claims.OwnerID())
	assert.Equal(t, "github:1001", claims.Subject)

	_, err = service.ValidateJWT("invalid-token")
	assert.Error(t, err)

	other, err := NewAuthService(&AuthConfig{JWTSecret: "other", RedirectURL: "http://x"})
	require.NoError(t, err)
	_, err = other.ValidateJWT(token)
	assert.Error(t, err, "token signed with another secret must not validate")
}

func TestJWTExpiration(t *testing.T) {
	service, err := NewAuthService(testConfig())
	require.NoError(t, err)

	issued := time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return issued }
	token, err := service.GenerateJWT(testProfile(), "github")
	require.NoError(t, err)

	service.now = func() time.Time { return issued.Add(59 * time.Minute) }
	_, err = service.ValidateJWT(token)
	assert.NoError(t, err)

	service.now = func() time.Time { return issued.Add(61 * time.Minute) }
	_, err = service.ValidateJWT(token)
	assert.Error(t, err)
}

func TestRefreshToken(t *testing.T) {
	service, err := NewAuthService(testConfig())
	require.NoError(t, err)

	issued, err := service.IssueTokens(testProfile(), "github")
	require.NoError(t, err)
	assert.Equal(t, "github:1001", issued.OwnerID)
	assert.Equal(t, int64(3600), issued.ExpiresIn)

	t.Run("rotation", func(t *testing.T) {
		refreshed, err := service.RefreshToken(issued.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, issued.RefreshToken, refreshed.RefreshToken)
		assert.Equal(t, "Sarah Johnson", refreshed.Profile.Name)

		// the old token is single use
		_, err = service.RefreshToken(issued.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("expired", func(t *testing.T) {
		fresh, err := service.IssueTokens(testProfile(), "github")
		require.NoError(t, err)

		service.now = func() time.Time { return time.Now().Add(31 * 24 * time.Hour) }
		defer func() { service.now = time.Now }()

		_, err = service.RefreshToken(fresh.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)
	})

	t.Run("logout revokes", func(t *testing.T) {
		fresh, err := service.IssueTokens(testProfile(), "github")
		require.NoError(t, err)

		service.Logout(fresh.RefreshToken)
		_, err = service.RefreshToken(fresh.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})
}

func TestAuthHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, err := NewAuthService(testConfig())
	require.NoError(t, err)
	handler := NewAuthHandler(service)

	t.Run("start redirects to the provider", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/githubenterprise/start", nil)
		c.Params = gin.Params{{Key: "provider", Value: "githubenterprise"}}

		handler.Start(c)

		assert.Equal(t, http.StatusFound, w.Code)
		location := w.Header().Get("Location")
		assert.Contains(t, location, "https://github.example.com/login/oauth/authorize")
		assert.Contains(t, location, "state=")
		assert.Contains(t, w.Header().Get("Set-Cookie"), stateCookie)
	})

	t.Run("unsupported provider", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/gitlab/start", nil)
		c.Params = gin.Params{{Key: "provider", Value: "gitlab"}}

		handler.Start(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("frame reports provider errors", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/github/handler/frame?error=access_denied&error_description=denied", nil)
		c.Params = gin.Params{{Key: "provider", Value: "github"}}

		handler.HandlerFrame(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "access_denied: denied")
	})

	t.Run("frame requires a code", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/github/handler/frame?state=abc", nil)
		c.Params = gin.Params{{Key: "provider", Value: "github"}}

		handler.HandlerFrame(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("refresh from body", func(t *testing.T) {
		issued, err := service.IssueTokens(testProfile(), "github")
		require.NoError(t, err)
		body, _ := json.Marshal(RefreshTokenRequest{RefreshToken: issued.RefreshToken})

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/github/refresh", bytes.NewReader(body))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{{Key: "provider", Value: "github"}}

		handler.Refresh(c)

		require.Equal(t, http.StatusOK, w.Code)
		var response AuthHandlerResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotEmpty(t, response.AccessToken)
		assert.Equal(t, "github:1001", response.OwnerID)
	})

	t.Run("refresh without session", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/github/refresh", nil)
		c.Params = gin.Params{{Key: "provider", Value: "github"}}

		handler.Refresh(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/github/logout", nil)
		c.Params = gin.Params{{Key: "provider", Value: "github"}}

		handler.Logout(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "Logged out successfully", response["message"])
	})
}

func TestRequireAuthSetsOwner(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service, err := NewAuthService(testConfig())
	require.NoError(t, err)
	token, err := service.GenerateJWT(testProfile(), "github")
	require.NoError(t, err)

	router := gin.New()
	router.GET("/me", NewAuthMiddleware(service).RequireAuth(), func(c *gin.Context) {
		owner, ok := GetOwnerID(c)
		require.True(t, ok)
		assert.Equal(t, "github:1001", c.Request.Context().Value(ContextOwnerID))
		c.String(http.StatusOK, owner)
	})

	testCases := []struct {
		name   string
		header string
		code   int
		body   string
	}{
		{name: "valid", header: "Bearer " + token, code: http.StatusOK, body: "github:1001"},
		{name: "missing", code: http.StatusUnauthorized},
		{name: "not bearer", header: token, code: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer nope", code: http.StatusUnauthorized},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.code, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
			}
		})
	}
}

func TestLoadAuthConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "auth.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
jwt_secret: file-secret
redirect_url: http://localhost:7008
providers:
  github:
    client_id: ${TEST_GH_CLIENT_ID}
    client_secret: ${TEST_GH_CLIENT_SECRET}
`), 0o600))

	t.Setenv("TEST_GH_CLIENT_ID", "from-env-id")
	t.Setenv("TEST_GH_CLIENT_SECRET", "from-env-secret")
	t.Setenv("GITHUB_CLIENT_ID", "")
	t.Setenv("GITHUB_CLIENT_SECRET", "")
	t.Setenv("JWT_SECRET", "")

	config, err := LoadAuthConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "file-secret", config.JWTSecret)
	assert.Equal(t, "from-env-id", config.Providers["github"].ClientID)
	assert.Equal(t, []string{"github"}, config.ProviderNames())
}

func TestEnvironmentVariableOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("GITHUB_CLIENT_ID", "env-id")
	t.Setenv("GITHUB_CLIENT_SECRET", "env-secret-value")

	config, err := LoadAuthConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "env-secret", config.JWTSecret)
	assert.Equal(t, "http://localhost:7008", config.RedirectURL)
	assert.Equal(t, "env-id", config.Providers["github"].ClientID)
}
