package auth

import (
	"encoding/json"
	"errors"
	"html"
	"net/http"
	"strings"

	apperrors "field-marketing-backend/internal/errors"
	"field-marketing-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	stateCookie   = "oauth_state"
	refreshCookie = "refresh_token"
)

// escapeJSString safely escapes a Go string for embedding inside JS string literals.
func escapeJSString(s string) string {
	e := html.EscapeString(s)
	e = strings.ReplaceAll(e, "\n", `\n`)
	e = strings.ReplaceAll(e, "\r", ``)
	return e
}

// framePage posts payload to the opener window and closes the popup
func framePage(payload string) string {
	return `<!doctype html><html><body><script>
(function(){
  var msg = ` + payload + `;
  try { if (window.opener) window.opener.postMessage(msg, "*"); } finally { window.close(); }
})();
</script></body></html>`
}

func frameError(name, message string) string {
	return framePage(`{ type: "authorization_response", error: { name: "` + escapeJSString(name) + `", message: "` + escapeJSString(message) + `" } }`)
}

func writeFrame(c *gin.Context, page string) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) requireProvider(c *gin.Context) (string, bool) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Provider is required"})
		return "", false
	}
	if !h.service.HasProvider(provider) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported provider", "providers": h.service.Providers()})
		return "", false
	}
	return provider, true
}

// Start handles GET /api/auth/{provider}/start
// @Summary Start OAuth sign-in
// @Description Initiate OAuth sign-in with the specified provider
// @Tags authentication
// @Produce json
// @Param provider path string true "OAuth provider (github or githubenterprise)"
// @Success 302 {string} string "Redirect to OAuth provider authorization URL"
// @Failure 400 {object} map[string]interface{} "Invalid provider"
// @Failure 500 {object} map[string]interface{} "Failed to generate authorization URL"
// @Router /api/auth/{provider}/start [get]
func (h *AuthHandler) Start(c *gin.Context) {
	provider, ok := h.requireProvider(c)
	if !ok {
		return
	}

	state, err := h.service.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state parameter"})
		return
	}

	authURL, err := h.service.GetAuthURL(provider, state)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate authorization URL", "details": err.Error()})
		return
	}

	c.SetCookie(stateCookie, state, 600, "/api/auth", "", false, true)
	c.Redirect(http.StatusFound, authURL)
}

// HandlerFrame handles GET /api/auth/{provider}/handler/frame
// Posts { type: 'authorization_response', response: {...} } to the opener and closes.
// @Summary Handle OAuth callback
// @Description Handle OAuth callback from provider and return the sign-in result in an HTML frame
// @Tags authentication
// @Produce text/html
// @Param provider path string true "OAuth provider (github or githubenterprise)"
// @Param code query string true "OAuth authorization code from provider"
// @Param state query string true "OAuth state parameter"
// @Param error query string false "OAuth error parameter from provider"
// @Param error_description query string false "OAuth error description from provider"
// @Success 200 {string} string "HTML page that posts the sign-in result to the opener window"
// @Failure 400 {object} map[string]interface{} "Invalid request parameters"
// @Router /api/auth/{provider}/handler/frame [get]
func (h *AuthHandler) HandlerFrame(c *gin.Context) {
	if errorParam := c.Query("error"); errorParam != "" {
		writeFrame(c, frameError("OAuthError", errorParam+": "+c.Query("error_description")))
		return
	}

	provider, ok := h.requireProvider(c)
	if !ok {
		return
	}
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code is required"})
		return
	}
	state := c.Query("state")
	if state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "State parameter is required"})
		return
	}
	if expected, err := c.Cookie(stateCookie); err == nil && expected != state {
		writeFrame(c, frameError("Error", "state mismatch"))
		return
	}

	resp, err := h.service.HandleCallback(c.Request.Context(), provider, code, state)
	if err != nil {
		logger.WithContext(c).Warnf("sign-in with %s failed: %v", provider, err)
		writeFrame(c, frameError("Error", err.Error()))
		return
	}

	c.SetCookie(stateCookie, "", -1, "/api/auth", "", false, true)
	c.SetCookie(refreshCookie, resp.RefreshToken, int(refreshTokenTTL.Seconds()), "/api/auth", "", false, true)

	raw, err := json.Marshal(resp)
	if err != nil {
		raw = []byte("{}")
	}
	writeFrame(c, framePage(`{ type: "authorization_response", response: `+string(raw)+` }`))
}

// Refresh handles POST /api/auth/{provider}/refresh
// @Summary Refresh authentication token
// @Description Rotate a refresh token from the body or the session cookie and issue a new access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param provider path string true "OAuth provider (github or githubenterprise)"
// @Param request body RefreshTokenRequest false "Refresh token"
// @Success 200 {object} AuthHandlerResponse "Successfully refreshed token"
// @Failure 400 {object} map[string]interface{} "Invalid provider"
// @Failure 401 {object} map[string]interface{} "Refresh token missing, invalid or expired"
// @Failure 500 {object} map[string]interface{} "Token refresh failed"
// @Router /api/auth/{provider}/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	if _, ok := h.requireProvider(c); !ok {
		return
	}

	var req RefreshTokenRequest
	_ = c.ShouldBindJSON(&req)
	refreshToken := strings.TrimSpace(req.RefreshToken)
	if refreshToken == "" {
		refreshToken, _ = c.Cookie(refreshCookie)
	}
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error":   "Authentication required",
			"details": "No valid session found. Please authenticate first.",
		})
		return
	}

	refreshed, err := h.service.RefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRefreshToken) || errors.Is(err, apperrors.ErrRefreshTokenExpired) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token refresh failed", "details": err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token refresh failed", "details": err.Error()})
		}
		return
	}

	c.SetCookie(refreshCookie, refreshed.RefreshToken, int(refreshTokenTTL.Seconds()), "/api/auth", "", false, true)
	c.JSON(http.StatusOK, refreshed)
}

// Logout handles POST /api/auth/{provider}/logout
// @Summary Sign out
// @Description Revoke the refresh token and clear the session cookie
// @Tags authentication
// @Accept json
// @Produce json
// @Param provider path string true "OAuth provider (github or githubenterprise)"
// @Success 200 {object} AuthLogoutResponse "Successfully logged out"
// @Failure 400 {object} map[string]interface{} "Invalid provider"
// @Router /api/auth/{provider}/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if _, ok := h.requireProvider(c); !ok {
		return
	}

	var req RefreshTokenRequest
	_ = c.ShouldBindJSON(&req)
	if req.RefreshToken == "" {
		req.RefreshToken, _ = c.Cookie(refreshCookie)
	}
	h.service.Logout(req.RefreshToken)

	c.SetCookie(refreshCookie, "", -1, "/api/auth", "", false, true)
	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Logged out successfully"})
}

// ValidateToken returns the claims of a bearer token
// @Summary Validate JWT token
// @Description Validate JWT token and return token claims with the owner key
// @Tags authentication
// @Produce json
// @Param Authorization header string true "Bearer token to validate"
// @Success 200 {object} AuthValidateResponse "Token is valid with claims"
// @Failure 401 {object} map[string]interface{} "Authorization header required or token invalid"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	tokenString, ok := bearerToken(authHeader)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, OwnerID: claims.OwnerID(), Claims: claims})
}

// ListProviders handles GET /api/auth/providers
// @Summary List sign-in providers
// @Tags authentication
// @Produce json
// @Success 200 {object} map[string]interface{} "Enabled providers"
// @Router /api/auth/providers [get]
func (h *AuthHandler) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": h.service.Providers()})
}
