package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubClient wraps the GitHub API client with authentication support
type GitHubClient struct {
	config *ProviderConfig
}

// UserProfile represents the signed-in user's GitHub profile
type UserProfile struct {
	ID        int64  `json:"id" example:"1001"`
	Username  string `json:"username" example:"sjohnson"`
	Email     string `json:"email" example:"sarah@company.com"`
	Name      string `json:"name" example:"Sarah Johnson"`
	AvatarURL string `json:"avatarUrl"`
}

// DisplayName is the name shown in the workspace header
func (p *UserProfile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Username
}

// NewGitHubClient creates a new GitHub API client
func NewGitHubClient(config *ProviderConfig) *GitHubClient {
	return &GitHubClient{config: config}
}

func (c *GitHubClient) apiClient(httpClient *http.Client) (*github.Client, error) {
	if c.config.EnterpriseBaseURL == "" {
		return github.NewClient(httpClient), nil
	}
	// GitHub Enterprise Server
	base := strings.TrimSuffix(c.config.EnterpriseBaseURL, "/")
	return github.NewClient(httpClient).WithEnterpriseURLs(base, base)
}

// GetUserProfile fetches user profile information from GitHub API
func (c *GitHubClient) GetUserProfile(ctx context.Context, accessToken string) (*UserProfile, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
	client, err := c.apiClient(oauth2.NewClient(ctx, ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("invalid access token")
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	// Emails are optional, the profile email is the fallback
	emails, _, err := client.Users.ListEmails(ctx, nil)
	if err != nil {
		emails = []*github.UserEmail{}
	}

	return &UserProfile{
		ID:        user.GetID(),
		Username:  user.GetLogin(),
		Email:     pickEmail(emails, user.GetEmail()),
		Name:      user.GetName(),
		AvatarURL: user.GetAvatarURL(),
	}, nil
}

// pickEmail prefers the primary address, then any verified one
func pickEmail(emails []*github.UserEmail, fallback string) string {
	for _, email := range emails {
		if email.GetPrimary() {
			return email.GetEmail()
		}
	}
	for _, email := range emails {
		if email.GetVerified() {
			return email.GetEmail()
		}
	}
	return fallback
}

// GetOAuth2Config returns the OAuth2 configuration for this GitHub client
func (c *GitHubClient) GetOAuth2Config(redirectURL string) *oauth2.Config {
	endpoint := oauth2.Endpoint{
		AuthURL:  "https://github.com/login/oauth/authorize",
		TokenURL: "https://github.com/login/oauth/access_token",
	}
	if c.config.EnterpriseBaseURL != "" {
		base := strings.TrimSuffix(c.config.EnterpriseBaseURL, "/")
		endpoint = oauth2.Endpoint{
			AuthURL:  base + "/login/oauth/authorize",
			TokenURL: base + "/login/oauth/access_token",
		}
	}

	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"read:user", "user:email"},
		Endpoint:     endpoint,
	}
}

// GetEnterpriseBaseURL returns the enterprise base URL if configured
func (c *GitHubClient) GetEnterpriseBaseURL() string {
	if c.config == nil {
		return ""
	}
	return c.config.EnterpriseBaseURL
}
