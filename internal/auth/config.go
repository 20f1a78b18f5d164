package auth

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret   string                    `yaml:"jwt_secret" json:"jwt_secret" mapstructure:"jwt_secret"`
	RedirectURL string                    `yaml:"redirect_url" json:"redirect_url" mapstructure:"redirect_url"`
	Providers   map[string]ProviderConfig `yaml:"providers" json:"providers" mapstructure:"providers"`
}

// ProviderConfig holds configuration for a specific sign-in provider
type ProviderConfig struct {
	ClientID          string `yaml:"client_id" json:"client_id" mapstructure:"client_id"`
	ClientSecret      string `yaml:"client_secret" json:"client_secret" mapstructure:"client_secret"`
	EnterpriseBaseURL string `yaml:"enterprise_base_url,omitempty" json:"enterprise_base_url,omitempty" mapstructure:"enterprise_base_url"`
}

// Enabled reports whether the provider has client credentials
func (p ProviderConfig) Enabled() bool {
	return p.ClientID != "" && p.ClientSecret != ""
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	// Create a new viper instance for auth config
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	// A missing file is fine: secrets usually come from the environment
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if redirectURL := os.Getenv("AUTH_REDIRECT_URL"); redirectURL != "" {
		config.RedirectURL = redirectURL
	}

	config = overrideFromEnvironment(config)

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// GetProvider returns the configuration for a specific provider
func (c *AuthConfig) GetProvider(provider string) (*ProviderConfig, error) {
	providerConfig, exists := c.Providers[provider]
	if !exists || !providerConfig.Enabled() {
		return nil, fmt.Errorf("provider '%s' not found", provider)
	}

	return &providerConfig, nil
}

// ProviderNames lists the providers that can be used to sign in
func (c *AuthConfig) ProviderNames() []string {
	names := make([]string, 0, len(c.Providers))
	for name, p := range c.Providers {
		if p.Enabled() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// ValidateConfig validates the authentication configuration. Providers
// without credentials are allowed and stay disabled; token validation only
// needs the secret.
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.RedirectURL == "" {
		return fmt.Errorf("redirect URL is required")
	}

	for providerName, provider := range c.Providers {
		if (provider.ClientID == "") != (provider.ClientSecret == "") {
			return fmt.Errorf("client_id and client_secret must both be set for provider '%s'", providerName)
		}
	}

	return nil
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("redirect_url", "http://localhost:7008")
	v.SetDefault("providers", map[string]interface{}{
		"github": map[string]interface{}{
			"client_id":     "",
			"client_secret": "",
		},
	})
}

// overrideFromEnvironment fills provider credentials from the environment
// and expands ${VAR} placeholders left in the file
func overrideFromEnvironment(config AuthConfig) AuthConfig {
	if config.Providers == nil {
		config.Providers = map[string]ProviderConfig{}
	}

	update := func(providerName, clientID, clientSecret, baseURL string) {
		provider := config.Providers[providerName]
		if clientID != "" {
			provider.ClientID = clientID
		}
		if clientSecret != "" {
			provider.ClientSecret = clientSecret
		}
		if baseURL != "" {
			provider.EnterpriseBaseURL = baseURL
		}
		provider.ClientID = expandPlaceholder(provider.ClientID)
		provider.ClientSecret = expandPlaceholder(provider.ClientSecret)
		provider.EnterpriseBaseURL = expandPlaceholder(provider.EnterpriseBaseURL)
		if provider != (ProviderConfig{}) {
			config.Providers[providerName] = provider
		}
	}

	update("github",
		os.Getenv("GITHUB_CLIENT_ID"),
		os.Getenv("GITHUB_CLIENT_SECRET"),
		"")

	update("githubenterprise",
		os.Getenv("GITHUB_ENTERPRISE_CLIENT_ID"),
		os.Getenv("GITHUB_ENTERPRISE_CLIENT_SECRET"),
		os.Getenv("GITHUB_ENTERPRISE_BASE_URL"))

	return config
}

// expandPlaceholder resolves a value of the exact form ${NAME}. Unset
// variables resolve to "", which leaves the provider disabled.
func expandPlaceholder(value string) string {
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") && len(value) > 3 {
		return os.Getenv(value[2 : len(value)-1])
	}
	return value
}
