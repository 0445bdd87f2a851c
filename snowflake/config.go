package snowflake

import (
	"fmt"

	"github.com/snowflakedb/gosnowflake"
	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"

	"github.com/sprocketship/sprocketship/config"
	"github.com/sprocketship/sprocketship/errors"
)

// Authenticator values accepted in the snowflake section.
const (
	// AuthenticatorPassword authenticates with user and password (default).
	AuthenticatorPassword = "snowflake"

	// AuthenticatorKeyPair authenticates with an RSA key pair (JWT).
	AuthenticatorKeyPair = "keypair"

	// AuthenticatorOAuth authenticates with an OAuth access token.
	AuthenticatorOAuth = "oauth"
)

// ConnectionConfig holds the snowflake section of .sprocketship.yml.
type ConnectionConfig struct {
	Account   string `yaml:"account"`
	User      string `yaml:"user"`
	Role      string `yaml:"role"`
	Warehouse string `yaml:"warehouse"`
	Database  string `yaml:"database"`
	Schema    string `yaml:"schema"`

	// Authenticator selects the credential scheme: "snowflake" (password,
	// the default when empty), "keypair", or "oauth".
	Authenticator string `yaml:"authenticator"`

	Password string `yaml:"password"`

	// PrivateKeyPath points at a PEM or OpenSSH RSA private key for
	// key-pair authentication.
	PrivateKeyPath       string `yaml:"private_key_path"`
	PrivateKeyPassphrase string `yaml:"private_key_passphrase"`

	// Token is the access token for OAuth authentication.
	Token string `yaml:"token"`
}

// ConnectionFromTree extracts and decodes the snowflake section of the
// configuration tree. configPath is used in error messages.
func ConnectionFromTree(tree config.Tree, configPath string) (*ConnectionConfig, error) {
	section := tree.Section("snowflake")
	if section == nil {
		return nil, errors.NewMissingSnowflakeSectionError(configPath)
	}

	// Round-trip through YAML to decode the untyped section into the
	// struct with the usual tag handling.
	raw, err := yaml.Marshal(section)
	if err != nil {
		return nil, fmt.Errorf("encode snowflake section: %w", err)
	}
	var cfg ConnectionConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, errors.NewConfigUnparsableError(configPath, err)
	}

	if cfg.Account == "" || cfg.User == "" {
		return nil, &errors.CLIError{
			Err:        errors.ErrMissingSnowflakeSection,
			Code:       errors.CodeConfigLoad,
			Message:    fmt.Sprintf("Incomplete 'snowflake' section in %s", configPath),
			Details:    "Both account and user are required.",
			Suggestion: "Add the missing settings to the snowflake section.",
		}
	}
	return &cfg, nil
}

// TokenSource returns the OAuth token source for this connection.
// Only meaningful with AuthenticatorOAuth.
func (c *ConnectionConfig) TokenSource() oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.Token})
}

// driverConfig maps the connection settings onto the gosnowflake driver
// configuration, resolving credentials per the configured authenticator.
func (c *ConnectionConfig) driverConfig() (*gosnowflake.Config, error) {
	cfg := &gosnowflake.Config{
		Account:     c.Account,
		User:        c.User,
		Role:        c.Role,
		Warehouse:   c.Warehouse,
		Database:    c.Database,
		Schema:      c.Schema,
		Application: "sprocketship",
	}

	switch c.Authenticator {
	case "", AuthenticatorPassword:
		cfg.Authenticator = gosnowflake.AuthTypeSnowflake
		cfg.Password = c.Password
	case AuthenticatorKeyPair:
		key, err := LoadPrivateKey(c.PrivateKeyPath, c.PrivateKeyPassphrase)
		if err != nil {
			return nil, err
		}
		cfg.Authenticator = gosnowflake.AuthTypeJwt
		cfg.PrivateKey = key
	case AuthenticatorOAuth:
		token, err := c.TokenSource().Token()
		if err != nil {
			return nil, fmt.Errorf("oauth token: %w", err)
		}
		cfg.Authenticator = gosnowflake.AuthTypeOAuth
		cfg.Token = token.AccessToken
	default:
		return nil, &errors.CLIError{
			Err:        errors.ErrInvalidConfiguration,
			Code:       errors.CodeInvalidValue,
			Message:    fmt.Sprintf("Unknown authenticator: '%s'", c.Authenticator),
			Suggestion: "Valid values:\n  - snowflake (password)\n  - keypair\n  - oauth",
		}
	}

	return cfg, nil
}

// DSN builds the driver connection string.
func (c *ConnectionConfig) DSN() (string, error) {
	cfg, err := c.driverConfig()
	if err != nil {
		return "", err
	}
	return gosnowflake.DSN(cfg)
}
