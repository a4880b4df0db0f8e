// Package config loads and validates client settings from a JSON file with
// environment-variable overrides, and can keep the API credentials in an
// encrypted vault file instead of plaintext.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is prepended to environment variable overrides, e.g.
	// BINANCEWALLET_CREDENTIALS_KEY
	EnvPrefix = "BINANCEWALLET"

	defaultRecvWindow = 5 * time.Second
	defaultTimeout    = 15 * time.Second
)

var (
	// ErrAPIKeyRequired is returned by Validate when no API key is available
	ErrAPIKeyRequired = errors.New("api key required")
	// ErrAPISecretRequired is returned by Validate when no API secret is available
	ErrAPISecretRequired = errors.New("api secret required")
	// ErrVaultFileUnset is returned when a vault operation is attempted without a vault file configured
	ErrVaultFileUnset = errors.New("vault file unset")
)

// Credentials holds the account's API access material. Secret is used only
// for signing and never transmitted; OTPSecret feeds TOTP code generation.
type Credentials struct {
	Key       string `json:"key" mapstructure:"key"`
	Secret    string `json:"secret" mapstructure:"secret"`
	OTPSecret string `json:"otpSecret" mapstructure:"otpsecret"`
}

// IsEmpty reports whether no credential material is set
func (c *Credentials) IsEmpty() bool {
	return c.Key == "" && c.Secret == "" && c.OTPSecret == ""
}

// Config is the full client configuration
type Config struct {
	BaseURL     string        `json:"baseUrl" mapstructure:"baseurl"`
	USVariant   bool          `json:"usVariant" mapstructure:"usvariant"`
	RecvWindow  time.Duration `json:"recvWindow" mapstructure:"recvwindow"`
	Timeout     time.Duration `json:"timeout" mapstructure:"timeout"`
	Verbose     bool          `json:"verbose" mapstructure:"verbose"`
	Credentials Credentials   `json:"credentials" mapstructure:"credentials"`
	// VaultFile points at an encrypted credentials file; when set,
	// UnlockVault replaces Credentials with the vault's contents
	VaultFile string `json:"vaultFile" mapstructure:"vaultfile"`
}

// LoadConfig reads the config file at path and applies environment
// overrides. An empty path yields a config of defaults and environment
// values only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("baseurl", "")
	v.SetDefault("usvariant", false)
	v.SetDefault("recvwindow", defaultRecvWindow)
	v.SetDefault("timeout", defaultTimeout)
	v.SetDefault("verbose", false)
	v.SetDefault("credentials.key", "")
	v.SetDefault("credentials.secret", "")
	v.SetDefault("credentials.otpsecret", "")
	v.SetDefault("vaultfile", "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrap(err, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to decode config")
	}
	return &cfg, nil
}

// Validate checks the config carries usable credentials. A configured
// vault file satisfies the credential requirement; call UnlockVault before
// constructing a client.
func (c *Config) Validate() error {
	if c.VaultFile != "" {
		return nil
	}
	if c.Credentials.Key == "" {
		return ErrAPIKeyRequired
	}
	if c.Credentials.Secret == "" {
		return ErrAPISecretRequired
	}
	return nil
}

// UnlockVault reads the configured vault file, decrypts it with passphrase,
// and installs the recovered credentials
func (c *Config) UnlockVault(passphrase string) error {
	if c.VaultFile == "" {
		return ErrVaultFileUnset
	}
	data, err := os.ReadFile(c.VaultFile)
	if err != nil {
		return errors.Wrap(err, "failed to read vault file")
	}
	creds, err := OpenCredentials(data, passphrase)
	if err != nil {
		return err
	}
	c.Credentials = *creds
	return nil
}

// SealVault encrypts the current credentials with passphrase and writes
// them to the configured vault file
func (c *Config) SealVault(passphrase string) error {
	if c.VaultFile == "" {
		return ErrVaultFileUnset
	}
	data, err := SealCredentials(&c.Credentials, passphrase)
	if err != nil {
		return err
	}
	return errors.Wrap(os.WriteFile(c.VaultFile, data, 0o600), "failed to write vault file")
}
