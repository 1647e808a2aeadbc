// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper fron a config file or environement variables.
// Empty collaborator URLs select the in-process mock collaborators.
type Config struct {
	DBDriver            string        `mapstructure:"DB_DRIVER"`
	DBSource            string        `mapstructure:"DB_SOURCE"`
	ServerAddress       string        `mapstructure:"SERVER_ADDRESS"`
	TokenSymmetricKey   string        `mapstructure:"TOKEN_SYMMETRIC_KEY"`
	TokenType           string        `mapstructure:"TOKEN_TYPE"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	Environement        string        `mapstructure:"GO_ENV"`
	AdminUsername       string        `mapstructure:"ADMIN_USERNAME"`
	RedBankURL          string        `mapstructure:"RED_BANK_URL"`
	OracleURL           string        `mapstructure:"ORACLE_URL"`
	VaultURL            string        `mapstructure:"VAULT_URL"`
	NATSURL             string        `mapstructure:"NATS_URL"`
	HTTPClientTimeout   time.Duration `mapstructure:"HTTP_CLIENT_TIMEOUT"`

	// Seed data of the mock collaborators, as comma separated key=value pairs.
	MockPrices         string        `mapstructure:"MOCK_PRICES"`
	MockVaults         string        `mapstructure:"MOCK_VAULTS"`
	MockVaultLockup    time.Duration `mapstructure:"MOCK_VAULT_LOCKUP"`
	MockSimulatedYield uint64        `mapstructure:"MOCK_SIMULATED_YIELD"`
}

// IsDevelopment reports whether the app runs in development mode.
func (c Config) IsDevelopment() bool {
	return c.Environement == "development"
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	v := viper.New()

	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("TOKEN_TYPE", "paseto")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", 10*time.Second)
	v.SetDefault("ACCESS_TOKEN_DURATION", 15*time.Minute)
	v.SetDefault("MOCK_VAULT_LOCKUP", 24*time.Hour)

	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = v.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}

// ParsePairs parses comma separated key=value pairs such as "uosmo=1,uatom=10".
func ParsePairs(s string) (map[string]string, error) {
	pairs := make(map[string]string)

	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		key, value, ok := strings.Cut(field, "=")
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("invalid pair %q", field)
		}

		pairs[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}

	return pairs, nil
}
