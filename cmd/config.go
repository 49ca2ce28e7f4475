package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/bnema/f5m/internal/application"
	"github.com/bnema/f5m/internal/domain"
	"github.com/bnema/f5m/internal/ports"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	configEnvVar = "F5M_CONFIG"
	envPrefix    = "F5M"

	keyServer        = "server"
	keyServerPort    = "server_port"
	keyUser          = "user"
	keyPassword      = "password"
	keyPasswordRef   = "password_ref"
	keyValidateCerts = "validate_certs"
	keyPartition     = "partition"
)

// connectionFlagKeys maps config keys to the flag names that override them.
var connectionFlagKeys = map[string]string{
	keyServer:        "server",
	keyServerPort:    "server-port",
	keyUser:          "user",
	keyPassword:      "password",
	keyPasswordRef:   "password-ref",
	keyValidateCerts: "validate-certs",
}

// loadConfig reads the optional TOML config file and layers F5M_* environment
// variables over it. A missing file yields defaults only.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyServerPort, 443)
	v.SetDefault(keyValidateCerts, true)
	v.SetDefault(keyPartition, domain.DefaultPartition)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	return v, nil
}

func addConnectionFlags(flags *pflag.FlagSet) {
	flags.String("server", "", "BIG-IP host name, address or https:// URL")
	flags.Int("server-port", 443, "BIG-IP management port")
	flags.String("user", "", "BIG-IP user name")
	flags.String("password", "", "BIG-IP password")
	flags.String("password-ref", "", "Secret-store key holding the BIG-IP password")
	flags.Bool("validate-certs", true, "Verify the appliance TLS certificate")
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet, keys map[string]string) error {
	for key, name := range keys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}

// resolveEndpoint merges flags, environment and config into connection
// settings and resolves password_ref through the secret store.
func (a *app) resolveEndpoint(ctx context.Context, flags *pflag.FlagSet) (ports.Endpoint, error) {
	if err := bindFlags(a.config, flags, connectionFlagKeys); err != nil {
		return ports.Endpoint{}, domain.ConfigurationError("bind flags", err)
	}

	endpoint := ports.Endpoint{
		Server:        strings.TrimSpace(a.config.GetString(keyServer)),
		Port:          a.config.GetInt(keyServerPort),
		User:          strings.TrimSpace(a.config.GetString(keyUser)),
		Password:      a.config.GetString(keyPassword),
		ValidateCerts: a.config.GetBool(keyValidateCerts),
	}

	return application.ResolvePassword(ctx, a.secretStore, endpoint, a.config.GetString(keyPasswordRef))
}
