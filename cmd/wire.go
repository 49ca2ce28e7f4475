package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bnema/f5m/internal/adapters/icontrol"
	resultrender "github.com/bnema/f5m/internal/adapters/render/result"
	chainstore "github.com/bnema/f5m/internal/adapters/secrets/chain"
	"github.com/bnema/f5m/internal/application"
	"github.com/bnema/f5m/internal/domain"
	"github.com/bnema/f5m/internal/ports"
	"github.com/go-kit/kit/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"
)

type app struct {
	config         *viper.Viper
	secretStore    ports.SecretStore
	resultRenderer func([]application.Outcome, resultrender.RenderOptions) (string, error)
	newDialer      func(log.Logger) ports.ApplianceDialer
	isTerminal     func(io.Writer) bool
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg, err := loadConfig(envOrDefault(configEnvVar, filepath.Join(homeDir, ".config", "f5m", "config.toml")))
	if err != nil {
		return nil, domain.ConfigurationError("load config", err)
	}

	secretStore, err := chainstore.NewPasswordStore(filepath.Join(homeDir, ".config", "f5m", "secrets"))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		config:         cfg,
		secretStore:    secretStore,
		resultRenderer: resultrender.Render,
		newDialer: func(logger log.Logger) ports.ApplianceDialer {
			return icontrol.Dialer{Logger: logger}
		},
		isTerminal: isTerminal,
	}, nil
}

func (a *app) newService(logger log.Logger) *application.Service {
	return application.NewService(a.newDialer(logger), logger)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
