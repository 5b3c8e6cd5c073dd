package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/tweakd/tweakd/config"
	"github.com/tweakd/tweakd/internal/adapters/authtier"
	"github.com/tweakd/tweakd/internal/adapters/browser"
	"github.com/tweakd/tweakd/internal/adapters/discord"
	"github.com/tweakd/tweakd/internal/adapters/shell"
	"github.com/tweakd/tweakd/internal/adapters/sysinfo"
	"github.com/tweakd/tweakd/internal/observability/statsd"
	"github.com/tweakd/tweakd/internal/service"
)

// ServiceContainer holds the wired application services.
type ServiceContainer struct {
	Login   *service.LoginService
	Tweaks  *service.TweakService
	Specs   *service.SpecsService
	Metrics *statsd.Client
}

// ServiceDeps contains dependencies for building the service container.
type ServiceDeps struct {
	Config *config.AppConfig
	Logger *slog.Logger
}

// NewServices wires adapters and services from configuration.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	cfg := deps.Config
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	metrics, err := statsd.NewClient(statsd.Config{
		Address: cfg.Observability.StatsD.Addr,
		Prefix:  cfg.Observability.StatsD.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init statsd client: %w", err)
	}

	provider, err := discord.NewProvider(discord.ProviderConfig{
		ClientID:     cfg.Auth.OAuth.ClientID,
		ClientSecret: cfg.Auth.OAuth.ClientSecret,
		RedirectURL:  cfg.Auth.OAuth.RedirectURL,
		Scope:        cfg.Auth.OAuth.Scope,
		GuildID:      cfg.Auth.Tiers.GuildID,
		APIBaseURL:   cfg.Auth.OAuth.APIBaseURL,
		AuthURL:      cfg.Auth.OAuth.AuthURL,
		TokenURL:     cfg.Auth.OAuth.TokenURL,
		HTTPClient:   &http.Client{Timeout: cfg.Auth.HTTPTimeout},
	})
	if err != nil {
		return nil, fmt.Errorf("init auth provider: %w", err)
	}

	callbackPath, err := callbackPathFromRedirectURL(cfg.Auth.OAuth.RedirectURL)
	if err != nil {
		return nil, err
	}

	login := service.NewLoginService(service.LoginServiceOptions{
		Provider: provider,
		Tiers: authtier.StaticTierMapper{
			PremiumRoleID: cfg.Auth.Tiers.PremiumRoleID,
			AdminRoleID:   cfg.Auth.Tiers.AdminRoleID,
			OwnerUserID:   cfg.Auth.Tiers.OwnerUserID,
		},
		Browser:      browser.Opener{},
		CallbackAddr: cfg.Auth.OAuth.CallbackAddr,
		CallbackPath: callbackPath,
		Timeout:      cfg.Auth.LoginTimeout,
		Logger:       logger,
		Metrics:      metrics,
	})

	runner := shell.Runner{Timeout: cfg.Tweaks.CommandTimeout}

	tweaks, err := service.NewTweakService(service.TweakServiceOptions{
		Runner:  runner,
		Logger:  logger,
		Metrics: metrics,
	})
	if err != nil {
		return nil, fmt.Errorf("init tweak service: %w", err)
	}

	specs, err := service.NewSpecsService(service.SpecsServiceOptions{
		Source: &sysinfo.Probe{Runner: runner},
		Logger: logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init specs service: %w", err)
	}

	return &ServiceContainer{
		Login:   login,
		Tweaks:  tweaks,
		Specs:   specs,
		Metrics: metrics,
	}, nil
}

// callbackPathFromRedirectURL extracts the path the loopback listener must
// accept from the registered redirect URI.
func callbackPathFromRedirectURL(redirectURL string) (string, error) {
	u, err := url.Parse(redirectURL)
	if err != nil {
		return "", fmt.Errorf("parse redirect URL: %w", err)
	}
	if u.Path == "" {
		return "/", nil
	}
	return u.Path, nil
}
