package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/minterminds/chatfront/pkg/adapter/backend"
	"github.com/urfave/cli/v3"
)

type Backend struct {
	baseURL        string
	timeout        time.Duration
	healthInterval time.Duration
}

func (x *Backend) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "backend-url",
			Usage:       "Chat backend API base URL",
			Category:    "Backend",
			Sources:     cli.EnvVars("CHATFRONT_BACKEND_URL"),
			Value:       "http://localhost:5000/api",
			Destination: &x.baseURL,
		},
		&cli.DurationFlag{
			Name:        "backend-timeout",
			Usage:       "Per-request timeout for backend calls",
			Category:    "Backend",
			Sources:     cli.EnvVars("CHATFRONT_BACKEND_TIMEOUT"),
			Value:       15 * time.Second,
			Destination: &x.timeout,
		},
		&cli.DurationFlag{
			Name:        "health-interval",
			Usage:       "Backend health polling interval",
			Category:    "Backend",
			Sources:     cli.EnvVars("CHATFRONT_HEALTH_INTERVAL"),
			Value:       30 * time.Second,
			Destination: &x.healthInterval,
		},
	}
}

func (x Backend) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", x.baseURL),
		slog.Duration("timeout", x.timeout),
		slog.Duration("health_interval", x.healthInterval),
	)
}

func (x *Backend) HealthInterval() time.Duration {
	return x.healthInterval
}

func (x *Backend) Configure() (*backend.Client, error) {
	client, err := backend.New(x.baseURL, backend.WithTimeout(x.timeout))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure backend client")
	}
	return client, nil
}
