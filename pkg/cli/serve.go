package cli

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/minterminds/chatfront/pkg/cli/config"
	server "github.com/minterminds/chatfront/pkg/controller/http"
	"github.com/minterminds/chatfront/pkg/service/connectivity"
	"github.com/minterminds/chatfront/pkg/usecase"
	"github.com/minterminds/chatfront/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		addr string

		backendCfg config.Backend
		storageCfg config.Storage
		sentryCfg  config.Sentry
	)

	flags := joinFlags(
		[]cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Sources:     cli.EnvVars("CHATFRONT_ADDR"),
				Usage:       "Listen address for the embed sidecar",
				Value:       "127.0.0.1:8080",
				Destination: &addr,
			},
		},
		backendCfg.Flags(),
		storageCfg.Flags(),
		sentryCfg.Flags(),
	)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Run the widget embed sidecar (JSON API over HTTP)",
		Flags:   flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logging.Default().Info("starting embed sidecar",
				"addr", addr,
				"backend", backendCfg,
				"storage", storageCfg,
				"sentry", sentryCfg,
			)

			if err := sentryCfg.Configure(); err != nil {
				return err
			}

			client, err := backendCfg.Configure()
			if err != nil {
				return err
			}

			repo, closeRepo, err := storageCfg.Configure(ctx)
			defer closeRepo()
			if err != nil {
				return err
			}

			monitor := connectivity.New(client, connectivity.WithInterval(backendCfg.HealthInterval()))
			uc := usecase.New(repo, client, monitor)
			if err := uc.Init(ctx); err != nil {
				return goerr.Wrap(err, "failed to initialize session")
			}
			defer uc.Close()

			httpServer := http.Server{
				Addr:              addr,
				Handler:           server.NewServer(uc),
				ReadTimeout:       30 * time.Second,
				ReadHeaderTimeout: 10 * time.Second,
				BaseContext: func(l net.Listener) context.Context {
					return ctx
				},
			}

			errCh := make(chan error, 1)
			go func() {
				defer close(errCh)
				if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case <-sigCh:
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			}
		},
	}
}
