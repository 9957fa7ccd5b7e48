package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/minterminds/chatfront/pkg/cli/config"
	"github.com/minterminds/chatfront/pkg/service/connectivity"
	"github.com/minterminds/chatfront/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdClear() *cli.Command {
	var (
		backendCfg config.Backend
		storageCfg config.Storage
	)

	return &cli.Command{
		Name:  "clear",
		Usage: "Clear the stored conversation and rotate the session",
		Flags: joinFlags(backendCfg.Flags(), storageCfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := backendCfg.Configure()
			if err != nil {
				return err
			}

			repo, closeRepo, err := storageCfg.Configure(ctx)
			defer closeRepo()
			if err != nil {
				return err
			}

			monitor := connectivity.New(client)
			defer monitor.Stop()

			uc := usecase.New(repo, client, monitor, usecase.WithGreeting(false))
			if err := uc.Init(ctx); err != nil {
				return goerr.Wrap(err, "failed to initialize session")
			}
			defer uc.Close()

			old := uc.SessionID()
			uc.ClearChat(ctx)
			fmt.Printf("🧹 Cleared session %s, new session %s\n", old, uc.SessionID())
			return nil
		},
	}
}
