package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/minterminds/chatfront/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdStats() *cli.Command {
	var backendCfg config.Backend

	return &cli.Command{
		Name:  "stats",
		Usage: "Fetch knowledge-base statistics from the backend",
		Flags: backendCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := backendCfg.Configure()
			if err != nil {
				return err
			}

			stats, err := client.KnowledgeStats(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to fetch knowledge stats")
			}

			out, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to render stats")
			}
			fmt.Println(string(out))
			return nil
		},
	}
}
