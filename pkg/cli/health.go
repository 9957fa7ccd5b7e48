package cli

import (
	"context"
	"fmt"

	"github.com/minterminds/chatfront/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func cmdHealth() *cli.Command {
	var backendCfg config.Backend

	return &cli.Command{
		Name:  "health",
		Usage: "Probe the backend once and report its status",
		Flags: backendCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			client, err := backendCfg.Configure()
			if err != nil {
				return err
			}

			status, err := client.CheckHealth(ctx)
			if err != nil {
				fmt.Println("❌ unreachable:", err.Error())
				return nil
			}

			if status.Online() {
				fmt.Println("✅", status)
			} else {
				fmt.Println("❌", status)
			}
			return nil
		},
	}
}
