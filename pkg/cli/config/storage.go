package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/minterminds/chatfront/pkg/domain/interfaces"
	"github.com/minterminds/chatfront/pkg/repository"
	"github.com/minterminds/chatfront/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

type Storage struct {
	dbPath string
}

func (x *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "db-path",
			Usage:       "SQLite database path for durable session storage (empty: in-memory, lost on exit)",
			Category:    "Storage",
			Sources:     cli.EnvVars("CHATFRONT_DB_PATH"),
			Destination: &x.dbPath,
		},
	}
}

func (x Storage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("db_path", x.dbPath),
	)
}

// Configure builds the repository and returns it with a closer. The closer is
// callable even when an error is returned.
func (x *Storage) Configure(ctx context.Context) (interfaces.Repository, func(), error) {
	if x.dbPath == "" {
		return repository.NewMemory(), func() {}, nil
	}

	repo, err := repository.NewSQLite(x.dbPath)
	if err != nil {
		return nil, func() {}, goerr.Wrap(err, "failed to configure sqlite repository", goerr.V("path", x.dbPath))
	}
	return repo, func() { safe.Close(ctx, repo) }, nil
}
