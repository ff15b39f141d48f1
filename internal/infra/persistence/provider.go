// Package persistence selects the account and content store for the configured driver.
package persistence

import (
	"log/slog"

	"inkwell/config"
	"inkwell/internal/domain/repository"
	"inkwell/internal/infra/persistence/memory"
	"inkwell/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RepositoriesParams holds dependencies for the stores, injected by Fx.
type RepositoriesParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Repositories is every store the application needs.
type Repositories struct {
	fx.Out

	AccountRepo repository.AccountRepository
	ContentRepo repository.ContentRepository
}

// NewRepositories builds the stores named by storage.driver.
func NewRepositories(params RepositoriesParams) (Repositories, error) {
	logger := params.Logger

	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")

		return Repositories{
			AccountRepo: memory.NewAccountRepository(),
			ContentRepo: memory.NewContentRepository(),
		}, nil

	case config.StorageDriverPostgres:
		db, err := postgres.New(params.Lc, params.Config, logger)
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using Postgres storage")

		return Repositories{
			AccountRepo: postgres.NewAccountRepository(db),
			ContentRepo: postgres.NewContentRepository(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
