// Package persistence selects the document store backing the repositories.
package persistence

import (
	"context"
	"log/slog"

	"townscoffee/config"
	"townscoffee/internal/errors"
	"townscoffee/internal/infra/metrics"
	"townscoffee/internal/infra/persistence/firestore"
	"townscoffee/internal/infra/persistence/memory"
	"townscoffee/internal/infra/persistence/store"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for the document store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc      fx.Lifecycle
	Ctx     context.Context
	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// NewStore builds the configured store and instruments it when metrics are enabled.
func NewStore(params StoreParams) (store.Store, error) {
	provider := config.StoreProviderMemory
	if params.Config.Store != nil && params.Config.Store.Provider != "" {
		provider = params.Config.Store.Provider
	}

	var s store.Store
	switch provider {
	case config.StoreProviderMemory:
		params.Logger.Warn("Using in-memory document store, data is lost on restart")
		s = memory.NewStore()

	case config.StoreProviderFirestore:
		client, err := firestore.NewClient(firestore.Params{
			Lc:     params.Lc,
			Ctx:    params.Ctx,
			Config: params.Config,
			Logger: params.Logger,
		})
		if err != nil {
			return nil, err
		}
		s = firestore.NewStore(client)

	default:
		return nil, errors.Errorf("unknown store provider %q", provider)
	}

	if params.Metrics == nil {
		return s, nil
	}

	return store.WithRecorder(s, params.Metrics), nil
}
