package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"townscoffee/config"
	"townscoffee/internal/domain/lifecycle"
	"townscoffee/internal/infra/catalog"
	logs "townscoffee/internal/infra/log"
	"townscoffee/internal/infra/persistence"
	"townscoffee/internal/infra/persistence/docrepo"
	"townscoffee/internal/infra/persistence/memory"
	"townscoffee/internal/infra/persistence/store"
	"townscoffee/internal/usecase"
	"townscoffee/internal/usecase/impl"
	"townscoffee/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogseed loads a YAML catalog of towns, farmers and coffees from a
// bucket and imports it into the configured document store.
//
//	catalogseed -source file://./data -key catalog.yaml
//	catalogseed -source gs://townscoffee-catalogs -key 2024/colombia.yaml -dry-run

func main() {
	source := flag.String("source", "file://./data", "Bucket URL holding the catalog (file://, gs://)")
	key := flag.String("key", "catalog.yaml", "Object key of the catalog inside the bucket")
	dryRun := flag.Bool("dry-run", false, "Validate the catalog against a scratch in-memory store")
	timeout := flag.Duration("timeout", 5*time.Minute, "Overall deadline for the import")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	if err := run(ctx, *source, *key, *dryRun); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, source, key string, dryRun bool) error {
	start := time.Now()

	fmt.Printf("Loading %s from %s\n", key, source)
	entries, src, err := catalog.Load(ctx, source, key)
	if err != nil {
		return err
	}
	fmt.Printf("Read %s: %d towns, %d farmers, %d coffees\n",
		src, len(entries.Towns), len(entries.Farmers), len(entries.Coffees))

	var catalogUC usecase.CatalogUsecase
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			docrepo.NewTownRepository,
			docrepo.NewCoffeeRepository,
			docrepo.NewCoffeeFarmerRepository,
			impl.NewCatalogService,
		),
		storeOption(dryRun),
		fx.Populate(&catalogUC),
	)
	if err := app.Start(ctx); err != nil {
		return errors.Wrap(err, "failed to start dependencies")
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		if err := app.Stop(stopCtx); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: shutdown failed: %v\n", err)
		}
	}()

	out, err := catalogUC.ImportCatalog(ctx, entries)
	if err != nil {
		return errors.Wrap(err, "import failed")
	}

	verb := "Imported"
	if dryRun {
		verb = "Validated"
	}
	fmt.Printf("%s %d towns, %d farmers, %d coffees in %s\n",
		verb, out.Towns, out.Farmers, out.Coffees, util.FormatDuration(time.Since(start)))

	return nil
}

// storeOption selects the configured store, or a throwaway one for dry runs.
func storeOption(dryRun bool) fx.Option {
	if !dryRun {
		return fx.Provide(persistence.NewStore)
	}

	return fx.Provide(func(logger *slog.Logger) store.Store {
		logger.Info("Dry run, nothing is written to the configured store")

		return memory.NewStore()
	})
}
