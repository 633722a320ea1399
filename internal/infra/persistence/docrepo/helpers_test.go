package docrepo

import (
	"context"
	"io"
	"log/slog"
	"time"

	"townscoffee/internal/errors"
	"townscoffee/internal/infra/persistence/store"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var errStoreDown = errors.New("store unavailable")

// failingStore fails every write to one collection.
type failingStore struct {
	store.Store
	collection string
}

func (s *failingStore) Set(ctx context.Context, collection, id string, data any, merge bool) error {
	if collection == s.collection {
		return errStoreDown
	}

	return s.Store.Set(ctx, collection, id, data, merge)
}

func receive[T any](ch <-chan T) (T, bool) {
	select {
	case v, ok := <-ch:
		return v, ok
	case <-time.After(2 * time.Second):
		var zero T

		return zero, false
	}
}
