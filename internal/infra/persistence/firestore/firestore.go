// Package firestore implements the document store on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"townscoffee/config"
	"townscoffee/internal/errors"
	"townscoffee/internal/infra/persistence/store"

	"cloud.google.com/go/firestore"
	"go.uber.org/fx"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Params holds the dependencies of the Firestore client.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates the Firestore client and closes it on shutdown.
func NewClient(params Params) (*firestore.Client, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.ProjectID == "" {
		return nil, errors.New("firebase.projectId is required for the firestore store")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	client, err := firestore.NewClient(params.Ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create firestore client")
	}

	params.Logger.Info("Firestore client initialized", slog.String("project_id", cfg.ProjectID))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// Store is the Firestore implementation of store.Store.
type Store struct {
	client *firestore.Client
}

// NewStore wraps client.
func NewStore(client *firestore.Client) *Store {
	return &Store{client: client}
}

var _ store.Store = (*Store)(nil)

func (s *Store) doc(collection, id string) *firestore.DocumentRef {
	return s.client.Collection(collection).Doc(id)
}

func (s *Store) Get(ctx context.Context, collection, id string, dst any) error {
	snap, err := s.doc(collection, id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return store.ErrNotFound
		}

		return errors.Wrapf(err, "get %s/%s", collection, id)
	}

	if err := snap.DataTo(dst); err != nil {
		return errors.Wrapf(err, "decode %s/%s", collection, id)
	}

	return nil
}

func (s *Store) Exists(ctx context.Context, collection, id string) (bool, error) {
	snap, err := s.doc(collection, id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}

		return false, errors.Wrapf(err, "get %s/%s", collection, id)
	}

	return snap.Exists(), nil
}

func (s *Store) Query(ctx context.Context, collection string, q store.Query) ([]store.Document, error) {
	query := s.client.Collection(collection).Query
	for _, f := range q.Filters {
		query = query.Where(f.Field, "==", f.Value)
	}
	for _, o := range q.OrderBy {
		dir := firestore.Asc
		if o.Direction == store.Desc {
			dir = firestore.Desc
		}
		query = query.OrderBy(o.Field, dir)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}

	snaps, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrapf(err, "query %s", collection)
	}

	docs := make([]store.Document, 0, len(snaps))
	for _, snap := range snaps {
		docs = append(docs, document{snap: snap})
	}

	return docs, nil
}

func (s *Store) Create(ctx context.Context, collection, id string, data any) error {
	if _, err := s.doc(collection, id).Create(ctx, data); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return store.ErrAlreadyExists
		}

		return errors.Wrapf(err, "create %s/%s", collection, id)
	}

	return nil
}

// Set writes data. With merge, data must be a map[string]any.
func (s *Store) Set(ctx context.Context, collection, id string, data any, merge bool) error {
	var opts []firestore.SetOption
	if merge {
		opts = append(opts, firestore.MergeAll)
	}

	if _, err := s.doc(collection, id).Set(ctx, data, opts...); err != nil {
		return errors.Wrapf(err, "set %s/%s", collection, id)
	}

	return nil
}

func (s *Store) Update(ctx context.Context, collection, id string, fields map[string]any) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	if _, err := s.doc(collection, id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return store.ErrNotFound
		}

		return errors.Wrapf(err, "update %s/%s", collection, id)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.doc(collection, id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "delete %s/%s", collection, id)
	}

	return nil
}

type document struct {
	snap *firestore.DocumentSnapshot
}

func (d document) ID() string {
	return d.snap.Ref.ID
}

func (d document) DataTo(dst any) error {
	return errors.WithStack(d.snap.DataTo(dst))
}
