package store

import (
	"context"
	"strings"
	"time"
)

// Recorder receives the outcome of every store call.
type Recorder interface {
	RecordStoreOperation(operation, collection string, duration time.Duration, err error)
}

type instrumented struct {
	next     Store
	recorder Recorder
}

// WithRecorder wraps s so that every call is reported to recorder.
func WithRecorder(s Store, recorder Recorder) Store {
	if recorder == nil {
		return s
	}

	return &instrumented{next: s, recorder: recorder}
}

func (s *instrumented) observe(operation, collection string, start time.Time, err error) {
	s.recorder.RecordStoreOperation(operation, CollectionLabel(collection), time.Since(start), err)
}

func (s *instrumented) Get(ctx context.Context, collection, id string, dst any) (err error) {
	defer func(start time.Time) { s.observe("get", collection, start, ignoreNotFound(err)) }(time.Now())

	return s.next.Get(ctx, collection, id, dst)
}

func (s *instrumented) Exists(ctx context.Context, collection, id string) (exists bool, err error) {
	defer func(start time.Time) { s.observe("exists", collection, start, err) }(time.Now())

	return s.next.Exists(ctx, collection, id)
}

func (s *instrumented) Query(ctx context.Context, collection string, q Query) (docs []Document, err error) {
	defer func(start time.Time) { s.observe("query", collection, start, err) }(time.Now())

	return s.next.Query(ctx, collection, q)
}

func (s *instrumented) Create(ctx context.Context, collection, id string, data any) (err error) {
	defer func(start time.Time) { s.observe("create", collection, start, err) }(time.Now())

	return s.next.Create(ctx, collection, id, data)
}

func (s *instrumented) Set(ctx context.Context, collection, id string, data any, merge bool) (err error) {
	defer func(start time.Time) { s.observe("set", collection, start, err) }(time.Now())

	return s.next.Set(ctx, collection, id, data, merge)
}

func (s *instrumented) Update(ctx context.Context, collection, id string, fields map[string]any) (err error) {
	defer func(start time.Time) { s.observe("update", collection, start, ignoreNotFound(err)) }(time.Now())

	return s.next.Update(ctx, collection, id, fields)
}

func (s *instrumented) Delete(ctx context.Context, collection, id string) (err error) {
	defer func(start time.Time) { s.observe("delete", collection, start, err) }(time.Now())

	return s.next.Delete(ctx, collection, id)
}

// CollectionLabel replaces the document ids of a nested collection path with
// "*", e.g. users/abc/favorites becomes users/*/favorites.
func CollectionLabel(collection string) string {
	segments := strings.Split(collection, "/")
	for i := 1; i < len(segments); i += 2 {
		segments[i] = "*"
	}

	return strings.Join(segments, "/")
}

func ignoreNotFound(err error) error {
	if err == ErrNotFound {
		return nil
	}

	return err
}
