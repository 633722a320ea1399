// Package memory implements the document store in process memory. It backs
// local runs without cloud credentials and the repository tests.
package memory

import (
	"context"
	"encoding/json"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"townscoffee/internal/errors"
	"townscoffee/internal/infra/persistence/store"
)

// Store keeps every document as its JSON encoding, so records round-trip the
// same way for both implementations as long as json and firestore tags agree.
type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{collections: make(map[string]map[string]map[string]any)}
}

var _ store.Store = (*Store)(nil)

func (s *Store) Get(_ context.Context, collection, id string, dst any) error {
	s.mu.RLock()
	fields, ok := s.collections[collection][id]
	s.mu.RUnlock()

	if !ok {
		return store.ErrNotFound
	}

	return decode(fields, dst)
}

func (s *Store) Exists(_ context.Context, collection, id string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.collections[collection][id]

	return ok, nil
}

func (s *Store) Query(_ context.Context, collection string, q store.Query) ([]store.Document, error) {
	filters := make([]store.Filter, 0, len(q.Filters))
	for _, f := range q.Filters {
		value, err := normalize(f.Value)
		if err != nil {
			return nil, err
		}
		filters = append(filters, store.Filter{Field: f.Field, Value: value})
	}

	s.mu.RLock()
	docs := make([]document, 0, len(s.collections[collection]))
	for id, fields := range s.collections[collection] {
		if matches(fields, filters) {
			docs = append(docs, document{id: id, fields: maps.Clone(fields)})
		}
	}
	s.mu.RUnlock()

	// document id order when no sort key decides
	sort.Slice(docs, func(i, j int) bool { return docs[i].id < docs[j].id })
	sort.SliceStable(docs, func(i, j int) bool {
		for _, o := range q.OrderBy {
			c := compareValues(docs[i].fields[o.Field], docs[j].fields[o.Field])
			if c == 0 {
				continue
			}
			if o.Direction == store.Desc {
				return c > 0
			}

			return c < 0
		}

		return false
	})

	if q.Limit > 0 && len(docs) > q.Limit {
		docs = docs[:q.Limit]
	}

	result := make([]store.Document, len(docs))
	for i := range docs {
		result[i] = docs[i]
	}

	return result, nil
}

func (s *Store) Create(_ context.Context, collection, id string, data any) error {
	fields, err := encode(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; ok {
		return store.ErrAlreadyExists
	}
	s.put(collection, id, fields)

	return nil
}

func (s *Store) Set(_ context.Context, collection, id string, data any, merge bool) error {
	fields, err := encode(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.collections[collection][id]; ok && merge {
		merged := maps.Clone(existing)
		maps.Copy(merged, fields)
		fields = merged
	}
	s.put(collection, id, fields)

	return nil
}

func (s *Store) Update(_ context.Context, collection, id string, fields map[string]any) error {
	changes, err := encode(fields)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.collections[collection][id]
	if !ok {
		return store.ErrNotFound
	}

	updated := maps.Clone(existing)
	maps.Copy(updated, changes)
	s.put(collection, id, updated)

	return nil
}

func (s *Store) Delete(_ context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)

	return nil
}

// Collections lists the collection paths holding at least one document.
func (s *Store) Collections() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.collections))
	for name, docs := range s.collections {
		if len(docs) > 0 {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	return names
}

func (s *Store) put(collection, id string, fields map[string]any) {
	docs, ok := s.collections[collection]
	if !ok {
		docs = make(map[string]map[string]any)
		s.collections[collection] = docs
	}
	docs[id] = fields
}

type document struct {
	id     string
	fields map[string]any
}

func (d document) ID() string {
	return d.id
}

func (d document) DataTo(dst any) error {
	return decode(d.fields, dst)
}

func encode(data any) (map[string]any, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "encode document")
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, errors.Wrap(err, "document must encode to an object")
	}

	return fields, nil
}

func decode(fields map[string]any, dst any) error {
	raw, err := json.Marshal(fields)
	if err != nil {
		return errors.Wrap(err, "encode document")
	}

	return errors.Wrap(json.Unmarshal(raw, dst), "decode document")
}

func normalize(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "encode filter value")
	}

	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, errors.Wrap(err, "decode filter value")
	}

	return out, nil
}

func matches(fields map[string]any, filters []store.Filter) bool {
	for _, f := range filters {
		if compareValues(fields[f.Field], f.Value) != 0 {
			return false
		}
		if _, ok := fields[f.Field]; !ok {
			return false
		}
	}

	return true
}

// compareValues orders JSON decoded values. nil sorts first and values of
// different kinds compare by kind.
func compareValues(a, b any) int {
	switch av := a.(type) {
	case nil:
		if b == nil {
			return 0
		}

		return -1
	case bool:
		bv, ok := b.(bool)
		if !ok {
			return kindOrder(a) - kindOrder(b)
		}
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	case float64:
		bv, ok := b.(float64)
		if !ok {
			return kindOrder(a) - kindOrder(b)
		}
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		default:
			return 0
		}
	case string:
		bv, ok := b.(string)
		if !ok {
			return kindOrder(a) - kindOrder(b)
		}
		at, aErr := time.Parse(time.RFC3339Nano, av)
		bt, bErr := time.Parse(time.RFC3339Nano, bv)
		if aErr == nil && bErr == nil {
			return at.Compare(bt)
		}

		return strings.Compare(av, bv)
	default:
		if b == nil {
			return 1
		}

		return kindOrder(a) - kindOrder(b)
	}
}

func kindOrder(v any) int {
	switch v.(type) {
	case nil:
		return 0
	case bool:
		return 1
	case float64:
		return 2
	case string:
		return 3
	default:
		return 4
	}
}
