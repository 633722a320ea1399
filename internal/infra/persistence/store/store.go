// Package store defines the document store contract the repositories are
// written against.
package store

import (
	"context"

	"townscoffee/internal/errors"
)

// ErrNotFound is returned when a document does not exist.
var ErrNotFound = errors.New("document not found")

// Direction orders query results.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// Filter is an equality predicate on a field.
type Filter struct {
	Field string
	Value any
}

// Order sorts query results by a field.
type Order struct {
	Field     string
	Direction Direction
}

// Query selects documents of one collection. Zero Limit means no limit.
type Query struct {
	Filters []Filter
	OrderBy []Order
	Limit   int
}

// Where returns a query with the equality filter added.
func (q Query) Where(field string, value any) Query {
	q.Filters = append(append([]Filter(nil), q.Filters...), Filter{Field: field, Value: value})

	return q
}

// Order returns a query with the sort key added.
func (q Query) Order(field string, dir Direction) Query {
	q.OrderBy = append(append([]Order(nil), q.OrderBy...), Order{Field: field, Direction: dir})

	return q
}

// Take returns a query returning at most n documents.
func (q Query) Take(n int) Query {
	q.Limit = n

	return q
}

// Document is a fetched document.
type Document interface {
	ID() string
	DataTo(dst any) error
}

// Store reads and writes documents addressed by a slash separated collection
// path and a document id. Records are structs tagged with `firestore`.
type Store interface {
	// Get decodes the document into dst or returns ErrNotFound.
	Get(ctx context.Context, collection, id string, dst any) error

	// Exists reports whether the document exists.
	Exists(ctx context.Context, collection, id string) (bool, error)

	// Query returns the documents matching q.
	Query(ctx context.Context, collection string, q Query) ([]Document, error)

	// Create writes a new document and fails if it already exists.
	Create(ctx context.Context, collection, id string, data any) error

	// Set writes the document, replacing it or, with merge, merging the
	// given fields into it.
	Set(ctx context.Context, collection, id string, data any, merge bool) error

	// Update changes fields of an existing document or returns ErrNotFound.
	Update(ctx context.Context, collection, id string, fields map[string]any) error

	// Delete removes the document. Deleting a missing document succeeds.
	Delete(ctx context.Context, collection, id string) error
}

// ErrAlreadyExists is returned by Create when the id is taken.
var ErrAlreadyExists = errors.New("document already exists")
