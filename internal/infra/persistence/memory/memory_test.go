package memory

import (
	"context"
	"testing"
	"time"

	"townscoffee/internal/infra/persistence/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name      string    `json:"name"`
	Rating    float64   `json:"rating"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

func seed(t *testing.T, s *Store) {
	t.Helper()

	ctx := context.Background()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.Set(ctx, "towns", "b", record{Name: "Buesaco", Rating: 4.5, Active: true, CreatedAt: base.Add(2 * time.Hour)}, false))
	require.NoError(t, s.Set(ctx, "towns", "a", record{Name: "Aranzazu", Rating: 3.9, Active: true, CreatedAt: base}, false))
	require.NoError(t, s.Set(ctx, "towns", "c", record{Name: "Chinchina", Rating: 4.5, Active: false, CreatedAt: base.Add(time.Hour)}, false))
}

func ids(docs []store.Document) []string {
	out := make([]string, len(docs))
	for i, d := range docs {
		out[i] = d.ID()
	}

	return out
}

func TestStore_GetAndNotFound(t *testing.T) {
	s := NewStore()
	seed(t, s)

	var got record
	require.NoError(t, s.Get(context.Background(), "towns", "a", &got))
	assert.Equal(t, "Aranzazu", got.Name)
	assert.True(t, got.CreatedAt.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))

	err := s.Get(context.Background(), "towns", "missing", &got)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_QueryFiltersAndOrders(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	docs, err := s.Query(ctx, "towns", store.Query{}.Where("active", true).Order("name", store.Asc))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ids(docs))

	docs, err = s.Query(ctx, "towns", store.Query{}.Order("rating", store.Desc))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "a"}, ids(docs), "ties keep document id order")

	docs, err = s.Query(ctx, "towns", store.Query{}.Order("createdAt", store.Desc).Take(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, ids(docs))
}

func TestStore_CreateRejectsExisting(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Create(ctx, "coffee_farmers", "f1", record{Name: "La Esperanza"}))
	assert.ErrorIs(t, s.Create(ctx, "coffee_farmers", "f1", record{Name: "Other"}), store.ErrAlreadyExists)
}

func TestStore_SetMergeAndUpdate(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "towns", "a", map[string]any{"rating": 5.0}, true))

	var got record
	require.NoError(t, s.Get(ctx, "towns", "a", &got))
	assert.Equal(t, "Aranzazu", got.Name)
	assert.InDelta(t, 5.0, got.Rating, 0)

	require.NoError(t, s.Update(ctx, "towns", "a", map[string]any{"active": false}))
	require.NoError(t, s.Get(ctx, "towns", "a", &got))
	assert.False(t, got.Active)

	assert.ErrorIs(t, s.Update(ctx, "towns", "missing", map[string]any{"active": true}), store.ErrNotFound)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s := NewStore()
	seed(t, s)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, "towns", "a"))
	require.NoError(t, s.Delete(ctx, "towns", "a"))

	exists, err := s.Exists(ctx, "towns", "a")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_NestedCollections(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "users/u1/favorites", "c1", map[string]any{"addedDate": time.Now()}, false))

	exists, err := s.Exists(ctx, "users/u1/favorites", "c1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Exists(ctx, "users/u2/favorites", "c1")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.Equal(t, []string{"users/u1/favorites"}, s.Collections())
}
