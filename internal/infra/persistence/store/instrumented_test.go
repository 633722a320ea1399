package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollectionLabel(t *testing.T) {
	assert.Equal(t, "towns", CollectionLabel("towns"))
	assert.Equal(t, "users/*/favorites", CollectionLabel("users/abc123/favorites"))
}

func TestQueryBuildersDoNotAlias(t *testing.T) {
	base := Query{}.Where("isActive", true)
	byName := base.Order("name", Asc)
	byDept := base.Where("department", "Huila")

	assert.Len(t, base.Filters, 1)
	assert.Empty(t, base.OrderBy)
	assert.Len(t, byName.Filters, 1)
	assert.Len(t, byDept.Filters, 2)
	assert.Equal(t, 5, byName.Take(5).Limit)
}
