package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefaults(t *testing.T) {
	q := ListQuery{}
	q.Normalize(20)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 20, q.Limit)
	assert.Equal(t, 0, q.Offset())

	q = ListQuery{Page: -3, Limit: -1}
	q.Normalize(50)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 50, q.Limit)
}

func TestOffset(t *testing.T) {
	q := ListQuery{Page: 3, Limit: 10}
	assert.Equal(t, 20, q.Offset())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.Pages)

	// Exact multiple.
	p = NewPagination(1, 10, 30)
	assert.Equal(t, 3, p.Pages)

	// Empty collection.
	p = NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.Pages)
}

func TestOrderClauseWhitelist(t *testing.T) {
	allowed := map[string]string{"name": "name", "created_at": "created_at"}

	assert.Equal(t, "name ASC", orderClause("name", "asc", allowed, "created_at DESC"))
	assert.Equal(t, "name DESC", orderClause("name", "desc", allowed, "created_at DESC"))

	// Unknown column falls back, direction still applies.
	assert.Equal(t, "created_at DESC", orderClause("evil; DROP TABLE", "desc", allowed, "created_at"))
	assert.Equal(t, "created_at ASC", orderClause("", "asc", allowed, "created_at"))
}

func TestSearchPattern(t *testing.T) {
	assert.Equal(t, "%widget%", searchPattern("Widget"))
	assert.Equal(t, "%%", searchPattern(""))
}
