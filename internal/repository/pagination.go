package repository

import (
	"fmt"
	"math"
	"strings"
)

// ListQuery carries the common listing parameters: pagination, free-text
// search and sorting.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
}

// Normalize applies defaults and floors so offset math never goes negative.
func (q *ListQuery) Normalize(defaultLimit int) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
}

// Offset converts page/limit into a row offset.
func (q *ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Pagination is the listing metadata returned with every collection.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes pagination metadata with pages = ceil(total/limit).
func NewPagination(page, limit int, total int64) Pagination {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	return Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: int(math.Ceil(float64(total) / float64(limit))),
	}
}

// orderClause builds a safe ORDER BY from client input. sortBy must appear in
// the allowed column map; anything else falls back.
func orderClause(sortBy, sortOrder string, allowed map[string]string, fallback string) string {
	column, ok := allowed[sortBy]
	if !ok {
		column = fallback
	}
	direction := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		direction = "ASC"
	}
	return fmt.Sprintf("%s %s", column, direction)
}

// searchPattern builds a case-insensitive LIKE pattern. Queries pair it with
// LOWER(column) LIKE ? so behavior matches on Postgres and SQLite alike.
func searchPattern(search string) string {
	return "%" + strings.ToLower(search) + "%"
}
