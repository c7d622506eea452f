package models

import "fmt"

// SortKey selects the field the history is ordered by.
type SortKey string

const (
	SortByTime   SortKey = "time"
	SortBySource SortKey = "source"
)

// Direction is the ordering direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Default paging values.
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Sort is one of the mutually exclusive orderings of the history.
type Sort struct {
	Key       SortKey
	Direction Direction
}

// DefaultSort is newest first.
var DefaultSort = Sort{Key: SortByTime, Direction: Desc}

// Param is the sortBy query value the API expects.
func (s Sort) Param() string {
	if s.Key == SortBySource {
		return "source_" + string(s.Direction)
	}
	return string(s.Direction)
}

func (s Sort) String() string {
	return fmt.Sprintf("%s %s", s.Key, s.Direction)
}

// ParseSort reads a Sort from a key and a direction ("time desc").
func ParseSort(key, dir string) (Sort, error) {
	s := Sort{Key: SortKey(key), Direction: Direction(dir)}
	if s.Key != SortByTime && s.Key != SortBySource {
		return Sort{}, fmt.Errorf("unknown sort key %q", key)
	}
	if s.Direction != Asc && s.Direction != Desc {
		return Sort{}, fmt.Errorf("unknown sort direction %q", dir)
	}
	return s, nil
}

// ParseSortParam is the inverse of Sort.Param. Unknown values map to
// DefaultSort, like the API does.
func ParseSortParam(p string) Sort {
	switch p {
	case "asc":
		return Sort{Key: SortByTime, Direction: Asc}
	case "source_asc":
		return Sort{Key: SortBySource, Direction: Asc}
	case "source_desc":
		return Sort{Key: SortBySource, Direction: Desc}
	default:
		return DefaultSort
	}
}

// ListQuery is the paging state of the history view. Values are immutable;
// every change returns a new query.
type ListQuery struct {
	Page  int
	Limit int
	Sort  Sort
}

// DefaultListQuery is the first page, newest first.
func DefaultListQuery() ListQuery {
	return ListQuery{Page: 1, Limit: DefaultLimit, Sort: DefaultSort}
}

// Normalize clamps out of range values to usable ones.
func (q ListQuery) Normalize() ListQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if _, err := ParseSort(string(q.Sort.Key), string(q.Sort.Direction)); err != nil {
		q.Sort = DefaultSort
	}
	return q
}

// WithLimit changes the page size and goes back to page 1.
func (q ListQuery) WithLimit(limit int) ListQuery {
	if limit == q.Limit {
		return q
	}
	q.Limit = limit
	q.Page = 1
	return q.Normalize()
}

// WithSort switches ordering and goes back to page 1. Orderings are mutually
// exclusive: picking a source order drops the time order and vice versa.
func (q ListQuery) WithSort(s Sort) ListQuery {
	if s == q.Sort {
		return q
	}
	q.Sort = s
	q.Page = 1
	return q.Normalize()
}

// Next moves one page forward.
func (q ListQuery) Next() ListQuery {
	q.Page++
	return q
}

// Prev moves one page back, never before page 1.
func (q ListQuery) Prev() ListQuery {
	if q.Page > 1 {
		q.Page--
	}
	return q
}
