// Package listquery turns a raw record collection into a rendered-ready view:
// filtered, sorted, with summary aggregates. The same engine backs the
// employee, attendance and task list screens; each supplies a Schema with
// accessor functions for its record type.
package listquery

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Wildcard is the criteria value meaning "no constraint for this key".
// An empty value and an absent key mean the same thing.
const Wildcard = "all"

// SearchKey is the criteria key carrying the free-text search query.
const SearchKey = "search"

// Criteria maps filter keys to selected values.
type Criteria map[string]string

// Active returns the constraint for key, and whether it is binding.
func (c Criteria) Active(key string) (string, bool) {
	v, ok := c[key]
	if !ok || v == "" || v == Wildcard {
		return "", false
	}
	return v, true
}

// Schema describes how the engine reads a record type. Every record must
// expose a unique, stable identifier. Fields accessors return ok=false when
// the field is absent on the record; absent fields never match a binding
// equality filter.
type Schema[T any] struct {
	ID     func(T) string
	Fields map[string]func(T) (string, bool)
	Search []func(T) string
	Sort   map[string]func(T) any
	Status func(T) string
}

// ApplyFilters returns the records passing every binding criterion.
// Equality filters compare case-sensitively; the search filter matches a
// case-insensitive substring against any of the schema's searchable fields.
// The input slice is never mutated.
func ApplyFilters[T any](records []T, schema Schema[T], criteria Criteria) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if matches(rec, schema, criteria) {
			out = append(out, rec)
		}
	}
	return out
}

func matches[T any](rec T, schema Schema[T], criteria Criteria) bool {
	for key := range criteria {
		want, binding := criteria.Active(key)
		if !binding {
			continue
		}

		if key == SearchKey {
			if !matchesSearch(rec, schema, want) {
				return false
			}
			continue
		}

		accessor, ok := schema.Fields[key]
		if !ok {
			return false
		}
		got, present := accessor(rec)
		if !present || got != want {
			return false
		}
	}
	return true
}

func matchesSearch[T any](rec T, schema Schema[T], query string) bool {
	q := strings.ToLower(query)
	for _, accessor := range schema.Search {
		if strings.Contains(strings.ToLower(accessor(rec)), q) {
			return true
		}
	}
	return false
}

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// SortSpec is a sort field plus a direction. Only one sort key is active at
// a time.
type SortSpec struct {
	Field     string
	Direction Direction
}

// NextSort returns the spec produced by choosing field while current is
// active: the same field toggles direction, a different field resets to
// ascending.
func NextSort(current SortSpec, field string) SortSpec {
	if current.Field == field && current.Direction == Ascending {
		return SortSpec{Field: field, Direction: Descending}
	}
	return SortSpec{Field: field, Direction: Ascending}
}

// ApplySort returns a sorted copy of records. The sort is stable: records
// with equal keys keep their relative input order. An empty or unknown sort
// field leaves the order unchanged.
func ApplySort[T any](records []T, schema Schema[T], spec SortSpec) []T {
	out := make([]T, len(records))
	copy(out, records)

	if spec.Field == "" {
		return out
	}
	accessor, ok := schema.Sort[spec.Field]
	if !ok {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareValues(accessor(out[i]), accessor(out[j]))
		if spec.Direction == Descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// compareValues orders two accessor results: date-like strings compare as
// dates, other string pairs case-insensitively, numbers numerically, and
// anything else by its printed form.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}

	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}

	as, aStr := a.(string)
	bs, bStr := b.(string)
	if aStr && bStr {
		if ad, ok := parseDateLike(as); ok {
			if bd, ok := parseDateLike(bs); ok {
				return ad.Compare(bd)
			}
		}
		return strings.Compare(strings.ToLower(as), strings.ToLower(bs))
	}

	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			switch {
			case af < bf:
				return -1
			case af > bf:
				return 1
			default:
				return 0
			}
		}
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func parseDateLike(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Aggregates summarizes a collection for the dashboard widgets.
type Aggregates struct {
	Total    int
	ByStatus map[string]int
}

// Rate returns the share of records with the given status, in [0, 1].
// An empty collection yields 0, never a division error.
func (a Aggregates) Rate(status string) float64 {
	if a.Total == 0 {
		return 0
	}
	return float64(a.ByStatus[status]) / float64(a.Total)
}

// ComputeAggregates counts records per status value.
func ComputeAggregates[T any](records []T, schema Schema[T]) Aggregates {
	agg := Aggregates{Total: len(records), ByStatus: make(map[string]int)}
	if schema.Status == nil {
		return agg
	}
	for _, rec := range records {
		agg.ByStatus[schema.Status(rec)]++
	}
	return agg
}

// Result is the output of Query: the derived view plus its aggregates.
// Aggregates cover the filtered view, so the rendered counters match the
// rows on screen.
type Result[T any] struct {
	View       []T
	Aggregates Aggregates
}

// Query runs the full pipeline: filter, sort, aggregate. It is pure; calling
// it again with the same inputs yields the same result.
func Query[T any](records []T, schema Schema[T], criteria Criteria, spec SortSpec) Result[T] {
	view := ApplySort(ApplyFilters(records, schema, criteria), schema, spec)
	return Result[T]{
		View:       view,
		Aggregates: ComputeAggregates(view, schema),
	}
}
