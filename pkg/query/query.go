// Package query turns declarative list parameters (pagination, sort,
// equality/range filters, substring search) into a safe GORM scope.
//
// Field access is allow-listed per resource: every sortable column, every
// filterable column and every searchable column is declared up front in a
// Schema, and only declared names ever reach SQL. A sort on an undeclared
// field silently falls back to the store's natural order; a filter on an
// undeclared field is rejected with apperr.Invalid. Values always travel
// as placeholders, never as SQL text.
package query

import (
	"strings"

	"github.com/shashiranjanraj/vitrine/pkg/apperr"
	"gorm.io/gorm"
)

const (
	// DefaultLimit is applied when the caller supplies no limit.
	DefaultLimit = 10
	// MaxLimit caps any requested page size.
	MaxLimit = 100
)

// Op is a filter comparison operator.
type Op string

const (
	OpEq  Op = "="
	OpGte Op = ">="
	OpLte Op = "<="
)

// Filter is one field comparison, ANDed with all other filters.
type Filter struct {
	Field string
	Op    Op
	Value interface{}
}

// Params are the declarative inputs of one list request.
type Params struct {
	Skip      int
	Limit     int
	SortBy    string
	SortOrder string // "asc" | "desc"; anything else falls back to asc
	Search    string
	Filters   []Filter
}

// Window returns the sanitized (skip, limit) pair: negative skip becomes 0,
// a missing or non-positive limit becomes DefaultLimit, and anything above
// MaxLimit is capped.
func (p Params) Window() (skip, limit int) {
	skip = p.Skip
	if skip < 0 {
		skip = 0
	}

	limit = p.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return skip, limit
}

// Schema is a resource's field allow-list. Map keys are the request-facing
// field names, values are the database column names. Searchable lists the
// columns the free-text search ORs across.
type Schema struct {
	Sortable   map[string]string
	Filterable map[string]string
	Searchable []string
}

// Scope validates p against the schema and returns a GORM scope applying
// filters, search and ordering. Pagination is left to the caller (via
// Params.Window) so the filtered set can be counted first.
func (s Schema) Scope(p Params) (func(*gorm.DB) *gorm.DB, error) {
	// Validate before anything touches the store.
	for _, f := range p.Filters {
		if _, ok := s.Filterable[f.Field]; !ok {
			return nil, apperr.Invalid("unknown filter field %q", f.Field)
		}
		switch f.Op {
		case OpEq, OpGte, OpLte:
		default:
			return nil, apperr.Invalid("unsupported filter operator %q", string(f.Op))
		}
	}

	orderClause := s.orderClause(p)
	filters := p.Filters
	search := strings.TrimSpace(p.Search)

	return func(db *gorm.DB) *gorm.DB {
		for _, f := range filters {
			column := s.Filterable[f.Field]
			db = db.Where(column+" "+string(f.Op)+" ?", f.Value)
		}

		if search != "" && len(s.Searchable) > 0 {
			clauses := make([]string, len(s.Searchable))
			args := make([]interface{}, len(s.Searchable))
			for i, column := range s.Searchable {
				clauses[i] = column + " LIKE ?"
				args[i] = "%" + search + "%"
			}
			db = db.Where("("+strings.Join(clauses, " OR ")+")", args...)
		}

		if orderClause != "" {
			db = db.Order(orderClause)
		}

		return db
	}, nil
}

// orderClause resolves the sort request against the allow-list. An
// undeclared sort field yields "" (natural order); an unknown direction
// falls back to ascending.
func (s Schema) orderClause(p Params) string {
	if p.SortBy == "" {
		return ""
	}

	column, ok := s.Sortable[p.SortBy]
	if !ok {
		return ""
	}

	direction := "ASC"
	if strings.EqualFold(p.SortOrder, "desc") {
		direction = "DESC"
	}
	return column + " " + direction
}
