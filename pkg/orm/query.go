// Package orm is a thin chainable facade over the process-wide GORM pool.
// Repositories go through it instead of touching database.DB directly, which
// keeps query-duration metrics in one place.
package orm

import (
	"time"

	"github.com/shashiranjanraj/vitrine/pkg/database"
	"github.com/shashiranjanraj/vitrine/pkg/metrics"
	"gorm.io/gorm"
)

// Pagination describes the window a list query returned.
type Pagination struct {
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

type Query struct {
	db *gorm.DB
}

// DB starts a query chain on the shared pool.
func DB() *Query {
	return &Query{db: database.DB}
}

// Wrap starts a chain on an explicit handle (used by tests and migrations).
func Wrap(db *gorm.DB) *Query {
	return &Query{db: db}
}

// Gorm exposes the underlying handle for operations the facade doesn't cover.
func (q *Query) Gorm() *gorm.DB { return q.db }

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(value interface{}) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Offset(n int) *Query {
	return &Query{db: q.db.Offset(n)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

// Scope applies a func(*gorm.DB) *gorm.DB transformation (e.g. the output
// of pkg/query) to the chain.
func (q *Query) Scope(fn func(*gorm.DB) *gorm.DB) *Query {
	return &Query{db: fn(q.db)}
}

// Get runs the chain and loads all matching rows into dest.
func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

// First loads the first matching row. Returns gorm.ErrRecordNotFound when
// nothing matches; callers translate that at the repository boundary.
func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

func (q *Query) Count(out *int64) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Count(out).Error
}

// Distinct loads the sorted distinct values of one column into dest (a *[]T).
func (q *Query) Distinct(column string, dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Distinct(column).Order(column).Pluck(column, dest).Error
}

func (q *Query) Create(value interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(value).Error
}

func (q *Query) Save(value interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Save(value).Error
}

// Updates applies a column→value map to the rows selected by the chain.
// Only the supplied columns change.
func (q *Query) Updates(values map[string]interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Updates(values).Error
}

func (q *Query) Delete(value interface{}) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return q.db.Delete(value).Error
}

// GetWithWindow counts the rows the chain matches, then loads the
// [skip, skip+limit) window into dest. Count runs before offset/limit so the
// pagination total reflects the whole filtered set. Each statement runs in
// its own session; a finished *gorm.DB must not be reused.
func (q *Query) GetWithWindow(dest interface{}, skip, limit int) (Pagination, error) {
	p := Pagination{Skip: skip, Limit: limit}

	counter := Wrap(q.db.Session(&gorm.Session{}))
	if err := counter.Count(&p.Total); err != nil {
		return p, err
	}

	fetcher := Wrap(q.db.Session(&gorm.Session{}))
	err := fetcher.Offset(skip).Limit(limit).Get(dest)
	return p, err
}
