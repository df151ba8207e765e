package query

import (
	"net/url"
	"strconv"
)

// ParseValues reads the shared list parameters (skip, limit, sort_by,
// sort_order, search) out of a query string. Resource-specific filters are
// appended by the controller, which knows their names and types.
// Malformed numbers fall back to the defaults rather than erroring, matching
// lenient query-string handling elsewhere in the API.
func ParseValues(vals url.Values) Params {
	return Params{
		Skip:      atoiDefault(vals.Get("skip"), 0),
		Limit:     atoiDefault(vals.Get("limit"), DefaultLimit),
		SortBy:    vals.Get("sort_by"),
		SortOrder: vals.Get("sort_order"),
		Search:    vals.Get("search"),
	}
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
