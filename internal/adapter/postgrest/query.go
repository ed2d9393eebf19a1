package postgrest

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Query is a filtered read or write target on one table of the data API.
type Query struct {
	table  string
	params url.Values
	order  []string
}

// From starts a query on table.
func From(table string) *Query {
	return &Query{table: table, params: url.Values{}}
}

// Table returns the queried table.
func (q *Query) Table() string { return q.table }

// Select sets the returned columns, including embedded relations.
func (q *Query) Select(columns string) *Query {
	q.params.Set("select", columns)
	return q
}

func (q *Query) filter(column, op string, value any) *Query {
	q.params.Add(column, op+"."+formatValue(value))
	return q
}

func (q *Query) Eq(column string, value any) *Query  { return q.filter(column, "eq", value) }
func (q *Query) Neq(column string, value any) *Query { return q.filter(column, "neq", value) }
func (q *Query) Gt(column string, value any) *Query  { return q.filter(column, "gt", value) }
func (q *Query) Gte(column string, value any) *Query { return q.filter(column, "gte", value) }
func (q *Query) Lt(column string, value any) *Query  { return q.filter(column, "lt", value) }
func (q *Query) Lte(column string, value any) *Query { return q.filter(column, "lte", value) }

// Ilike filters with a case-insensitive pattern; * is the wildcard.
func (q *Query) Ilike(column, pattern string) *Query {
	return q.filter(column, "ilike", pattern)
}

// Is filters on null, true or false.
func (q *Query) Is(column string, value string) *Query {
	return q.filter(column, "is", value)
}

// In filters column on a set of values.
func In[T any](q *Query, column string, values []T) *Query {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, quote(formatValue(v)))
	}
	q.params.Add(column, "in.("+strings.Join(parts, ",")+")")
	return q
}

// Order appends an ordering term.
func (q *Query) Order(column string, ascending bool) *Query {
	dir := "desc"
	if ascending {
		dir = "asc"
	}
	q.order = append(q.order, column+"."+dir)
	return q
}

func (q *Query) Limit(n int) *Query {
	q.params.Set("limit", strconv.Itoa(n))
	return q
}

func (q *Query) Offset(n int) *Query {
	q.params.Set("offset", strconv.Itoa(n))
	return q
}

// OnConflict names the columns an upsert resolves on.
func (q *Query) OnConflict(columns string) *Query {
	q.params.Set("on_conflict", columns)
	return q
}

// Values returns the encoded query parameters.
func (q *Query) Values() url.Values {
	out := make(url.Values, len(q.params)+1)
	for k, v := range q.params {
		out[k] = append([]string(nil), v...)
	}
	if len(q.order) > 0 {
		out.Set("order", strings.Join(q.order, ","))
	}
	return out
}

func (q *Query) path() string {
	return "/rest/v1/" + q.table
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case time.Time:
		return x.UTC().Format(time.RFC3339Nano)
	case fmt.Stringer:
		return x.String()
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	}
	return fmt.Sprint(v)
}

// quote wraps values that contain list syntax characters in double quotes.
func quote(s string) string {
	if !strings.ContainsAny(s, `,()". `) {
		return s
	}
	return `"` + strings.ReplaceAll(strings.ReplaceAll(s, `\`, `\\`), `"`, `\"`) + `"`
}
