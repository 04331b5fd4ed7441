package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/supabase-community/postgrest-go"
)

// Query records a PostgREST request. Build one per call with Client.From;
// Execute replays it through postgrest-go.
type Query struct {
	client  *Client
	table   string
	method  string
	columns string
	filters []filter
	orders  []order
	limit   int
	single  bool
	body    any
}

type filter struct {
	column, operator, value string
}

type order struct {
	column    string
	ascending bool
}

// From starts a query against table.
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table, method: http.MethodGet}
}

// Select sets the returned columns. Writes return the same column list.
func (q *Query) Select(columns string) *Query {
	q.columns = columns
	return q
}

// Eq filters rows where column equals value. PostgREST takes one filter per
// column per request.
func (q *Query) Eq(column, value string) *Query {
	q.filters = append(q.filters, filter{column: column, operator: "eq", value: value})
	return q
}

// Order sorts by column. Multiple calls append sort keys.
func (q *Query) Order(column string, ascending bool) *Query {
	q.orders = append(q.orders, order{column: column, ascending: ascending})
	return q
}

// Limit caps the number of rows.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

// Single expects exactly one row and decodes it as an object.
func (q *Query) Single() *Query {
	q.single = true
	return q
}

// Insert posts row (or a slice of rows) and returns the representation.
func (q *Query) Insert(row any) *Query {
	q.method = http.MethodPost
	q.body = row
	return q
}

// Update patches matching rows and returns the representation.
func (q *Query) Update(patch any) *Query {
	q.method = http.MethodPatch
	q.body = patch
	return q
}

// Delete removes matching rows.
func (q *Query) Delete() *Query {
	q.method = http.MethodDelete
	return q
}

// Execute runs the query with the caller's session and decodes into out.
func (q *Query) Execute(ctx context.Context, out any) error {
	if q.method != http.MethodGet && q.method != http.MethodPost && len(q.filters) == 0 {
		return fmt.Errorf("supabase: refusing %s on %s without a filter", q.method, q.table)
	}

	var payload json.RawMessage
	if q.body != nil {
		b, err := json.Marshal(q.body)
		if err != nil {
			return fmt.Errorf("supabase: failed to marshal request: %w", err)
		}
		payload = b
	}

	ctx, cancel := context.WithTimeout(ctx, q.client.cfg.Timeout)
	defer cancel()

	return q.client.withRefresh(ctx, func(x *exchange, token string) error {
		raw, _, err := q.build(q.client.rest(x, token), payload).Execute()
		if err != nil {
			return x.wrap(q.method+" "+q.table, err)
		}
		if out == nil || len(bytes.TrimSpace(raw)) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("supabase: failed to decode response: %w", err)
		}
		return nil
	})
}

func (q *Query) build(pc *postgrest.Client, payload json.RawMessage) *postgrest.FilterBuilder {
	qb := pc.From(q.table)
	columns := q.columns
	if columns == "" {
		columns = "*"
	}

	// Select records the column list on the shared builder; a write below
	// then replaces the method and keeps it.
	fb := qb.Select(columns, "", false)
	switch q.method {
	case http.MethodPost:
		fb = qb.Insert(payload, false, "", "representation", "")
	case http.MethodPatch:
		fb = qb.Update(payload, "representation", "")
	case http.MethodDelete:
		fb = qb.Delete("minimal", "")
	}

	for _, f := range q.filters {
		fb = fb.Filter(f.column, f.operator, f.value)
	}
	for _, o := range q.orders {
		fb = fb.Order(o.column, &postgrest.OrderOpts{Ascending: o.ascending})
	}
	if q.limit > 0 {
		fb = fb.Limit(q.limit, "")
	}
	if q.single {
		fb = fb.Single()
	}
	return fb
}
