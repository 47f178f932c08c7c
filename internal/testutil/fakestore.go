// Package testutil provides a minimal in-memory PostgREST stand-in so tests
// exercise the real store client over HTTP.
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
)

type failure struct {
	method string
	table  string
	status int
	body   string
}

type FakeStore struct {
	mu       sync.Mutex
	tables   map[string][]map[string]interface{}
	failures []failure

	Server *httptest.Server
}

func NewFakeStore() *FakeStore {
	f := &FakeStore{tables: make(map[string][]map[string]interface{})}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	return f
}

func (f *FakeStore) Close() { f.Server.Close() }

func (f *FakeStore) URL() string { return f.Server.URL }

// Rows returns a copy of the table's rows in insertion order.
func (f *FakeStore) Rows(table string) []map[string]interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	rows := make([]map[string]interface{}, len(f.tables[table]))
	copy(rows, f.tables[table])
	return rows
}

// Seed inserts a row directly, bypassing HTTP.
func (f *FakeStore) Seed(table string, row map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tables[table] = append(f.tables[table], row)
}

// FailNext makes the next matching request fail with the given status/body.
func (f *FakeStore) FailNext(method, table string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures = append(f.failures, failure{method: method, table: table, status: status, body: body})
}

func (f *FakeStore) handle(w http.ResponseWriter, r *http.Request) {
	table := strings.TrimPrefix(r.URL.Path, "/rest/v1/")
	if table == r.URL.Path || strings.Contains(table, "/") {
		http.Error(w, `{"message":"unknown route"}`, http.StatusNotFound)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, fail := range f.failures {
		if fail.method == r.Method && fail.table == table {
			f.failures = append(f.failures[:i], f.failures[i+1:]...)
			w.WriteHeader(fail.status)
			w.Write([]byte(fail.body))
			return
		}
	}

	switch r.Method {
	case http.MethodGet:
		f.handleGet(w, r, table)
	case http.MethodPost:
		var row map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
			http.Error(w, `{"message":"invalid body"}`, http.StatusBadRequest)
			return
		}
		f.tables[table] = append(f.tables[table], row)
		w.WriteHeader(http.StatusCreated)
	case http.MethodPatch:
		var fields map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			http.Error(w, `{"message":"invalid body"}`, http.StatusBadRequest)
			return
		}
		for _, row := range f.tables[table] {
			if matches(row, r.URL.Query()) {
				for k, v := range fields {
					row[k] = v
				}
			}
		}
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *FakeStore) handleGet(w http.ResponseWriter, r *http.Request, table string) {
	query := r.URL.Query()

	var result []map[string]interface{}
	for _, row := range f.tables[table] {
		if matches(row, query) {
			result = append(result, row)
		}
	}

	if order := query.Get("order"); order != "" {
		col := strings.TrimSuffix(order, ".desc")
		desc := strings.HasSuffix(order, ".desc")
		sort.SliceStable(result, func(i, j int) bool {
			a, _ := result[i][col].(float64)
			b, _ := result[j][col].(float64)
			if desc {
				return a > b
			}
			return a < b
		})
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit < len(result) {
			result = result[:limit]
		}
	}

	if sel := query.Get("select"); sel != "" {
		cols := strings.Split(sel, ",")
		projected := make([]map[string]interface{}, len(result))
		for i, row := range result {
			p := make(map[string]interface{}, len(cols))
			for _, col := range cols {
				if v, ok := row[col]; ok {
					p[col] = v
				}
			}
			projected[i] = p
		}
		result = projected
	}

	if result == nil {
		result = []map[string]interface{}{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// matches applies PostgREST eq. filters; select/order/limit are not filters.
func matches(row map[string]interface{}, query map[string][]string) bool {
	for key, values := range query {
		if key == "select" || key == "order" || key == "limit" {
			continue
		}
		if len(values) == 0 || !strings.HasPrefix(values[0], "eq.") {
			continue
		}
		want := strings.TrimPrefix(values[0], "eq.")
		got, ok := row[key]
		if !ok {
			return false
		}
		switch v := got.(type) {
		case string:
			if v != want {
				return false
			}
		case float64:
			if strconv.FormatFloat(v, 'f', -1, 64) != want {
				return false
			}
		case bool:
			if strconv.FormatBool(v) != want {
				return false
			}
		default:
			return false
		}
	}
	return true
}
