// Package listview implements the in-memory list controller behind the
// directory and feed pages: filter, sort and paginate a fetched slice
// without another server round-trip.
package listview

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// PageSize is the fixed number of rows per page.
const PageSize = 5

// State of the controller's fetch cycle.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	LoadFailed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case LoadFailed:
		return "load_failed"
	default:
		return "unknown"
	}
}

// Fetcher loads the full row set from the server.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// Field extracts a searchable, sortable string from a row.
type Field[T any] func(row T) string

// Controller holds one page-worth of derived view over a fetched list. All
// methods are safe for concurrent use.
type Controller[T any] struct {
	mu     sync.Mutex
	fetch  Fetcher[T]
	fields map[string]Field[T]

	state State
	err   error
	items []T

	search    string
	sortField string
	ascending bool
	page      int
}

// New creates a controller. fields maps field names to extractors; every
// registered field participates in the substring filter and is available as
// a sort key.
func New[T any](fetch Fetcher[T], fields map[string]Field[T]) *Controller[T] {
	return &Controller[T]{
		fetch:     fetch,
		fields:    fields,
		state:     Idle,
		ascending: true,
		page:      1,
	}
}

// Load fetches the row set. On failure the previous rows are kept so the
// page does not blank out.
func (c *Controller[T]) Load(ctx context.Context) error {
	c.mu.Lock()
	c.state = Loading
	c.mu.Unlock()

	items, err := c.fetch(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.state = LoadFailed
		c.err = err
		return err
	}
	c.state = Loaded
	c.err = nil
	c.items = items
	return nil
}

// State reports the fetch state.
func (c *Controller[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Err returns the last fetch error, if any.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// SetSearch updates the filter term and resets to the first page.
func (c *Controller[T]) SetSearch(term string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.search = term
	c.page = 1
}

// SetSort chooses the sort field and direction. Unknown fields clear the
// sort and leave the fetched order.
func (c *Controller[T]) SetSort(field string, ascending bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.fields[field]; !ok {
		c.sortField = ""
		return
	}
	c.sortField = field
	c.ascending = ascending
}

// Page reports the current page number.
func (c *Controller[T]) Page() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.page
}

// PageCount reports the number of pages for the current filter, at least 1.
func (c *Controller[T]) PageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pageCountLocked()
}

func (c *Controller[T]) pageCountLocked() int {
	n := len(c.filteredLocked())
	if n == 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// JumpTo moves to the page named by a raw input string. Only digit input is
// accepted; anything out of range leaves the page unchanged and returns a
// bounds message.
func (c *Controller[T]) JumpTo(input string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	max := c.pageCountLocked()
	n, ok := parseDigits(input)
	if !ok || n < 1 || n > max {
		return fmt.Errorf("please enter a valid page number between 1 and %d", max)
	}
	c.page = n
	return nil
}

// Next advances one page, clamped to the last.
func (c *Controller[T]) Next() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page < c.pageCountLocked() {
		c.page++
	}
}

// Prev steps back one page, clamped to the first.
func (c *Controller[T]) Prev() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.page > 1 {
		c.page--
	}
}

// View returns the rows of the current page after filter and sort.
func (c *Controller[T]) View() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := c.filteredLocked()
	c.sortLocked(rows)

	page := c.page
	if max := len(rows); max > 0 {
		last := (max + PageSize - 1) / PageSize
		if page > last {
			page = last
		}
	} else {
		return nil
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// All returns the full filtered and sorted row set.
func (c *Controller[T]) All() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	rows := c.filteredLocked()
	c.sortLocked(rows)
	return rows
}

// Mutate applies an optimistic edit to the in-memory rows, then re-fetches
// to reconcile with the server.
func (c *Controller[T]) Mutate(ctx context.Context, edit func(items []T) []T) error {
	c.mu.Lock()
	c.items = edit(c.items)
	c.mu.Unlock()
	return c.Load(ctx)
}

func (c *Controller[T]) filteredLocked() []T {
	if c.search == "" {
		out := make([]T, len(c.items))
		copy(out, c.items)
		return out
	}

	term := strings.ToLower(c.search)
	var out []T
	for _, row := range c.items {
		for _, f := range c.fields {
			if strings.Contains(strings.ToLower(f(row)), term) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

func (c *Controller[T]) sortLocked(rows []T) {
	if c.sortField == "" {
		return
	}
	f := c.fields[c.sortField]
	asc := c.ascending
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := strings.ToLower(f(rows[i])), strings.ToLower(f(rows[j]))
		if asc {
			return a < b
		}
		return a > b
	})
}

// parseDigits accepts only an all-digit string and returns its value.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
		if n > 1<<30 {
			return 0, false
		}
	}
	return n, true
}
