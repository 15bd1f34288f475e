package listctl

import (
	"fmt"
	"sync"

	"github.com/dugoutlabs/diamond/pkg/utils"
)

// Every entity page in the app is the same machine: filters plus pagination
// plus a per-page selection set plus a bulk action. This package implements
// that machine once; the per-entity pages differ only in their field schemas.

// Result is one fetched page of items.
type Result[T any] struct {
	Items      []T
	Pagination utils.PaginationData
}

// Fetcher loads one page of items for the given filters.
type Fetcher[T any] func(filters map[string]string, page, limit int) (Result[T], error)

// Deleter removes the given ids in a single backend call. It returns the
// count the backend reported, or nil when the backend omitted it.
type Deleter func(ids []uint) (*int64, error)

// Controller drives a filtered, paginated list with row selection.
type Controller[T any] struct {
	mu         sync.Mutex
	idOf       func(T) uint
	fetch      Fetcher[T]
	delete     Deleter
	filters    map[string]string
	page       int
	limit      int
	items      []T
	pagination utils.PaginationData
	selected   map[uint]bool
	fetchErr   error
	seq        uint64 // request token; only the latest fetch may apply its result
}

// New creates a list controller. idOf extracts an item's id for selection
// bookkeeping.
func New[T any](idOf func(T) uint, fetch Fetcher[T], del Deleter) *Controller[T] {
	return &Controller[T]{
		idOf:     idOf,
		fetch:    fetch,
		delete:   del,
		filters:  make(map[string]string),
		page:     1,
		limit:    10,
		selected: make(map[uint]bool),
	}
}

// SetFilter updates one filter value, resets to page 1, and clears the
// selection, since selected rows may no longer be visible under the new filter.
func (c *Controller[T]) SetFilter(key, value string) {
	c.mu.Lock()
	if value == "" {
		delete(c.filters, key)
	} else {
		c.filters[key] = value
	}
	c.page = 1
	c.selected = make(map[uint]bool)
	c.mu.Unlock()
}

// SetPage moves to the given page without touching filters or selection.
func (c *Controller[T]) SetPage(page int) {
	c.mu.Lock()
	if page < 1 {
		page = 1
	}
	c.page = page
	c.mu.Unlock()
}

// SetLimit changes the page size and resets to page 1.
func (c *Controller[T]) SetLimit(limit int) {
	c.mu.Lock()
	if limit < 1 {
		limit = 10
	}
	c.limit = limit
	c.page = 1
	c.mu.Unlock()
}

// Refresh fetches the current page. When fetches race, the most recently
// issued request wins: a stale response is dropped instead of overwriting a
// newer one. A failed fetch records the error but keeps already-loaded items.
func (c *Controller[T]) Refresh() error {
	c.mu.Lock()
	c.seq++
	tok := c.seq
	filters := make(map[string]string, len(c.filters))
	for k, v := range c.filters {
		filters[k] = v
	}
	page, limit := c.page, c.limit
	fetch := c.fetch
	c.mu.Unlock()

	res, err := fetch(filters, page, limit)

	c.mu.Lock()
	defer c.mu.Unlock()
	if tok != c.seq {
		return nil // a newer request is in flight or already landed
	}
	if err != nil {
		c.fetchErr = err
		return err
	}
	c.items = res.Items
	c.pagination = res.Pagination
	c.fetchErr = nil
	return nil
}

// Items returns the currently loaded page.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Pagination returns the metadata of the last successful fetch.
func (c *Controller[T]) Pagination() utils.PaginationData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pagination
}

// Err returns the error from the last fetch, if it failed.
func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchErr
}

// ToggleSelectOne adds the id to the selection, or removes it if present.
func (c *Controller[T]) ToggleSelectOne(id uint) {
	c.mu.Lock()
	if c.selected[id] {
		delete(c.selected, id)
	} else {
		c.selected[id] = true
	}
	c.mu.Unlock()
}

// ToggleSelectAll selects every row on the current page, or clears the
// selection when every current row is already selected. Selection never spans
// pages.
func (c *Controller[T]) ToggleSelectAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	all := len(c.items) > 0
	for _, item := range c.items {
		if !c.selected[c.idOf(item)] {
			all = false
			break
		}
	}
	c.selected = make(map[uint]bool)
	if !all {
		for _, item := range c.items {
			c.selected[c.idOf(item)] = true
		}
	}
}

// SelectedIDs returns the currently selected ids.
func (c *Controller[T]) SelectedIDs() []uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]uint, 0, len(c.selected))
	for id := range c.selected {
		out = append(out, id)
	}
	return out
}

// BulkDelete removes the selected rows in one call, clears the selection, and
// refreshes the list. The reported count comes from the backend when present;
// otherwise the number of selected ids is used as an estimate, which can
// overstate success if some rows were already gone.
func (c *Controller[T]) BulkDelete() (string, error) {
	c.mu.Lock()
	ids := make([]uint, 0, len(c.selected))
	for id := range c.selected {
		ids = append(ids, id)
	}
	del := c.delete
	c.mu.Unlock()

	if len(ids) == 0 {
		return "", nil
	}

	reported, err := del(ids)
	if err != nil {
		return "", err
	}

	count := int64(len(ids))
	if reported != nil {
		count = *reported
	}

	c.mu.Lock()
	c.selected = make(map[uint]bool)
	c.mu.Unlock()

	if err := c.Refresh(); err != nil {
		return "", err
	}
	return fmt.Sprintf("Successfully deleted %d items", count), nil
}

// PageWindow returns the page-number controls to render: at most 5 pages,
// always starting from page 1 regardless of the current page.
func (c *Controller[T]) PageWindow() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return PageWindow(c.pagination.Pages)
}

// PageWindow returns up to the first 5 page numbers.
func PageWindow(pages int64) []int {
	n := pages
	if n > 5 {
		n = 5
	}
	out := make([]int, 0, n)
	for i := int64(1); i <= n; i++ {
		out = append(out, int(i))
	}
	return out
}
