package listctl

import (
	"errors"
	"reflect"
	"sort"
	"sync"
	"testing"

	"github.com/dugoutlabs/diamond/pkg/utils"
)

type row struct {
	ID   uint
	Name string
}

func rowID(r row) uint { return r.ID }

// pageFetcher serves a fixed page and counts calls.
type pageFetcher struct {
	mu    sync.Mutex
	items []row
	total int64
	calls int
	last  map[string]string
}

func (f *pageFetcher) fetch(filters map[string]string, page, limit int) (Result[row], error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.last = filters
	return Result[row]{
		Items:      f.items,
		Pagination: utils.NewPaginationData(page, limit, f.total),
	}, nil
}

func sortedIDs(c *Controller[row]) []uint {
	ids := c.SelectedIDs()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestSetFilterResetsPageAndSelection(t *testing.T) {
	f := &pageFetcher{items: []row{{1, "a"}, {2, "b"}}, total: 30}
	c := New(rowID, f.fetch, nil)

	c.SetPage(3)
	if err := c.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	c.ToggleSelectOne(1)
	c.ToggleSelectOne(2)

	c.SetFilter("search", "smith")

	if err := c.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if got := c.Pagination().Page; got != 1 {
		t.Errorf("page = %d, want 1", got)
	}
	if got := c.SelectedIDs(); len(got) != 0 {
		t.Errorf("selectedIds = %v, want empty", got)
	}
	if f.last["search"] != "smith" {
		t.Errorf("fetch filters = %v", f.last)
	}
}

func TestToggleSelectAllThenFilterClearsSelection(t *testing.T) {
	f := &pageFetcher{items: []row{{1, "a"}, {2, "b"}, {3, "c"}}, total: 3}
	c := New(rowID, f.fetch, nil)
	if err := c.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	c.ToggleSelectAll()
	if got := sortedIDs(c); !reflect.DeepEqual(got, []uint{1, 2, 3}) {
		t.Fatalf("selected = %v", got)
	}

	c.SetFilter("state", "TX")
	if got := c.SelectedIDs(); len(got) != 0 {
		t.Errorf("selected after filter = %v, want empty", got)
	}
}

func TestToggleSelectAllCycles(t *testing.T) {
	f := &pageFetcher{items: []row{{1, "a"}, {2, "b"}}, total: 2}
	c := New(rowID, f.fetch, nil)
	if err := c.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	c.ToggleSelectOne(1)
	c.ToggleSelectAll() // partial selection -> select all
	if got := sortedIDs(c); !reflect.DeepEqual(got, []uint{1, 2}) {
		t.Fatalf("selected = %v, want all", got)
	}
	c.ToggleSelectAll() // all selected -> clear
	if got := c.SelectedIDs(); len(got) != 0 {
		t.Errorf("selected = %v, want empty", got)
	}
}

func TestToggleSelectOneIsSymmetric(t *testing.T) {
	f := &pageFetcher{items: []row{{1, "a"}}, total: 1}
	c := New(rowID, f.fetch, nil)

	c.ToggleSelectOne(1)
	if got := c.SelectedIDs(); !reflect.DeepEqual(got, []uint{1}) {
		t.Fatalf("selected = %v", got)
	}
	c.ToggleSelectOne(1)
	if got := c.SelectedIDs(); len(got) != 0 {
		t.Errorf("selected = %v, want empty", got)
	}
}

func TestBulkDeleteReportsBackendCount(t *testing.T) {
	f := &pageFetcher{items: []row{{1, "a"}, {2, "b"}, {3, "c"}}, total: 3}
	var deletedIDs []uint
	del := func(ids []uint) (*int64, error) {
		deletedIDs = ids
		// One row was already gone; the backend deleted only 2.
		count := int64(2)
		return &count, nil
	}
	c := New(rowID, f.fetch, del)
	if err := c.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	callsBefore := f.calls

	c.ToggleSelectAll()
	msg, err := c.BulkDelete()
	if err != nil {
		t.Fatalf("BulkDelete: %v", err)
	}

	if msg != "Successfully deleted 2 items" {
		t.Errorf("message = %q", msg)
	}
	if len(deletedIDs) != 3 {
		t.Errorf("backend got %d ids, want 3", len(deletedIDs))
	}
	if got := c.SelectedIDs(); len(got) != 0 {
		t.Errorf("selected after delete = %v, want empty", got)
	}
	if f.calls != callsBefore+1 {
		t.Errorf("expected a refetch after bulk delete, calls = %d", f.calls)
	}
}

func TestBulkDeleteFallsBackToSelectionCount(t *testing.T) {
	f := &pageFetcher{items: []row{{1, "a"}, {2, "b"}}, total: 2}
	del := func(ids []uint) (*int64, error) {
		return nil, nil // backend omitted deletedCount
	}
	c := New(rowID, f.fetch, del)
	if err := c.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	c.ToggleSelectAll()
	msg, err := c.BulkDelete()
	if err != nil {
		t.Fatalf("BulkDelete: %v", err)
	}
	if msg != "Successfully deleted 2 items" {
		t.Errorf("message = %q", msg)
	}
}

func TestBulkDeleteWithNothingSelected(t *testing.T) {
	del := func(ids []uint) (*int64, error) {
		t.Fatal("deleter called with empty selection")
		return nil, nil
	}
	f := &pageFetcher{}
	c := New(rowID, f.fetch, del)

	msg, err := c.BulkDelete()
	if err != nil || msg != "" {
		t.Errorf("BulkDelete() = %q, %v", msg, err)
	}
}

func TestFetchErrorKeepsItems(t *testing.T) {
	f := &pageFetcher{items: []row{{1, "a"}}, total: 1}
	fail := false
	fetch := func(filters map[string]string, page, limit int) (Result[row], error) {
		if fail {
			return Result[row]{}, errors.New("backend down")
		}
		return f.fetch(filters, page, limit)
	}
	c := New(rowID, fetch, nil)
	if err := c.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	fail = true
	if err := c.Refresh(); err == nil {
		t.Fatal("expected fetch error")
	}
	if got := c.Items(); len(got) != 1 {
		t.Errorf("items after failed fetch = %v; loaded page must survive", got)
	}
	if c.Err() == nil {
		t.Error("error state not recorded")
	}
}

func TestStaleResponseLoses(t *testing.T) {
	release := make(chan struct{})
	firstInFlight := make(chan struct{})
	var mu sync.Mutex
	calls := 0
	fetch := func(filters map[string]string, page, limit int) (Result[row], error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(firstInFlight)
			<-release // the first request finishes after the second
			return Result[row]{Items: []row{{1, "stale"}}}, nil
		}
		return Result[row]{Items: []row{{2, "fresh"}}}, nil
	}
	c := New(rowID, fetch, nil)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = c.Refresh() // slow, issued first
	}()
	<-firstInFlight

	if err := c.Refresh(); err != nil { // fast, issued second
		t.Fatalf("Refresh: %v", err)
	}
	close(release)
	<-done

	items := c.Items()
	if len(items) != 1 || items[0].Name != "fresh" {
		t.Errorf("items = %v; the most recently issued request must win", items)
	}
}

func TestPageWindow(t *testing.T) {
	tests := []struct {
		pages int64
		want  []int
	}{
		{0, []int{}},
		{1, []int{1}},
		{3, []int{1, 2, 3}},
		{5, []int{1, 2, 3, 4, 5}},
		{12, []int{1, 2, 3, 4, 5}}, // capped, always from page 1
	}
	for _, tt := range tests {
		got := PageWindow(tt.pages)
		if len(got) != len(tt.want) {
			t.Errorf("PageWindow(%d) = %v, want %v", tt.pages, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("PageWindow(%d) = %v, want %v", tt.pages, got, tt.want)
				break
			}
		}
	}
}
