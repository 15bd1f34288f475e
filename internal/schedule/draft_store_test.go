package schedule

import "testing"

func TestDraftStoreTakeIsExactlyOnce(t *testing.T) {
	store := NewDraftStore()
	store.Put(7, Document{ProgramName: "Winter Workouts"})

	doc, ok := store.Take(7)
	if !ok {
		t.Fatal("expected a parked draft")
	}
	if doc.ProgramName != "Winter Workouts" {
		t.Errorf("got draft %q", doc.ProgramName)
	}

	// The slot is cleared on read; a second take comes back empty.
	if _, ok := store.Take(7); ok {
		t.Error("second Take returned a draft; slot should be cleared on read")
	}
}

func TestDraftStoreIsPerUser(t *testing.T) {
	store := NewDraftStore()
	store.Put(1, Document{ProgramName: "A"})
	store.Put(2, Document{ProgramName: "B"})

	if doc, ok := store.Take(2); !ok || doc.ProgramName != "B" {
		t.Errorf("Take(2) = %+v, %v", doc, ok)
	}
	if doc, ok := store.Take(1); !ok || doc.ProgramName != "A" {
		t.Errorf("Take(1) = %+v, %v", doc, ok)
	}
}

func TestDraftStorePutReplaces(t *testing.T) {
	store := NewDraftStore()
	store.Put(1, Document{ProgramName: "old"})
	store.Put(1, Document{ProgramName: "new"})

	doc, ok := store.Take(1)
	if !ok || doc.ProgramName != "new" {
		t.Errorf("Take = %+v, %v; want the replacement draft", doc, ok)
	}
}
