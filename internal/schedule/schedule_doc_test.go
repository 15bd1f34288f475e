package schedule

import (
	"fmt"
	"strings"
	"testing"
)

// seqProvider hands out "id-1", "id-2", ... so structures are predictable.
type seqProvider struct {
	n int
}

func (p *seqProvider) NewID() string {
	p.n++
	return fmt.Sprintf("id-%d", p.n)
}

func TestBaseSkeleton(t *testing.T) {
	idp := &seqProvider{}
	sections := BaseSkeleton(idp)

	if len(sections) != 8 {
		t.Fatalf("expected 8 sections, got %d", len(sections))
	}

	wantTypes := []SectionType{
		SectionGeneral,
		SectionPositionPlayers,
		SectionPitchers,
		SectionGrinderPerformance,
		SectionGrinderHitting,
		SectionGrinderDefensive,
		SectionBullpen,
		SectionLiveBP,
	}
	for i, sec := range sections {
		if sec.Type != wantTypes[i] {
			t.Errorf("section %d: type = %q, want %q", i, sec.Type, wantTypes[i])
		}
		if sec.LocalID == "" {
			t.Errorf("section %d: missing localId", i)
		}
		if sec.Title == "" {
			t.Errorf("section %d: missing title", i)
		}
		if sec.Activities == nil || len(sec.Activities) != 0 {
			t.Errorf("section %d: expected empty activity list, got %v", i, sec.Activities)
		}
	}
}

func TestSectionTypeNormalize(t *testing.T) {
	if got := SectionType("bullpen").Normalize(); got != SectionBullpen {
		t.Errorf("Normalize(bullpen) = %q", got)
	}
	if got := SectionType("made_up").Normalize(); got != SectionGeneral {
		t.Errorf("Normalize(made_up) = %q, want %q", got, SectionGeneral)
	}
	if got := SectionType("").Normalize(); got != SectionGeneral {
		t.Errorf("Normalize(empty) = %q, want %q", got, SectionGeneral)
	}
}

func TestAddSection(t *testing.T) {
	idp := &seqProvider{}
	doc := Document{Sections: SectionList{}}

	doc2, err := doc.AddSection(idp, SectionPitchers, "Arms")
	if err != nil {
		t.Fatalf("AddSection: %v", err)
	}
	if len(doc2.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc2.Sections))
	}
	if len(doc.Sections) != 0 {
		t.Error("AddSection mutated the input document")
	}
	if doc2.Sections[0].Type != SectionPitchers || doc2.Sections[0].Title != "Arms" {
		t.Errorf("unexpected section: %+v", doc2.Sections[0])
	}

	// Empty title is rejected without mutation.
	doc3, err := doc2.AddSection(idp, SectionGeneral, "   ")
	if !IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(doc3.Sections) != 1 {
		t.Errorf("rejected AddSection changed section count to %d", len(doc3.Sections))
	}

	// Unknown type falls back to general.
	doc4, err := doc2.AddSection(idp, "mystery", "Misc")
	if err != nil {
		t.Fatalf("AddSection: %v", err)
	}
	if doc4.Sections[1].Type != SectionGeneral {
		t.Errorf("unknown type stored as %q, want %q", doc4.Sections[1].Type, SectionGeneral)
	}
}

func TestRemoveSection(t *testing.T) {
	idp := &seqProvider{}
	doc := Document{Sections: BaseSkeleton(idp)}
	target := doc.Sections[2].LocalID

	doc2 := doc.RemoveSection(target)
	if len(doc2.Sections) != 7 {
		t.Fatalf("expected 7 sections, got %d", len(doc2.Sections))
	}
	for _, sec := range doc2.Sections {
		if sec.LocalID == target {
			t.Error("removed section still present")
		}
	}

	// Unknown id is a no-op, not an error.
	doc3 := doc2.RemoveSection("nope")
	if len(doc3.Sections) != 7 {
		t.Errorf("no-op removal changed section count to %d", len(doc3.Sections))
	}
}

func TestAddActivity(t *testing.T) {
	idp := &seqProvider{}
	doc := Document{Sections: BaseSkeleton(idp)}
	secID := doc.Sections[0].LocalID

	tests := []struct {
		name    string
		act     Activity
		wantErr bool
	}{
		{"valid", Activity{Time: "6:15", Name: "Stretch"}, false},
		{"missing time", Activity{Name: "Stretch"}, true},
		{"missing name", Activity{Time: "6:15"}, true},
		{"blank both", Activity{Time: " ", Name: " "}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := doc.AddActivity(idp, secID, tt.act)
			if tt.wantErr {
				if !IsValidation(err) {
					t.Fatalf("expected validation error, got %v", err)
				}
				if len(out.Sections[0].Activities) != 0 {
					t.Error("rejected AddActivity mutated the section")
				}
				return
			}
			if err != nil {
				t.Fatalf("AddActivity: %v", err)
			}
			if len(out.Sections[0].Activities) != 1 {
				t.Fatalf("expected 1 activity, got %d", len(out.Sections[0].Activities))
			}
			if out.Sections[0].Activities[0].LocalID == "" {
				t.Error("activity was not assigned a localId")
			}
			if len(doc.Sections[0].Activities) != 0 {
				t.Error("AddActivity mutated the input document")
			}
		})
	}

	// Unknown section id: silent no-op.
	out, err := doc.AddActivity(idp, "nope", Activity{Time: "7:00", Name: "BP"})
	if err != nil {
		t.Fatalf("AddActivity with unknown section: %v", err)
	}
	for i, sec := range out.Sections {
		if len(sec.Activities) != 0 {
			t.Errorf("section %d gained an activity", i)
		}
	}
}

func TestRemoveActivity(t *testing.T) {
	idp := &seqProvider{}
	doc := Document{Sections: BaseSkeleton(idp)}
	secID := doc.Sections[0].LocalID

	doc, err := doc.AddActivity(idp, secID, Activity{Time: "6:15", Name: "Stretch"})
	if err != nil {
		t.Fatalf("AddActivity: %v", err)
	}
	actID := doc.Sections[0].Activities[0].LocalID

	doc2 := doc.RemoveActivity(secID, actID)
	if len(doc2.Sections[0].Activities) != 0 {
		t.Error("activity was not removed")
	}
	if len(doc.Sections[0].Activities) != 1 {
		t.Error("RemoveActivity mutated the input document")
	}

	// Unknown pair: no-op.
	doc3 := doc.RemoveActivity(secID, "nope")
	if len(doc3.Sections[0].Activities) != 1 {
		t.Error("no-op removal changed activity count")
	}
	doc4 := doc.RemoveActivity("nope", actID)
	if len(doc4.Sections[0].Activities) != 1 {
		t.Error("removal with unknown section changed activity count")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     Document
		wantErr bool
	}{
		{"complete", Document{TeamID: 1, ProgramName: "Fall Ball"}, false},
		{"missing team", Document{ProgramName: "Fall Ball"}, true},
		{"missing program", Document{TeamID: 1}, true},
		{"blank program", Document{TeamID: 1, ProgramName: "   "}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if tt.wantErr && !IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSortedActivities(t *testing.T) {
	sec := Section{Activities: []Activity{
		{LocalID: "a", Time: "9:00", Name: "Infield"},
		{LocalID: "b", Time: "10:00", Name: "BP"},
		{LocalID: "c", Time: "6:30", Name: "Stretch"},
	}}

	got := sec.SortedActivities()

	// Plain string order: "10:00" sorts before "6:30" and "9:00".
	wantOrder := []string{"10:00", "6:30", "9:00"}
	for i, act := range got {
		if act.Time != wantOrder[i] {
			t.Errorf("position %d: time = %q, want %q", i, act.Time, wantOrder[i])
		}
	}
	if sec.Activities[0].Time != "9:00" {
		t.Error("SortedActivities mutated the section")
	}
}

func TestPersistedPayloadKeepsLocalIDs(t *testing.T) {
	idp := &seqProvider{}
	doc := Document{Sections: BaseSkeleton(idp)}
	doc, err := doc.AddActivity(idp, doc.Sections[0].LocalID, Activity{Time: "6:15", Name: "Stretch"})
	if err != nil {
		t.Fatalf("AddActivity: %v", err)
	}

	value, err := doc.Sections.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	raw := string(value.([]byte))

	// Section and activity localIds go to the database as-is.
	if !strings.Contains(raw, `"localId":"id-1"`) {
		t.Errorf("payload dropped section localId: %s", raw)
	}
	if !strings.Contains(raw, `"localId":"id-9"`) {
		t.Errorf("payload dropped activity localId: %s", raw)
	}
}

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots()
	if len(slots) != 48 {
		t.Fatalf("expected 48 slots, got %d", len(slots))
	}
	if slots[0] != "6:00" {
		t.Errorf("first slot = %q, want 6:00", slots[0])
	}
	if slots[len(slots)-1] != "17:45" {
		t.Errorf("last slot = %q, want 17:45", slots[len(slots)-1])
	}
}
