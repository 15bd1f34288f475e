package template

import (
	"fmt"
	"testing"
	"time"

	"github.com/dugoutlabs/diamond/internal/schedule"
)

type seqProvider struct {
	n int
}

func (p *seqProvider) NewID() string {
	p.n++
	return fmt.Sprintf("new-%d", p.n)
}

func sampleTemplate() Template {
	return Template{
		Name: "Game Day",
		TemplateData: schedule.SectionList{
			{
				LocalID: "s1",
				Type:    schedule.SectionGeneral,
				Title:   "Warmup",
				Activities: []schedule.Activity{
					{LocalID: "a1", Time: "6:00", Name: "Stretch"},
					{LocalID: "a2", Time: "6:30", Name: "Throwing Progression"},
				},
			},
			{
				LocalID:    "s2",
				Type:       schedule.SectionPitchers,
				Title:      "Pitchers",
				Activities: []schedule.Activity{},
			},
			{
				LocalID: "s3",
				Type:    schedule.SectionBullpen,
				Title:   "Bullpen",
				Activities: []schedule.Activity{
					{LocalID: "a3", Time: "8:00", Name: "Side Session"},
				},
			},
		},
	}
}

func TestLoadIntoDraft(t *testing.T) {
	tpl := sampleTemplate()
	defaults := DraftDefaults{
		TeamID:      42,
		ProgramName: "Spring Training",
		Date:        time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
	}

	draft := LoadIntoDraft(tpl, defaults, &seqProvider{})

	// Session defaults, never template values.
	if draft.TeamID != 42 {
		t.Errorf("TeamID = %d, want 42", draft.TeamID)
	}
	if draft.ProgramName != "Spring Training" {
		t.Errorf("ProgramName = %q", draft.ProgramName)
	}
	if !draft.Date.Equal(defaults.Date) {
		t.Errorf("Date = %v", draft.Date)
	}
	if draft.ID != 0 {
		t.Errorf("draft has persisted identity %d", draft.ID)
	}

	// Same sections and activities, section ids replaced, activity ids kept.
	if len(draft.Sections) != 3 {
		t.Fatalf("expected 3 sections, got %d", len(draft.Sections))
	}
	totalActivities := 0
	for i, sec := range draft.Sections {
		src := tpl.TemplateData[i]
		if sec.LocalID == src.LocalID {
			t.Errorf("section %d kept the template's localId %q", i, sec.LocalID)
		}
		if sec.Title != src.Title || sec.Type != src.Type {
			t.Errorf("section %d content diverged: %+v", i, sec)
		}
		if len(sec.Activities) != len(src.Activities) {
			t.Fatalf("section %d: %d activities, want %d", i, len(sec.Activities), len(src.Activities))
		}
		for j, act := range sec.Activities {
			if act != src.Activities[j] {
				t.Errorf("section %d activity %d diverged: %+v", i, j, act)
			}
		}
		totalActivities += len(sec.Activities)
	}
	if totalActivities != 3 {
		t.Errorf("total activities = %d, want 3", totalActivities)
	}
}

func TestLoadIntoDraftDoesNotMutateTemplate(t *testing.T) {
	tpl := sampleTemplate()
	draft := LoadIntoDraft(tpl, DraftDefaults{TeamID: 1, ProgramName: "P"}, &seqProvider{})

	draft.Sections[0].Title = "changed"
	draft.Sections[0].Activities[0].Name = "changed"

	if tpl.TemplateData[0].Title != "Warmup" {
		t.Error("draft mutation leaked into template section")
	}
	if tpl.TemplateData[0].Activities[0].Name != "Stretch" {
		t.Error("draft mutation leaked into template activity")
	}
}
