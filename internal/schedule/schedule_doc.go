package schedule

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/dugoutlabs/diamond/pkg/ids"
)

// ValidationError is a user-facing rejection of a document mutation. It blocks
// the operation but is never fatal; the caller shows the message and keeps the
// document unchanged.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// BaseSkeleton returns the eight standard sections, one per section type in
// skeleton order, each with its default title and an empty activity list.
func BaseSkeleton(idp ids.Provider) SectionList {
	sections := make(SectionList, 0, len(SectionTypes))
	for _, st := range SectionTypes {
		sections = append(sections, Section{
			LocalID:    idp.NewID(),
			Type:       st,
			Title:      st.DefaultTitle(),
			Activities: []Activity{},
		})
	}
	return sections
}

// CloneSections deep-copies a sections tree so mutations on the copy never
// leak into the source.
func CloneSections(src SectionList) SectionList {
	out := make(SectionList, len(src))
	for i, sec := range src {
		activities := make([]Activity, len(sec.Activities))
		copy(activities, sec.Activities)
		sec.Activities = activities
		out[i] = sec
	}
	return out
}

// clone copies the document with a fresh sections tree. All mutating
// operations below work on the clone and return it, leaving the input intact.
func (d Document) clone() Document {
	d.Sections = CloneSections(d.Sections)
	return d
}

// Validate checks the document is complete enough to persist.
func (d Document) Validate() error {
	if d.TeamID == 0 {
		return &ValidationError{Message: "Please select a team"}
	}
	if strings.TrimSpace(d.ProgramName) == "" {
		return &ValidationError{Message: "Please enter a program name"}
	}
	return nil
}

// AddSection appends a new section with a fresh localId. An empty title is
// rejected; an empty or unknown sectionType falls back to general.
func (d Document) AddSection(idp ids.Provider, sectionType SectionType, title string) (Document, error) {
	if strings.TrimSpace(title) == "" {
		return d, &ValidationError{Message: "Please enter a section title"}
	}
	out := d.clone()
	out.Sections = append(out.Sections, Section{
		LocalID:    idp.NewID(),
		Type:       sectionType.Normalize(),
		Title:      title,
		Activities: []Activity{},
	})
	return out, nil
}

// RemoveSection drops the section with the given localId. Removing an id that
// is not present is a no-op, not an error.
func (d Document) RemoveSection(localID string) Document {
	out := d.clone()
	for i, sec := range out.Sections {
		if sec.LocalID == localID {
			out.Sections = append(out.Sections[:i], out.Sections[i+1:]...)
			break
		}
	}
	return out
}

// AddActivity appends an activity to the named section. Both time and name are
// required; a missing section id leaves the document unchanged without error.
func (d Document) AddActivity(idp ids.Provider, sectionLocalID string, act Activity) (Document, error) {
	if strings.TrimSpace(act.Time) == "" || strings.TrimSpace(act.Name) == "" {
		return d, &ValidationError{Message: "Please enter time and activity"}
	}
	out := d.clone()
	for i := range out.Sections {
		if out.Sections[i].LocalID == sectionLocalID {
			if act.LocalID == "" {
				act.LocalID = idp.NewID()
			}
			out.Sections[i].Activities = append(out.Sections[i].Activities, act)
			break
		}
	}
	return out, nil
}

// RemoveActivity drops an activity by section/activity id pair; no-op when
// either id is not found.
func (d Document) RemoveActivity(sectionLocalID, activityLocalID string) Document {
	out := d.clone()
	for i := range out.Sections {
		if out.Sections[i].LocalID != sectionLocalID {
			continue
		}
		acts := out.Sections[i].Activities
		for j, act := range acts {
			if act.LocalID == activityLocalID {
				out.Sections[i].Activities = append(acts[:j], acts[j+1:]...)
				break
			}
		}
		break
	}
	return out
}

// SortedActivities returns the section's activities in display order: plain
// string comparison on the "H:MM" time value. Single-digit hours sort after
// double-digit ones ("9:00" comes after "10:00"); kept as-is to match how
// existing schedules print.
func (s Section) SortedActivities() []Activity {
	out := make([]Activity, len(s.Activities))
	copy(out, s.Activities)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// TimeSlots returns the fixed pick-list of activity times: every 15 minutes
// from 6:00 through 17:45, formatted without a leading hour zero.
func TimeSlots() []string {
	slots := make([]string, 0, 48)
	for hour := 6; hour <= 17; hour++ {
		for _, min := range []int{0, 15, 30, 45} {
			slots = append(slots, strconv.Itoa(hour)+":"+pad2(min))
		}
	}
	return slots
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
