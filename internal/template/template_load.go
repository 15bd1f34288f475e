package template

import (
	"time"

	"github.com/dugoutlabs/diamond/internal/schedule"
	"github.com/dugoutlabs/diamond/pkg/ids"
)

// DraftDefaults carries the session values a loaded draft starts from. They
// come from the user's team and the current date, never from the template.
type DraftDefaults struct {
	TeamID      uint
	ProgramName string
	Date        time.Time
}

// LoadIntoDraft copies the template's sections into a fresh draft document.
// Every section gets a new localId; activities keep theirs. The template
// itself is never mutated by a load.
func LoadIntoDraft(tpl Template, defaults DraftDefaults, idp ids.Provider) schedule.Document {
	sections := schedule.CloneSections(tpl.TemplateData)
	for i := range sections {
		sections[i].LocalID = idp.NewID()
		if sections[i].Activities == nil {
			sections[i].Activities = []schedule.Activity{}
		}
	}
	return schedule.Document{
		TeamID:      defaults.TeamID,
		ProgramName: defaults.ProgramName,
		Date:        defaults.Date,
		Sections:    sections,
	}
}
