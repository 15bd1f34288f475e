// internal/template/template_model.go
package template

import (
	"github.com/dugoutlabs/diamond/internal/schedule"
	"gorm.io/gorm"
)

// Template is a named, reusable skeleton of schedule sections. It carries no
// team or date binding; those are applied when the template is loaded into a
// draft.
type Template struct {
	gorm.Model
	Name         string               `gorm:"not null" json:"name"`
	Description  string               `json:"description,omitempty"`
	TemplateData schedule.SectionList `gorm:"type:jsonb" json:"templateData"`
	IsDefault    bool                 `json:"isDefault"`
	CreatorID    uint                 `json:"creator_id"`
}

func (Template) TableName() string {
	return "schedule_templates"
}
