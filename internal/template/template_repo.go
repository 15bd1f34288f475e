package template

import (
	"errors"

	"github.com/dugoutlabs/diamond/internal/schedule"
	"gorm.io/gorm"
)

// TemplateRepository interface defines all database operations for schedule templates
type TemplateRepository interface {
	ListTemplates() ([]Template, error)
	GetTemplateByID(id uint) (*Template, error)
	CreateTemplate(tpl *Template) error
	UpdateTemplate(tpl *Template) error
	DuplicateTemplate(id uint, name, description string, creatorID uint) (*Template, error)
	DeleteTemplate(id uint) error
}

type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *gorm.DB) TemplateRepository {
	return &templateRepository{db: db}
}

// ListTemplates retrieves all templates, newest first
func (r *templateRepository) ListTemplates() ([]Template, error) {
	var templates []Template
	if err := r.db.Order("created_at desc").Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// GetTemplateByID retrieves a template by its ID
func (r *templateRepository) GetTemplateByID(id uint) (*Template, error) {
	var tpl Template
	if err := r.db.First(&tpl, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("template not found")
		}
		return nil, err
	}
	return &tpl, nil
}

// CreateTemplate adds a new template to the database
func (r *templateRepository) CreateTemplate(tpl *Template) error {
	return r.db.Create(tpl).Error
}

// UpdateTemplate saves a full replacement of the template row
func (r *templateRepository) UpdateTemplate(tpl *Template) error {
	return r.db.Save(tpl).Error
}

// DuplicateTemplate deep-copies an existing template under a new identity.
// The copy is owned by the duplicating user and never inherits the default
// star marker.
func (r *templateRepository) DuplicateTemplate(id uint, name, description string, creatorID uint) (*Template, error) {
	source, err := r.GetTemplateByID(id)
	if err != nil {
		return nil, err
	}

	dup := &Template{
		Name:         name,
		Description:  description,
		TemplateData: schedule.CloneSections(source.TemplateData),
		IsDefault:    false,
		CreatorID:    creatorID,
	}
	if err := r.db.Create(dup).Error; err != nil {
		return nil, err
	}
	return dup, nil
}

// DeleteTemplate removes a template from the database
func (r *templateRepository) DeleteTemplate(id uint) error {
	result := r.db.Delete(&Template{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("template not found")
	}
	return nil
}
