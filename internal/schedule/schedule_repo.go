package schedule

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// ScheduleRepository interface defines all database operations for schedules
type ScheduleRepository interface {
	CreateSchedule(doc *Document) error
	GetScheduleByID(id uint) (*Document, error)
	GetAllSchedules(page, limit int, filters map[string]interface{}) ([]Document, int64, error)
	DeleteSchedule(id uint) error
}

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

// CreateSchedule adds a new schedule to the database
func (r *scheduleRepository) CreateSchedule(doc *Document) error {
	return r.db.Create(doc).Error
}

// GetScheduleByID retrieves a schedule by its ID
func (r *scheduleRepository) GetScheduleByID(id uint) (*Document, error) {
	var doc Document
	if err := r.db.First(&doc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("schedule not found")
		}
		return nil, err
	}
	return &doc, nil
}

// GetAllSchedules retrieves all schedules with pagination and filters
func (r *scheduleRepository) GetAllSchedules(page, limit int, filters map[string]interface{}) ([]Document, int64, error) {
	var docs []Document
	var totalCount int64

	offset := (page - 1) * limit

	query := r.db.Model(&Document{})

	for key, value := range filters {
		switch key {
		case "team_id":
			query = query.Where("team_id = ?", value)
		case "date_from":
			query = query.Where("date >= ?", value.(time.Time))
		case "date_to":
			query = query.Where("date <= ?", value.(time.Time))
		}
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("date desc").Offset(offset).Limit(limit).Find(&docs).Error; err != nil {
		return nil, 0, err
	}

	return docs, totalCount, nil
}

// DeleteSchedule removes a schedule from the database
func (r *scheduleRepository) DeleteSchedule(id uint) error {
	result := r.db.Delete(&Document{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("schedule not found")
	}
	return nil
}
