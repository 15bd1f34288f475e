package performance

import (
	"errors"

	"gorm.io/gorm"
)

// EntryRepository interface defines all database operations for performance entries
type EntryRepository interface {
	CreateEntry(entry *Entry) error
	GetEntryByID(id uint) (*Entry, error)
	GetAllEntries(page, limit int, filters map[string]interface{}) ([]Entry, int64, error)
	UpdateEntry(entry *Entry) error
	DeleteEntry(id uint) error
	BulkDeleteEntries(ids []uint) (int64, error)
}

type entryRepository struct {
	db *gorm.DB
}

// NewEntryRepository creates a new performance-entry repository
func NewEntryRepository(db *gorm.DB) EntryRepository {
	return &entryRepository{db: db}
}

func (r *entryRepository) CreateEntry(entry *Entry) error {
	return r.db.Create(entry).Error
}

func (r *entryRepository) GetEntryByID(id uint) (*Entry, error) {
	var entry Entry
	if err := r.db.First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("performance entry not found")
		}
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepository) GetAllEntries(page, limit int, filters map[string]interface{}) ([]Entry, int64, error) {
	var entries []Entry
	var totalCount int64

	offset := (page - 1) * limit

	query := r.db.Model(&Entry{})

	for key, value := range filters {
		switch key {
		case "player_id":
			query = query.Where("player_id = ?", value)
		case "opponent":
			query = query.Where("opponent ILIKE ?", "%"+value.(string)+"%")
		}
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("game_date desc").Offset(offset).Limit(limit).Find(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, totalCount, nil
}

func (r *entryRepository) UpdateEntry(entry *Entry) error {
	return r.db.Save(entry).Error
}

func (r *entryRepository) DeleteEntry(id uint) error {
	result := r.db.Delete(&Entry{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("performance entry not found")
	}
	return nil
}

func (r *entryRepository) BulkDeleteEntries(ids []uint) (int64, error) {
	result := r.db.Delete(&Entry{}, ids)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
