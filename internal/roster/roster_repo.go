package roster

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// Schema describes how one roster entity maps onto the generic machinery.
type Schema struct {
	// Name is the singular label used in messages and errors, e.g. "player".
	Name string
	// Path is the route segment under /api, e.g. "players" or "reports/scouting".
	Path string
	// SearchColumns are matched with a single case-insensitive `search` query
	// parameter, OR-ed together.
	SearchColumns []string
	// Filters maps a query-parameter key to the column it matches exactly.
	Filters map[string]string
}

// Repository is the shared GORM-backed store for a roster entity.
type Repository[T any] struct {
	db     *gorm.DB
	schema Schema
}

// NewRepository creates a repository for one entity type.
func NewRepository[T any](db *gorm.DB, schema Schema) *Repository[T] {
	return &Repository[T]{db: db, schema: schema}
}

// List retrieves one page of entities matching the given filter values.
// filters holds raw query-parameter values keyed the way Schema.Filters is.
func (r *Repository[T]) List(page, limit int, search string, filters map[string]string) ([]T, int64, error) {
	var items []T
	var totalCount int64
	var model T

	offset := (page - 1) * limit

	query := r.db.Model(&model)

	if search != "" && len(r.schema.SearchColumns) > 0 {
		clauses := make([]string, len(r.schema.SearchColumns))
		args := make([]interface{}, len(r.schema.SearchColumns))
		for i, col := range r.schema.SearchColumns {
			clauses[i] = col + " ILIKE ?"
			args[i] = "%" + search + "%"
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	for key, col := range r.schema.Filters {
		if value, ok := filters[key]; ok && value != "" {
			query = query.Where(col+" = ?", value)
		}
	}

	if err := query.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, totalCount, nil
}

// GetByID retrieves one entity by id.
func (r *Repository[T]) GetByID(id uint) (*T, error) {
	var item T
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(r.schema.Name + " not found")
		}
		return nil, err
	}
	return &item, nil
}

// Create inserts a new entity.
func (r *Repository[T]) Create(item *T) error {
	return r.db.Create(item).Error
}

// Update saves a full replacement of the entity row.
func (r *Repository[T]) Update(item *T) error {
	return r.db.Save(item).Error
}

// Delete removes one entity by id.
func (r *Repository[T]) Delete(id uint) error {
	var model T
	result := r.db.Delete(&model, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New(r.schema.Name + " not found")
	}
	return nil
}

// BulkDelete removes the given ids in one statement and returns how many rows
// were actually deleted. Ids that are already gone simply don't count.
func (r *Repository[T]) BulkDelete(ids []uint) (int64, error) {
	var model T
	result := r.db.Delete(&model, ids)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
