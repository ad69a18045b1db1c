// Package objectsetting provides row-level CRUD for object-scoped setting
// values. (name, object_type, object_id) identifies at most one row.
package objectsetting

import (
	"errors"

	"gorm.io/gorm"

	"github.com/setstore/setstore/internal/db/models"
)

const (
	identityQueryPattern = "name = ? AND object_type = ? AND object_id = ?"
	objectQueryPattern   = "object_type = ? AND object_id = ?"
	objectsQueryPattern  = "object_type IN ? AND object_id IN ?"
	namesQueryPattern    = "name IN ?"
)

var (
	// ErrObjectSettingNotFound is returned when no row matches the given identity.
	ErrObjectSettingNotFound = errors.New("object setting not found")
	// ErrObjectSettingNameEmpty is returned when a lookup or mutation has an empty name.
	ErrObjectSettingNameEmpty = errors.New("object setting name cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetForObject retrieves all rows stored for one (objectType, objectID) pair.
func GetForObject(db *gorm.DB, objectType, objectID string) ([]models.ObjectSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []models.ObjectSetting
	result := db.Where(objectQueryPattern, objectType, objectID).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// GetForObjects retrieves all rows stored for any combination of the given
// object types and ids in a single query.
func GetForObjects(db *gorm.DB, objectTypes, objectIDs []string) ([]models.ObjectSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []models.ObjectSetting
	result := db.Where(objectsQueryPattern, objectTypes, objectIDs).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// GetByNames retrieves all rows whose name is in names, across all objects.
func GetByNames(db *gorm.DB, names []string) ([]models.ObjectSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rows []models.ObjectSetting
	result := db.Where(namesQueryPattern, names).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// GetByIdentity retrieves the single row matching (name, objectType, objectID).
func GetByIdentity(db *gorm.DB, name, objectType, objectID string) (*models.ObjectSetting, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if name == "" {
		return nil, ErrObjectSettingNameEmpty
	}

	var row models.ObjectSetting
	result := db.Where(identityQueryPattern, name, objectType, objectID).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrObjectSettingNotFound
		}
		return nil, result.Error
	}

	return &row, nil
}

// Save persists a row: an update when row.ID is set, an insert otherwise.
func Save(db *gorm.DB, row *models.ObjectSetting) error {
	if db == nil {
		return ErrDBNil
	}
	if row.Name == "" {
		return ErrObjectSettingNameEmpty
	}

	if row.ID != 0 {
		return db.Save(row).Error
	}

	return db.Create(row).Error
}

// Delete removes the row matching (name, objectType, objectID).
func Delete(db *gorm.DB, name, objectType, objectID string) error {
	if db == nil {
		return ErrDBNil
	}
	if name == "" {
		return ErrObjectSettingNameEmpty
	}

	result := db.Where(identityQueryPattern, name, objectType, objectID).Delete(&models.ObjectSetting{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrObjectSettingNotFound
	}

	return nil
}
