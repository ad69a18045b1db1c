// Package models contains database model definitions.
package models

// ObjectSetting is a persisted setting value scoped to one object.
// (Name, ObjectType, ObjectID) identifies at most one row; Value holds the
// JSON-encoded list of values.
type ObjectSetting struct {
	ID         uint64 `gorm:"primaryKey"`
	Name       string `gorm:"index:idx_object_settings_identity,unique"`
	ObjectType string `gorm:"index:idx_object_settings_identity,unique"`
	ObjectID   string `gorm:"index:idx_object_settings_identity,unique"`
	Value      []byte `gorm:"type:blob"`
}
