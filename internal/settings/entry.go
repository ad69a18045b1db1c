package settings

import (
	"encoding/json"
	"strings"

	"github.com/setstore/setstore/internal/db/models"
)

// ObjectSettingEntry is a setting resolved for one (objectType, objectID)
// pair. Values holds the explicitly stored values; when empty, the entry has
// no persisted backing and the descriptor default applies.
type ObjectSettingEntry struct {
	Descriptor *Descriptor
	ObjectType string
	ObjectID   string
	Values     []string
}

// HasValues reports whether the entry carries explicitly stored values.
func (e *ObjectSettingEntry) HasValues() bool {
	return len(e.Values) > 0
}

// EffectiveValues returns the stored values, falling back to the descriptor
// default when nothing is stored.
func (e *ObjectSettingEntry) EffectiveValues() []string {
	if e.HasValues() {
		return e.Values
	}

	if e.Descriptor != nil && e.Descriptor.DefaultValue != "" {
		return []string{e.Descriptor.DefaultValue}
	}

	return nil
}

// IdentityKey derives the cache tag of this entry's setting identity.
// Every cached read result containing this identity is filed under this tag,
// and every write to it expires the tag.
func (e *ObjectSettingEntry) IdentityKey() string {
	return strings.ToLower(e.Descriptor.Name) + "|" + e.ObjectType + "|" + e.ObjectID
}

// Row converts the entry to its persisted representation. The value list is
// stored as a JSON blob.
func (e *ObjectSettingEntry) Row() (*models.ObjectSetting, error) {
	value, err := json.Marshal(e.Values)
	if err != nil {
		return nil, err
	}

	return &models.ObjectSetting{
		Name:       e.Descriptor.Name,
		ObjectType: e.ObjectType,
		ObjectID:   e.ObjectID,
		Value:      value,
	}, nil
}

// entryFromRow builds an entry for descriptor from a persisted row, or a
// default (value-less) entry when row is nil.
func entryFromRow(d *Descriptor, objectType, objectID string, row *models.ObjectSetting) (*ObjectSettingEntry, error) {
	entry := &ObjectSettingEntry{
		Descriptor: d,
		ObjectType: objectType,
		ObjectID:   objectID,
	}

	if row == nil {
		return entry, nil
	}

	entry.ObjectType = row.ObjectType
	entry.ObjectID = row.ObjectID

	if len(row.Value) > 0 {
		if err := json.Unmarshal(row.Value, &entry.Values); err != nil {
			return nil, err
		}
	}

	return entry, nil
}
