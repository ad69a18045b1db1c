package settings

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/setstore/setstore/internal/cache"
	"github.com/setstore/setstore/internal/db/controller/objectsetting"
	"github.com/setstore/setstore/internal/db/models"
)

// Manager orchestrates descriptor lookups, cache-aside reads and
// transactional writes of object-scoped setting values. Reads populate the
// cache region with one identity tag per returned entry; writes and deletes
// commit first and expire the touched identities afterwards.
type Manager struct {
	db       *gorm.DB
	registry *Registry
	cache    *cache.Region[string, []*ObjectSettingEntry]
}

// NewManager creates a Manager over the given database and registry.
func NewManager(db *gorm.DB, registry *Registry) (*Manager, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if registry == nil {
		return nil, ErrRegistryNil
	}

	return &Manager{
		db:       db,
		registry: registry,
		cache:    cache.NewRegion[string, []*ObjectSettingEntry]("object-settings"),
	}, nil
}

// Registry returns the descriptor registry the manager resolves names against.
func (m *Manager) Registry() *Registry {
	return m.registry
}

// GetObjectSetting resolves a single setting for one object. The entry is
// always returned for a registered name, value-less when nothing is stored.
func (m *Manager) GetObjectSetting(ctx context.Context, name, objectType, objectID string) (*ObjectSettingEntry, error) {
	if name == "" {
		return nil, ErrNameEmpty
	}

	entries, err := m.GetObjectSettings(ctx, []string{name}, objectType, objectID)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}

	return entries[0], nil
}

// GetObjectSettings resolves the named settings for one object, cache-aside.
// A cache hit returns without touching storage; on a miss all rows of the
// object are loaded in one query and only one loader runs per distinct key,
// however many callers are in flight.
func (m *Manager) GetObjectSettings(ctx context.Context, names []string, objectType, objectID string) ([]*ObjectSettingEntry, error) {
	if names == nil {
		return nil, ErrNamesNil
	}

	key := cacheKey("GetObjectSettings", names, objectType, objectID)

	return m.cache.GetOrCreateExclusive(ctx, key, func(ctx context.Context) ([]*ObjectSettingEntry, []string, error) {
		rows, err := objectsetting.GetForObject(m.db.WithContext(ctx), objectType, objectID)
		if err != nil {
			return nil, nil, err
		}

		entries := make([]*ObjectSettingEntry, 0, len(names))
		tags := make([]string, 0, len(names))

		for _, name := range names {
			descriptor, ok := m.registry.Lookup(name)
			if !ok {
				return nil, nil, &NotRegisteredError{Name: name}
			}

			entry, err := entryFromRow(descriptor, objectType, objectID, matchRow(rows, name))
			if err != nil {
				return nil, nil, err
			}

			entries = append(entries, entry)
			tags = append(tags, entry.IdentityKey())
		}

		return entries, tags, nil
	})
}

// GetAllObjectSettingsByTypesAndIDs resolves the named settings across any
// combination of the given object types and ids, in one query. Unlike
// GetObjectSettings it returns one entry per persisted row, so a name stored
// for several objects yields several entries and a name stored for none
// yields none.
func (m *Manager) GetAllObjectSettingsByTypesAndIDs(ctx context.Context, names, objectTypes, objectIDs []string) ([]*ObjectSettingEntry, error) {
	if names == nil {
		return nil, ErrNamesNil
	}

	key := cacheKey("GetAllObjectSettingsByTypesAndIDs", names, strings.Join(objectTypes, ","), strings.Join(objectIDs, ","))

	return m.cache.GetOrCreateExclusive(ctx, key, func(ctx context.Context) ([]*ObjectSettingEntry, []string, error) {
		rows, err := objectsetting.GetForObjects(m.db.WithContext(ctx), objectTypes, objectIDs)
		if err != nil {
			return nil, nil, err
		}

		var (
			entries []*ObjectSettingEntry
			tags    []string
		)

		for _, name := range names {
			descriptor, ok := m.registry.Lookup(name)
			if !ok {
				return nil, nil, &NotRegisteredError{Name: name}
			}

			for i := range rows {
				if !strings.EqualFold(rows[i].Name, name) {
					continue
				}

				entry, err := entryFromRow(descriptor, rows[i].ObjectType, rows[i].ObjectID, &rows[i])
				if err != nil {
					return nil, nil, err
				}

				entries = append(entries, entry)
				tags = append(tags, entry.IdentityKey())
			}
		}

		return entries, tags, nil
	})
}

// SaveObjectSettings persists every entry that has values, in one
// transaction. An existing row with the same (name, objectType, objectID) is
// patched in place, keeping its row key; anything else is inserted.
// Entries without values are skipped; deleting through save is not supported.
// The touched identities are expired from the cache only after the commit
// succeeds.
func (m *Manager) SaveObjectSettings(ctx context.Context, objectSettings []*ObjectSettingEntry) error {
	if objectSettings == nil {
		return ErrObjectSettingsNil
	}

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := objectsetting.GetByNames(tx, distinctNames(objectSettings))
		if err != nil {
			return err
		}

		for _, entry := range objectSettings {
			if !entry.HasValues() {
				continue
			}

			row, err := entry.Row()
			if err != nil {
				return err
			}

			if match := matchIdentity(existing, entry); match != nil {
				row.ID = match.ID
			}

			if err := objectsetting.Save(tx, row); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	m.expireEntries(objectSettings)

	return nil
}

// RemoveObjectSettings deletes the rows matching each entry's exact identity,
// in one transaction. Entries without a persisted row are skipped, but their
// cache tags are still expired after the commit.
func (m *Manager) RemoveObjectSettings(ctx context.Context, objectSettings []*ObjectSettingEntry) error {
	if objectSettings == nil {
		return ErrObjectSettingsNil
	}

	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, entry := range objectSettings {
			err := objectsetting.Delete(tx, entry.Descriptor.Name, entry.ObjectType, entry.ObjectID)
			if err != nil && !errors.Is(err, objectsetting.ErrObjectSettingNotFound) {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	m.expireEntries(objectSettings)

	return nil
}

func (m *Manager) expireEntries(entries []*ObjectSettingEntry) {
	for _, entry := range entries {
		tag := entry.IdentityKey()
		m.cache.Expire(tag)
		log.Debug().Str("identity", tag).Msg("expired setting cache tag")
	}
}

// cacheKey derives the cache key for one read operation from its identity and
// arguments. Names are lowercased and sorted so equivalent requests share a
// key.
func cacheKey(operation string, names []string, scope ...string) string {
	sorted := make([]string, len(names))
	for i, name := range names {
		sorted[i] = strings.ToLower(name)
	}
	sort.Strings(sorted)

	parts := append([]string{operation, strings.Join(sorted, ",")}, scope...)

	return strings.Join(parts, "|")
}

// matchRow finds the row with the given setting name, or nil.
func matchRow(rows []models.ObjectSetting, name string) *models.ObjectSetting {
	for i := range rows {
		if strings.EqualFold(rows[i].Name, name) {
			return &rows[i]
		}
	}

	return nil
}

// matchIdentity finds the row with the entry's exact identity, or nil.
func matchIdentity(rows []models.ObjectSetting, entry *ObjectSettingEntry) *models.ObjectSetting {
	for i := range rows {
		if strings.EqualFold(rows[i].Name, entry.Descriptor.Name) &&
			rows[i].ObjectType == entry.ObjectType &&
			rows[i].ObjectID == entry.ObjectID {
			return &rows[i]
		}
	}

	return nil
}

func distinctNames(entries []*ObjectSettingEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		key := strings.ToLower(entry.Descriptor.Name)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		names = append(names, entry.Descriptor.Name)
	}

	return names
}
