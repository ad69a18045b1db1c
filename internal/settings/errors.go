package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrDescriptorsNil is returned when a registration call receives no descriptors.
	ErrDescriptorsNil = errors.New("descriptors cannot be nil")
	// ErrNamesNil is returned when a read call receives no setting names.
	ErrNamesNil = errors.New("setting names cannot be nil")
	// ErrNameEmpty is returned when a single-setting call receives an empty name.
	ErrNameEmpty = errors.New("setting name cannot be empty")
	// ErrObjectSettingsNil is returned when a save/remove call receives no entries.
	ErrObjectSettingsNil = errors.New("object settings cannot be nil")
	// ErrDBNil is returned when the manager is constructed without a database.
	ErrDBNil = errors.New("database connection is nil")
	// ErrRegistryNil is returned when the manager is constructed without a registry.
	ErrRegistryNil = errors.New("descriptor registry is nil")
)

// NotRegisteredError reports a requested setting name that has no registered
// descriptor. A single unregistered name aborts the whole batch.
type NotRegisteredError struct {
	Name string
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("setting %q is not registered", e.Name)
}
