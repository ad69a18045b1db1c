// Package settings implements the descriptor registry and the object-scoped
// settings manager. Modules declare descriptors once at startup; runtime code
// reads and writes per-object values through the Manager, which layers a
// tag-invalidated cache over the database.
package settings

// ValueType declares the data type a setting holds.
type ValueType string

// Supported setting value types.
const (
	TypeShortText ValueType = "ShortText"
	TypeLongText  ValueType = "LongText"
	TypeInteger   ValueType = "Integer"
	TypeDecimal   ValueType = "Decimal"
	TypeBoolean   ValueType = "Boolean"
	TypeDateTime  ValueType = "DateTime"
	TypeJSON      ValueType = "Json"
)

// Descriptor is the static metadata of a setting: its unique name
// (case-insensitive), the module that owns it, its declared value type and
// its default and allowed values. Descriptors are registered during startup
// and never change afterwards, except for the module id assigned at
// registration time.
type Descriptor struct {
	Name          string
	ModuleID      string
	ValueType     ValueType
	DefaultValue  string
	AllowedValues []string
}
