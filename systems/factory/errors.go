package factory

import "fmt"

// UnknownSpawnTypeError is returned for a spawn name with no constructor.
type UnknownSpawnTypeError struct {
	Name string
}

func (e *UnknownSpawnTypeError) Error() string {
	return fmt.Sprintf("unknown spawn type %q", e.Name)
}

// ConfigError is returned when an entity would be built from values it
// cannot simulate with.
type ConfigError struct {
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}
