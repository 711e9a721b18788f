// Package body assembles CKAN action request bodies.
//
// A Builder keeps an ordered set of wire fields. Required setters always insert
// their key; Opt* setters insert only when the caller supplied a value, so an
// omitted optional never reaches the wire as null or as an empty entry.
package body

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrEncodeField is returned when a field value cannot be serialized.
var ErrEncodeField = errors.New("encoding body field")

// Builder collects wire fields for a single action call.
type Builder struct {
	keys   []string
	values map[string]any
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{
		values: make(map[string]any),
	}
}

func (b *Builder) set(name string, value any) *Builder {
	if _, exists := b.values[name]; !exists {
		b.keys = append(b.keys, name)
	}

	b.values[name] = value

	return b
}

// String always sets name, even to "".
func (b *Builder) String(name, value string) *Builder {
	return b.set(name, value)
}

// Int always sets name, even to 0.
func (b *Builder) Int(name string, value int) *Builder {
	return b.set(name, value)
}

// Bool always sets name, even to false.
func (b *Builder) Bool(name string, value bool) *Builder {
	return b.set(name, value)
}

// Strings always sets name. A nil slice is sent as an empty list.
func (b *Builder) Strings(name string, value []string) *Builder {
	if value == nil {
		value = []string{}
	}

	return b.set(name, value)
}

// Objects always sets name. A nil slice is sent as an empty list.
func (b *Builder) Objects(name string, value []map[string]any) *Builder {
	if value == nil {
		value = []map[string]any{}
	}

	return b.set(name, value)
}

// Value always sets name to an arbitrary JSON-serializable value.
func (b *Builder) Value(name string, value any) *Builder {
	return b.set(name, value)
}

// OptString sets name when value is non-nil.
func (b *Builder) OptString(name string, value *string) *Builder {
	if value == nil {
		return b
	}

	return b.set(name, *value)
}

// OptInt sets name when value is non-nil.
func (b *Builder) OptInt(name string, value *int) *Builder {
	if value == nil {
		return b
	}

	return b.set(name, *value)
}

// OptBool sets name when value is non-nil.
func (b *Builder) OptBool(name string, value *bool) *Builder {
	if value == nil {
		return b
	}

	return b.set(name, *value)
}

// OptStrings sets name when value is non-nil. An empty non-nil slice counts as supplied.
func (b *Builder) OptStrings(name string, value []string) *Builder {
	if value == nil {
		return b
	}

	return b.set(name, value)
}

// OptObject sets name when value is non-nil.
func (b *Builder) OptObject(name string, value map[string]any) *Builder {
	if value == nil {
		return b
	}

	return b.set(name, value)
}

// OptObjects sets name when value is non-nil.
func (b *Builder) OptObjects(name string, value []map[string]any) *Builder {
	if value == nil {
		return b
	}

	return b.set(name, value)
}

// OptRaw sets name to pre-serialized JSON when value is non-nil.
func (b *Builder) OptRaw(name string, value json.RawMessage) *Builder {
	if value == nil {
		return b
	}

	return b.set(name, value)
}

// Merge copies every top-level key of extra into the body. Merged keys
// replace same-named fields set earlier, so call it last.
func (b *Builder) Merge(extra map[string]any) *Builder {
	for _, key := range slices.Sorted(maps.Keys(extra)) {
		b.set(key, extra[key])
	}

	return b
}

// Has reports whether name is present.
func (b *Builder) Has(name string) bool {
	_, ok := b.values[name]

	return ok
}

// Len returns the number of fields.
func (b *Builder) Len() int {
	return len(b.keys)
}

// Keys returns field names in insertion order.
func (b *Builder) Keys() []string {
	keys := make([]string, len(b.keys))
	copy(keys, b.keys)

	return keys
}

// MarshalJSON encodes the fields as a single JSON object in insertion order.
func (b *Builder) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for i, key := range b.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		name, err := json.Marshal(key)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrEncodeField, key, err)
		}

		value, err := json.Marshal(b.values[key])
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrEncodeField, key, err)
		}

		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(value)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// FormFields flattens the body into multipart text fields. Strings are kept
// verbatim; any other value is sent as its compact JSON text.
func (b *Builder) FormFields() (map[string]string, error) {
	fields := make(map[string]string, len(b.keys))

	for _, key := range b.keys {
		switch value := b.values[key].(type) {
		case string:
			fields[key] = value
		default:
			encoded, err := json.Marshal(value)
			if err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrEncodeField, key, err)
			}

			fields[key] = string(encoded)
		}
	}

	return fields, nil
}
