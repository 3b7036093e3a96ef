package entity

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/spf13/cast"

	errs "github.com/amirhossein-jamali/loan-tracker/internal/domain/error"
)

// Kind is the storage type a client field is coerced to
type Kind int

const (
	KindString Kind = iota
	KindNullableString
	KindNumber
	KindInteger
	KindBool
)

// Field describes one client-writable field by its JSON name
type Field struct {
	Name string
	Kind Kind
}

// Patch holds the coerced fields of one client entry, keyed by JSON name.
// A nil value is only ever stored for KindNullableString fields.
type Patch map[string]any

// String returns the string value of name, or "" if absent
func (p Patch) String(name string) string {
	if v, ok := p[name].(string); ok {
		return v
	}
	return ""
}

// Keys returns the field names in the patch in a stable order
func (p Patch) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Entry is a decoded batch element: its application id (possibly empty) and its fields
type Entry struct {
	ID    string
	Patch Patch
}

// serverOwned are keys a client may send but never writes
var serverOwned = map[string]struct{}{
	"id":        {},
	"_id":       {},
	"__v":       {},
	"updatedAt": {},
}

// Schema is the set of client-writable fields for one entity
type Schema struct {
	entity string
	fields map[string]Kind
}

// NewSchema builds a schema for entity from its writable fields
func NewSchema(entity string, fields ...Field) *Schema {
	s := &Schema{
		entity: entity,
		fields: make(map[string]Kind, len(fields)),
	}
	for _, f := range fields {
		s.fields[f.Name] = f.Kind
	}
	return s
}

// Entity returns the entity name the schema describes
func (s *Schema) Entity() string {
	return s.entity
}

// Decode coerces a raw JSON object into an Entry. Unknown keys are dropped;
// nulls are dropped unless the field is nullable.
func (s *Schema) Decode(raw map[string]any) (Entry, error) {
	entry := Entry{Patch: make(Patch, len(raw))}

	if rawID, ok := raw["id"]; ok && rawID != nil {
		id, err := cast.ToStringE(rawID)
		if err != nil {
			return Entry{}, errs.NewFieldError(s.entity, "id", rawID, err)
		}
		entry.ID = strings.TrimSpace(id)
	}

	for name, value := range raw {
		if _, skip := serverOwned[name]; skip {
			continue
		}
		kind, known := s.fields[name]
		if !known {
			continue
		}
		if value == nil {
			if kind == KindNullableString {
				entry.Patch[name] = nil
			}
			continue
		}
		coerced, err := coerce(kind, value)
		if err != nil {
			return Entry{}, errs.NewFieldError(s.entity, name, value, err)
		}
		entry.Patch[name] = coerced
	}

	return entry, nil
}

// DecodeBatch decodes every element of a batch, failing on the first bad element
func (s *Schema) DecodeBatch(raw []map[string]any) ([]Entry, error) {
	entries := make([]Entry, 0, len(raw))
	for i, item := range raw {
		if item == nil {
			return nil, fmt.Errorf("%w: %s entry %d is null", errs.ErrInvalidBatch, s.entity, i)
		}
		entry, err := s.Decode(item)
		if err != nil {
			return nil, errs.NewBatchError(s.entity, i, "", err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func coerce(kind Kind, value any) (any, error) {
	switch kind {
	case KindString, KindNullableString:
		switch value.(type) {
		case map[string]any, []any:
			return nil, fmt.Errorf("expected a scalar, got %T", value)
		}
		return cast.ToStringE(value)
	case KindNumber:
		return cast.ToFloat64E(value)
	case KindInteger:
		f, err := cast.ToFloat64E(value)
		if err != nil {
			return nil, err
		}
		if f != math.Trunc(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%v is not a whole number", value)
		}
		return int64(f), nil
	case KindBool:
		return cast.ToBoolE(value)
	default:
		return nil, fmt.Errorf("unknown field kind %d", kind)
	}
}
