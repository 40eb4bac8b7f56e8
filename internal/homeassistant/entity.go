package homeassistant

import (
	"fmt"

	"github.com/nerrad567/easy2ha/internal/easyproj"
)

// auxIndoorTemperature is the auxiliary slot holding a climate channel's
// own indoor temperature reading. It is not part of any schema; the linker
// uses it to find the matching sensor entity.
const auxIndoorTemperature = "indoor temperature"

// Entity is one resolved Home Assistant entity. Fields are stored sparsely;
// an absent optional field is omitted from the rendered document, never
// emitted as null.
type Entity struct {
	Name string
	Kind Kind

	fields map[string]any
	aux    map[string]easyproj.GroupAddress
}

// FieldValue pairs a schema field name with its resolved value: a single
// easyproj.GroupAddress, a []easyproj.GroupAddress, or a literal string.
type FieldValue struct {
	Name  string
	Value any
}

// NewEntity creates an empty entity of the given kind. Temperature sensors
// carry their fixed platform literals from the start.
func NewEntity(kind Kind, name string) *Entity {
	e := &Entity{
		Name:   name,
		Kind:   kind,
		fields: make(map[string]any),
	}

	if kind == KindTemperatureSensor {
		e.fields["type"] = "temperature"
		e.fields["state_class"] = "measurement"
	}

	return e
}

// SetAddress resolves a single-address field. When the field is already
// set, the numerically lowest address wins; points redefined at alternate
// address ranges keep their canonical address this way.
func (e *Entity) SetAddress(field string, addr easyproj.GroupAddress) error {
	f, ok := SchemaFor(e.Kind).Field(field)
	if !ok {
		return fmt.Errorf("%w: %s has no field %q", ErrUnknownField, e.Kind, field)
	}
	if f.Type != FieldAddress {
		return fmt.Errorf("%w: %q is not a single address field", ErrFieldType, field)
	}

	if current, ok := e.fields[field].(easyproj.GroupAddress); ok && current <= addr {
		return nil
	}
	e.fields[field] = addr
	return nil
}

// AppendAddress resolves a list-valued field, keeping encounter order.
func (e *Entity) AppendAddress(field string, addr easyproj.GroupAddress) error {
	f, ok := SchemaFor(e.Kind).Field(field)
	if !ok {
		return fmt.Errorf("%w: %s has no field %q", ErrUnknownField, e.Kind, field)
	}
	if f.Type != FieldAddressList {
		return fmt.Errorf("%w: %q is not an address list field", ErrFieldType, field)
	}

	list, _ := e.fields[field].([]easyproj.GroupAddress)
	e.fields[field] = append(list, addr)
	return nil
}

// SetLiteral resolves a literal field.
func (e *Entity) SetLiteral(field, value string) error {
	f, ok := SchemaFor(e.Kind).Field(field)
	if !ok {
		return fmt.Errorf("%w: %s has no field %q", ErrUnknownField, e.Kind, field)
	}
	if f.Type != FieldLiteral {
		return fmt.Errorf("%w: %q is not a literal field", ErrFieldType, field)
	}

	e.fields[field] = value
	return nil
}

// Address returns a resolved single-address field.
func (e *Entity) Address(field string) (easyproj.GroupAddress, bool) {
	addr, ok := e.fields[field].(easyproj.GroupAddress)
	return addr, ok
}

// Value returns any resolved field value.
func (e *Entity) Value(field string) (any, bool) {
	v, ok := e.fields[field]
	return v, ok
}

// setAux records a non-schema address carried alongside the entity.
// The lowest address wins, matching the canonicalisation of schema fields.
func (e *Entity) setAux(key string, addr easyproj.GroupAddress) {
	if e.aux == nil {
		e.aux = make(map[string]easyproj.GroupAddress)
	}
	if current, ok := e.aux[key]; ok && current <= addr {
		return
	}
	e.aux[key] = addr
}

// auxAddress returns a recorded non-schema address.
func (e *Entity) auxAddress(key string) (easyproj.GroupAddress, bool) {
	addr, ok := e.aux[key]
	return addr, ok
}

// Valid reports whether the entity carries a name and every required field
// of its schema. Incomplete entities are dropped during assembly.
func (e *Entity) Valid() bool {
	schema := SchemaFor(e.Kind)
	if e.Name == "" || schema == nil {
		return false
	}
	for _, f := range schema.Fields {
		if !f.Required {
			continue
		}
		if _, ok := e.fields[f.Name]; !ok {
			return false
		}
	}
	return true
}

// ResolvedFields returns the present fields in schema order, ready for
// rendering.
func (e *Entity) ResolvedFields() []FieldValue {
	schema := SchemaFor(e.Kind)
	if schema == nil {
		return nil
	}
	var resolved []FieldValue
	for _, f := range schema.Fields {
		if v, ok := e.fields[f.Name]; ok {
			resolved = append(resolved, FieldValue{Name: f.Name, Value: v})
		}
	}
	return resolved
}
