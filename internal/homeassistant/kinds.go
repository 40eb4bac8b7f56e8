package homeassistant

// Kind identifies the Home Assistant platform an entity belongs to.
type Kind int

const (
	KindUnclassified Kind = iota
	KindLight
	KindCover
	KindTemperatureSensor
	KindClimate
	KindWeather
)

// String returns the kind name for logging.
func (k Kind) String() string {
	switch k {
	case KindLight:
		return "light"
	case KindCover:
		return "cover"
	case KindTemperatureSensor:
		return "temperature_sensor"
	case KindClimate:
		return "climate"
	case KindWeather:
		return "weather"
	default:
		return "unclassified"
	}
}

// SectionKey returns the document section the kind is grouped under.
// Temperature sensors live in the generic sensor platform.
func (k Kind) SectionKey() string {
	if k == KindTemperatureSensor {
		return "sensor"
	}
	return k.String()
}

// FieldType describes how a schema field stores its value.
type FieldType int

const (
	// FieldAddress holds a single group address.
	FieldAddress FieldType = iota
	// FieldAddressList holds group addresses in encounter order.
	FieldAddressList
	// FieldLiteral holds a fixed string such as a sensor value type.
	FieldLiteral
)

// Field is one named slot in an entity schema.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
}

// Schema fixes the ordered field set of an entity kind. Field names are
// part of the contract with the consuming platform and must match its
// documented keys exactly.
type Schema struct {
	Fields []Field
}

// Field looks up a schema field by name.
func (s *Schema) Field(name string) (Field, bool) {
	if s == nil {
		return Field{}, false
	}
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

var schemas = map[Kind]*Schema{
	KindLight: {Fields: []Field{
		{Name: "address", Type: FieldAddress, Required: true},
		{Name: "brightness_address", Type: FieldAddress},
		{Name: "state_address", Type: FieldAddress, Required: true},
		{Name: "brightness_state_address", Type: FieldAddress},
	}},
	KindCover: {Fields: []Field{
		{Name: "move_long_address", Type: FieldAddress, Required: true},
		{Name: "stop_address", Type: FieldAddress, Required: true},
		{Name: "position_address", Type: FieldAddress, Required: true},
		{Name: "angle_address", Type: FieldAddress, Required: true},
		{Name: "position_state_address", Type: FieldAddress, Required: true},
		{Name: "angle_state_address", Type: FieldAddress, Required: true},
	}},
	KindTemperatureSensor: {Fields: []Field{
		{Name: "state_address", Type: FieldAddress, Required: true},
		{Name: "type", Type: FieldLiteral},
		{Name: "state_class", Type: FieldLiteral},
	}},
	KindClimate: {Fields: []Field{
		{Name: "temperature_address", Type: FieldAddress},
		{Name: "target_temperature_state_address", Type: FieldAddress, Required: true},
		{Name: "setpoint_shift_address", Type: FieldAddress},
		{Name: "setpoint_shift_state_address", Type: FieldAddress},
		{Name: "operation_mode_address", Type: FieldAddress},
		{Name: "operation_mode_state_address", Type: FieldAddress},
		{Name: "heat_cool_address", Type: FieldAddress},
		{Name: "heat_cool_state_address", Type: FieldAddress},
		{Name: "on_off_address", Type: FieldAddress},
	}},
	KindWeather: {Fields: []Field{
		{Name: "address_temperature", Type: FieldAddress, Required: true},
		{Name: "address_wind_speed", Type: FieldAddress},
		{Name: "address_rain_alarm", Type: FieldAddress},
		{Name: "address_frost_alarm", Type: FieldAddress},
		{Name: "address_wind_alarm", Type: FieldAddressList},
		{Name: "address_day_night", Type: FieldAddress},
		{Name: "address_brightness_south", Type: FieldAddress},
	}},
}

// SchemaFor returns the fixed schema of a kind, or nil for KindUnclassified.
func SchemaFor(kind Kind) *Schema {
	return schemas[kind]
}
