package homeassistant

import "sort"

// Document is the assembled output configuration: entities grouped by
// platform, each group in first-encounter order. Once handed to the
// renderer it is not modified again.
type Document struct {
	Light   []*Entity
	Cover   []*Entity
	Sensor  []*Entity
	Climate []*Entity
	Weather []*Entity
}

// Section is one platform group in rendering order.
type Section struct {
	Key      string
	Entities []*Entity
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Add places an entity in its platform group. Unclassified entities are
// ignored.
func (d *Document) Add(e *Entity) {
	switch e.Kind {
	case KindLight:
		d.Light = append(d.Light, e)
	case KindCover:
		d.Cover = append(d.Cover, e)
	case KindTemperatureSensor:
		d.Sensor = append(d.Sensor, e)
	case KindClimate:
		d.Climate = append(d.Climate, e)
	case KindWeather:
		d.Weather = append(d.Weather, e)
	}
}

// Sections returns the platform groups in the fixed output order. Empty
// groups are included; the renderer emits them as empty lists.
func (d *Document) Sections() []Section {
	return []Section{
		{Key: "light", Entities: d.Light},
		{Key: "cover", Entities: d.Cover},
		{Key: "sensor", Entities: d.Sensor},
		{Key: "climate", Entities: d.Climate},
		{Key: "weather", Entities: d.Weather},
	}
}

// Len returns the total entity count.
func (d *Document) Len() int {
	return len(d.Light) + len(d.Cover) + len(d.Sensor) + len(d.Climate) + len(d.Weather)
}

// SortByName orders each group alphabetically instead of encounter order.
func (d *Document) SortByName() {
	for _, group := range d.groups() {
		sort.SliceStable(*group, func(i, j int) bool {
			return (*group)[i].Name < (*group)[j].Name
		})
	}
}

// dropInvalid removes entities missing required fields. onDrop is called
// for each removed entity; the count is returned.
func (d *Document) dropInvalid(onDrop func(*Entity)) int {
	dropped := 0
	for _, group := range d.groups() {
		kept := (*group)[:0]
		for _, e := range *group {
			if e.Valid() {
				kept = append(kept, e)
				continue
			}
			if onDrop != nil {
				onDrop(e)
			}
			dropped++
		}
		*group = kept
	}
	return dropped
}

func (d *Document) groups() []*[]*Entity {
	return []*[]*Entity{&d.Light, &d.Cover, &d.Sensor, &d.Climate, &d.Weather}
}
