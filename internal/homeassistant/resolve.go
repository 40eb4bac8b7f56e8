package homeassistant

import (
	"strings"

	"github.com/nerrad567/easy2ha/internal/easyproj"
	"github.com/nerrad567/easy2ha/internal/infrastructure/logging"
)

// target is one entry in a kind's name to field table.
type target struct {
	field string
	list  bool
	aux   bool
	drop  bool
}

// resolveTables map lowercased datapoint names to schema fields, one table
// per kind. Entries with drop set are intentionally unmapped names that
// the platform has no use for; they are skipped without a diagnostic.
// The climate table records the channel's own indoor temperature reading
// as auxiliary data for the linker instead of a schema field.
var resolveTables = map[Kind]map[string]target{
	KindLight: {
		"on/off":           {field: "address"},
		"dim value":        {field: "brightness_address"},
		"on/off status":    {field: "state_address"},
		"dim value status": {field: "brightness_state_address"},
		"scene":            {drop: true},
	},
	KindCover: {
		"up/down":                   {field: "move_long_address"},
		"step/stop":                 {field: "stop_address"},
		"position control":          {field: "position_address"},
		"slat angle control":        {field: "angle_address"},
		"position control status":   {field: "position_state_address"},
		"slat angle control status": {field: "angle_state_address"},
		"scene":                     {drop: true},
	},
	KindTemperatureSensor: {
		"indoor temperature": {field: "state_address"},
	},
	KindClimate: {
		"indoor temperature":    {aux: true},
		"room temperature":      {field: "target_temperature_state_address"},
		"setpoint shift":        {field: "setpoint_shift_address"},
		"setpoint shift status": {field: "setpoint_shift_state_address"},
		"mode":                  {field: "operation_mode_address"},
		"mode status":           {field: "operation_mode_state_address"},
		"heat/cool":             {field: "heat_cool_address"},
		"heat/cool status":      {field: "heat_cool_state_address"},
		"on/off":                {field: "on_off_address"},
		"presence":              {drop: true},
	},
	KindWeather: {
		"outdoor temperature": {field: "address_temperature"},
		"wind speed":          {field: "address_wind_speed"},
		"rain alarm":          {field: "address_rain_alarm"},
		"frost alarm":         {field: "address_frost_alarm"},
		"wind alarm 1":        {field: "address_wind_alarm", list: true},
		"wind alarm 2":        {field: "address_wind_alarm", list: true},
		"wind alarm 3":        {field: "address_wind_alarm", list: true},
		"day/night":           {field: "address_day_night"},
		"luminosity":          {field: "address_brightness_south"},
	},
}

// resolveInto maps a channel's datapoints onto the entity's schema fields.
//
// Each exportable datapoint contributes its canonical (lowest) group
// address to the field its name resolves to. Names without a table entry
// are dropped with a diagnostic; they never abort the conversion.
func (c *Converter) resolveInto(log *logging.Logger, summary *Summary, channel *easyproj.Channel, entity *Entity) {
	table := resolveTables[entity.Kind]

	for _, dp := range channel.Datapoints {
		if !dp.HasFlag(easyproj.FlagExport) {
			log.Debug("skip datapoint without export flag", "entity", entity.Name, "datapoint", dp.Name)
			continue
		}

		addr, ok := dp.CanonicalAddress()
		if !ok {
			log.Debug("no group address for datapoint", "entity", entity.Name, "datapoint", dp.Name)
			continue
		}

		tgt, ok := table[strings.ToLower(dp.Name)]
		if !ok {
			// Weather-signature names go to the aggregator.
			if _, weather := resolveTables[KindWeather][strings.ToLower(dp.Name)]; weather {
				continue
			}
			log.Info("skip unmapped datapoint", "entity", entity.Name, "datapoint", dp.Name)
			summary.UnmappedDatapoints++
			continue
		}

		var err error
		switch {
		case tgt.drop:
			log.Debug("drop datapoint", "entity", entity.Name, "datapoint", dp.Name)
		case tgt.aux:
			entity.setAux(strings.ToLower(dp.Name), addr)
			log.Debug("recorded auxiliary address", "entity", entity.Name, "datapoint", dp.Name, "address", addr)
		case tgt.list:
			err = entity.AppendAddress(tgt.field, addr)
		default:
			err = entity.SetAddress(tgt.field, addr)
		}

		if err != nil {
			log.Error("cannot resolve datapoint", "entity", entity.Name, "field", tgt.field, "error", err)
			continue
		}
		if tgt.field != "" {
			log.Debug("resolved datapoint", "entity", entity.Name, "field", tgt.field, "address", addr)
		}
	}
}
