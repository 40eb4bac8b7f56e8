package homeassistant

import (
	"strings"

	"github.com/nerrad567/easy2ha/internal/easyproj"
	"github.com/nerrad567/easy2ha/internal/infrastructure/logging"
)

// defaultWeatherName names the singleton when no weather channel
// contributed a name of its own.
const defaultWeatherName = "Weather station"

// weatherAggregator accumulates weather datapoints scattered across the
// whole project into one singleton entity. Weather stations export their
// signals over several channels, and installations sometimes hang a wind
// or frost alarm off a channel that classifies as another kind, so every
// channel may contribute.
type weatherAggregator struct {
	entity *Entity
	named  bool
}

// channelEntity returns the singleton for a channel that classified as
// weather, creating it on first use. The first such channel names the
// entity; later channels only merge their datapoints into it.
func (w *weatherAggregator) channelEntity(name string) *Entity {
	e := w.ensure()
	if !w.named {
		e.Name = name
		w.named = true
	}
	return e
}

// mixedEntity returns the singleton for weather datapoints carried by a
// channel of another kind. Such channels never name the station; without
// a weather channel the default name stands.
func (w *weatherAggregator) mixedEntity() *Entity {
	return w.ensure()
}

func (w *weatherAggregator) ensure() *Entity {
	if w.entity == nil {
		w.entity = NewEntity(KindWeather, defaultWeatherName)
	}
	return w.entity
}

// result returns the aggregated entity, or nil when no channel
// contributed.
func (w *weatherAggregator) result() *Entity {
	return w.entity
}

// accumulateWeather feeds the weather-signature datapoints of a channel
// of another kind into the singleton, applying the same list and
// lowest-address rules as full resolution.
func (c *Converter) accumulateWeather(log *logging.Logger, channel *easyproj.Channel, w *weatherAggregator) {
	table := resolveTables[KindWeather]

	for _, dp := range channel.Datapoints {
		tgt, ok := table[strings.ToLower(dp.Name)]
		if !ok {
			continue
		}
		if !dp.HasFlag(easyproj.FlagExport) {
			continue
		}
		addr, ok := dp.CanonicalAddress()
		if !ok {
			continue
		}

		entity := w.mixedEntity()
		var err error
		if tgt.list {
			err = entity.AppendAddress(tgt.field, addr)
		} else {
			err = entity.SetAddress(tgt.field, addr)
		}
		if err != nil {
			log.Error("cannot resolve weather datapoint", "channel", channel.Name, "field", tgt.field, "error", err)
			continue
		}

		log.Debug("weather datapoint on another channel",
			"channel", channel.Name,
			"datapoint", dp.Name,
			"field", tgt.field,
			"address", addr)
	}
}
