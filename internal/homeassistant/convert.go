package homeassistant

import (
	"github.com/google/uuid"

	"github.com/nerrad567/easy2ha/internal/easyproj"
	"github.com/nerrad567/easy2ha/internal/infrastructure/logging"
)

// Options control conversion behaviour.
type Options struct {
	// SortEntities orders entities alphabetically within each platform
	// section instead of keeping project encounter order.
	SortEntities bool
}

// Summary reports what one conversion did. Counters cover the anomalies
// that are handled locally and would otherwise be invisible in the output.
type Summary struct {
	ConversionID         string
	SourceFile           string
	ChannelsTotal        int
	ChannelsSkipped      int
	ChannelsUnclassified int
	UnmappedDatapoints   int
	LinkedClimates       int
	DroppedEntities      int
	EntitiesTotal        int
}

// Converter turns parsed projects into Home Assistant entity documents.
type Converter struct {
	logger *logging.Logger
	opts   Options
}

// NewConverter creates a converter.
func NewConverter(logger *logging.Logger, opts Options) *Converter {
	return &Converter{
		logger: logger.With("component", "homeassistant"),
		opts:   opts,
	}
}

// Convert runs the classify, resolve, link and assemble pipeline over a
// project. It never fails: channels that cannot be converted are skipped
// and counted in the Summary, matching the platform's tolerance for
// partially described installations.
func (c *Converter) Convert(project *easyproj.Project) (*Document, *Summary) {
	summary := &Summary{
		ConversionID: uuid.NewString(),
		SourceFile:   project.SourceFile,
	}
	log := c.logger.With("conversion_id", summary.ConversionID)

	log.Info("converting project", "source", project.SourceFile, "channels", len(project.Channels))

	doc := NewDocument()
	var weather weatherAggregator

	for i := range project.Channels {
		channel := &project.Channels[i]
		summary.ChannelsTotal++

		if !channel.Exportable() {
			log.Debug("skip channel without name or export flag", "name", channel.Name)
			summary.ChannelsSkipped++
			continue
		}

		kind := Classify(channel)
		if kind == KindUnclassified {
			log.Info("skip unclassified channel", "name", channel.Name, "icon", channel.Icon)
			summary.ChannelsUnclassified++
			continue
		}

		log.Info("found entity", "name", channel.Name, "kind", kind)

		if kind == KindWeather {
			c.resolveInto(log, summary, channel, weather.channelEntity(channel.Name))
			continue
		}

		entity := NewEntity(kind, channel.Name)
		c.resolveInto(log, summary, channel, entity)
		doc.Add(entity)

		// Weather datapoints riding on a channel of another kind still
		// belong to the station.
		c.accumulateWeather(log, channel, &weather)
	}

	if w := weather.result(); w != nil {
		doc.Add(w)
	}

	summary.LinkedClimates = linkClimateSensors(log, doc)

	summary.DroppedEntities = doc.dropInvalid(func(e *Entity) {
		log.Warn("skip incomplete entity", "name", e.Name, "kind", e.Kind)
	})

	if c.opts.SortEntities {
		doc.SortByName()
	}

	summary.EntitiesTotal = doc.Len()

	log.Info("conversion complete",
		"entities", summary.EntitiesTotal,
		"skipped_channels", summary.ChannelsSkipped,
		"unclassified_channels", summary.ChannelsUnclassified,
		"unmapped_datapoints", summary.UnmappedDatapoints,
		"linked_climates", summary.LinkedClimates,
		"dropped_entities", summary.DroppedEntities)

	return doc, summary
}
