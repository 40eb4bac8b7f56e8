// Package homeassistant converts parsed easy projects into Home Assistant
// KNX entity configurations.
//
// # Pipeline
//
// The conversion runs as a fixed sequence over the channels of a project:
//
//  1. Classify each channel into an entity kind (light, cover, temperature
//     sensor, climate, weather) from its icon hint and datapoint names.
//  2. Resolve each datapoint to a schema field through per-kind lookup
//     tables, keeping the lowest group address when a field is redefined.
//  3. Aggregate weather datapoints from all channels into one weather entity.
//  4. Link climate entities to the temperature sensor supplying their
//     indoor reading.
//  5. Assemble the surviving entities into a Document grouped by platform.
//
// Per-channel and per-datapoint anomalies never abort a conversion; they
// are logged and counted in the Summary.
//
// # Usage
//
//	converter := homeassistant.NewConverter(logger, homeassistant.Options{})
//	doc, summary := converter.Convert(project)
//
// The resulting Document is handed to the render package for serialisation.
package homeassistant
