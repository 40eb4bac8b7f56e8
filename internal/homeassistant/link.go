package homeassistant

import (
	"github.com/nerrad567/easy2ha/internal/easyproj"
	"github.com/nerrad567/easy2ha/internal/infrastructure/logging"
)

// linkClimateSensors copies temperature sensor state addresses into climate
// entities whose own temperature_address is still unresolved.
//
// A climate controller reads its room value from a separate sensor channel
// on the bus. The datapoint that ties them together is the climate
// channel's indoor temperature reading, recorded as auxiliary data during
// resolution: a sensor whose state_address equals that reading supplies
// the climate's temperature_address.
//
// The linker only copies already-resolved values. Sensors are never
// mutated, climates with a temperature_address are left alone (running the
// linker twice changes nothing), and a climate without a match keeps the
// field absent, which the schema allows.
func linkClimateSensors(log *logging.Logger, doc *Document) int {
	index := make(map[easyproj.GroupAddress]*Entity, len(doc.Sensor))
	for _, sensor := range doc.Sensor {
		addr, ok := sensor.Address("state_address")
		if !ok {
			continue
		}
		if _, exists := index[addr]; !exists {
			index[addr] = sensor
		}
	}

	linked := 0
	for _, climate := range doc.Climate {
		if _, ok := climate.Address("temperature_address"); ok {
			continue
		}

		reading, ok := climate.auxAddress(auxIndoorTemperature)
		if !ok {
			log.Debug("climate has no indoor temperature reading", "entity", climate.Name)
			continue
		}

		sensor, ok := index[reading]
		if !ok {
			log.Debug("no sensor for climate reading", "entity", climate.Name, "address", reading)
			continue
		}

		state, _ := sensor.Address("state_address")
		if err := climate.SetAddress("temperature_address", state); err != nil {
			log.Error("cannot link climate", "entity", climate.Name, "error", err)
			continue
		}

		log.Info("linked climate to sensor", "climate", climate.Name, "sensor", sensor.Name, "address", state)
		linked++
	}

	return linked
}
