package homeassistant

import (
	"testing"

	"github.com/nerrad567/easy2ha/internal/easyproj"
)

func testDatapoint(name string, addrs ...easyproj.GroupAddress) easyproj.Datapoint {
	return easyproj.Datapoint{
		Name:      name,
		Addresses: addrs,
		Flags:     []string{easyproj.FlagExport},
	}
}

func testChannel(name, icon string, dps ...easyproj.Datapoint) easyproj.Channel {
	return easyproj.Channel{
		Name:       name,
		Icon:       icon,
		Flags:      []string{easyproj.FlagExport},
		Datapoints: dps,
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		channel  easyproj.Channel
		expected Kind
	}{
		{
			name:     "cover by icon",
			channel:  testChannel("Kitchen blinds", "icon-shutter"),
			expected: KindCover,
		},
		{
			name:     "light by icon",
			channel:  testChannel("Kitchen light", "icon-light"),
			expected: KindLight,
		},
		{
			name:     "dimmer icon is a light",
			channel:  testChannel("Dining room", "icon-dimmer"),
			expected: KindLight,
		},
		{
			name:     "sensor by icon",
			channel:  testChannel("Office temperature", "icon-indoor_temperature"),
			expected: KindTemperatureSensor,
		},
		{
			name:     "climate by icon",
			channel:  testChannel("Office controller", "icon-heat_regul"),
			expected: KindClimate,
		},
		{
			name:     "weather by icon",
			channel:  testChannel("Weather station", "icon-day_night"),
			expected: KindWeather,
		},
		{
			name: "cover by signature",
			channel: testChannel("Kitchen blinds", "",
				testDatapoint("Up/Down", 5122),
				testDatapoint("Step/Stop", 5124)),
			expected: KindCover,
		},
		{
			name: "light by signature",
			channel: testChannel("Kitchen light", "",
				testDatapoint("On/Off", 4097),
				testDatapoint("On/Off status", 50184)),
			expected: KindLight,
		},
		{
			name: "sensor by signature",
			channel: testChannel("Office temperature", "",
				testDatapoint("Indoor temperature", 50376)),
			expected: KindTemperatureSensor,
		},
		{
			name: "climate by signature",
			channel: testChannel("Office controller", "",
				testDatapoint("Room temperature", 50548),
				testDatapoint("Mode", 5417)),
			expected: KindClimate,
		},
		{
			name: "climate precedes sensor",
			channel: testChannel("Office controller", "",
				testDatapoint("Indoor temperature", 50789),
				testDatapoint("Room temperature", 50548),
				testDatapoint("Mode", 5417)),
			expected: KindClimate,
		},
		{
			name: "climate precedes light despite on/off",
			channel: testChannel("Office controller", "",
				testDatapoint("On/Off", 50578),
				testDatapoint("Room temperature", 50548),
				testDatapoint("Mode", 5417)),
			expected: KindClimate,
		},
		{
			name: "weather by signature",
			channel: testChannel("Roof station", "",
				testDatapoint("Wind speed", 61441),
				testDatapoint("Outdoor temperature", 61440)),
			expected: KindWeather,
		},
		{
			name: "signature matching is case-insensitive",
			channel: testChannel("Kitchen blinds", "",
				testDatapoint("UP/DOWN", 5122)),
			expected: KindCover,
		},
		{
			name:     "unknown icon falls back to signatures",
			channel:  testChannel("Oddball", "icon-garage", testDatapoint("Up/Down", 5122)),
			expected: KindCover,
		},
		{
			name:     "nothing matches",
			channel:  testChannel("Oddball", "", testDatapoint("Ventilation speed", 9000)),
			expected: KindUnclassified,
		},
		{
			name:     "empty channel",
			channel:  testChannel("Bare", ""),
			expected: KindUnclassified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Classify(&tt.channel)
			if result != tt.expected {
				t.Errorf("Classify() = %v, want %v", result, tt.expected)
			}

			// Classification is a pure function: a second pass over the
			// unchanged channel gives the same answer.
			if again := Classify(&tt.channel); again != result {
				t.Errorf("Classify() second call = %v, want %v", again, result)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind       Kind
		name       string
		sectionKey string
	}{
		{KindLight, "light", "light"},
		{KindCover, "cover", "cover"},
		{KindTemperatureSensor, "temperature_sensor", "sensor"},
		{KindClimate, "climate", "climate"},
		{KindWeather, "weather", "weather"},
		{KindUnclassified, "unclassified", "unclassified"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.kind.SectionKey(); got != tt.sectionKey {
				t.Errorf("SectionKey() = %q, want %q", got, tt.sectionKey)
			}
		})
	}
}
