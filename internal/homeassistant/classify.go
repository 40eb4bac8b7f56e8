package homeassistant

import (
	"strings"

	"github.com/nerrad567/easy2ha/internal/easyproj"
)

// signature describes how to recognise one entity kind. Icons are exact
// matches against the channel's icon hint; the name sets match against the
// channel's lowercased datapoint names.
type signature struct {
	kind   Kind
	icons  []string
	allOf  []string
	anyOf  []string
	noneOf []string
}

// signatures is ordered by precedence. Climate comes first: a climate
// channel also carries indoor temperature and on/off datapoints, so it
// must be recognised by its larger required set before the light and
// temperature sensor signatures get a look at those names.
var signatures = []signature{
	{
		kind:  KindClimate,
		icons: []string{"icon-heat_regul"},
		allOf: []string{"room temperature", "mode"},
	},
	{
		kind:  KindCover,
		icons: []string{"icon-shutter"},
		anyOf: []string{"up/down", "position control"},
	},
	{
		kind:  KindLight,
		icons: []string{"icon-light", "icon-dimmer"},
		anyOf: []string{"on/off", "dim value"},
	},
	{
		kind:   KindTemperatureSensor,
		icons:  []string{"icon-indoor_temperature"},
		allOf:  []string{"indoor temperature"},
		noneOf: []string{"room temperature", "mode"},
	},
	{
		kind:  KindWeather,
		icons: []string{"icon-day_night"},
		anyOf: []string{
			"outdoor temperature", "wind speed", "rain alarm", "frost alarm",
			"wind alarm 1", "wind alarm 2", "wind alarm 3",
			"day/night", "luminosity",
		},
	},
}

// Classify decides which entity kind a channel represents.
//
// The icon hint is authoritative when it names a known kind; otherwise the
// channel's datapoint names are matched against the kind signatures in
// precedence order. Channels matching nothing are KindUnclassified, which
// excludes them from conversion without being an error.
//
// Classify is a pure function of the channel and always returns the same
// kind for the same input.
func Classify(channel *easyproj.Channel) Kind {
	if channel.Icon != "" {
		for _, sig := range signatures {
			for _, icon := range sig.icons {
				if channel.Icon == icon {
					return sig.kind
				}
			}
		}
	}

	names := datapointNames(channel)
	for _, sig := range signatures {
		if sig.matches(names) {
			return sig.kind
		}
	}

	return KindUnclassified
}

// matches reports whether a datapoint name set satisfies the signature:
// all of allOf, at least one of anyOf, and none of noneOf.
func (s *signature) matches(names map[string]bool) bool {
	for _, name := range s.allOf {
		if !names[name] {
			return false
		}
	}

	if len(s.anyOf) > 0 {
		found := false
		for _, name := range s.anyOf {
			if names[name] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, name := range s.noneOf {
		if names[name] {
			return false
		}
	}

	return len(s.allOf) > 0 || len(s.anyOf) > 0
}

// datapointNames collects a channel's datapoint names, lowercased for
// case-insensitive matching.
func datapointNames(channel *easyproj.Channel) map[string]bool {
	names := make(map[string]bool, len(channel.Datapoints))
	for _, dp := range channel.Datapoints {
		names[strings.ToLower(dp.Name)] = true
	}
	return names
}
