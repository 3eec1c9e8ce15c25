package population

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Classification thresholds applied to the savings value.
const (
	PremiumThreshold  = -10000
	StandardThreshold = -1000
)

var invalidIDChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// ValidID turns free text into a valid ontology local name: every character
// outside [a-zA-Z0-9] becomes an underscore and names not starting with a
// letter get a V_ prefix. Empty input yields "Unknown".
func ValidID(text string) string {
	if text == "" {
		return "Unknown"
	}
	id := invalidIDChars.ReplaceAllString(text, "_")
	if !unicode.IsLetter(rune(id[0])) {
		id = "V_" + id
	}
	return id
}

// VehicleID builds the individual name for one dataset row:
// <Make>_<Model>_<Year>_<rowID zero-padded to five digits>.
func VehicleID(make, model, year string, rowID int) string {
	prefix := ValidID(strings.Replace(fmt.Sprintf("%s_%s_%s", make, model, year), " ", "_", -1))
	return fmt.Sprintf("%s_%05d", prefix, rowID)
}

// ClassificationID munges a raw dataset value into a classification
// individual name: spaces, hyphens and slashes become underscores. When
// dropCommas is set (size classes), commas are removed first.
func ClassificationID(value string, dropCommas bool) string {
	id := value
	if dropCommas {
		id = strings.Replace(id, ",", "", -1)
	}
	id = strings.Replace(id, " ", "_", -1)
	id = strings.Replace(id, "-", "_", -1)
	id = strings.Replace(id, "/", "_", -1)
	return id
}

// SafeNumeric converts a raw cell to a float, reporting failure instead of
// panicking on junk values.
func SafeNumeric(value string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// MarketSegment classifies a savings value into a market segment individual.
// Missing savings default to the standard market.
func MarketSegment(savings float64, present bool) string {
	switch {
	case !present:
		return "StandardMarket"
	case savings < PremiumThreshold:
		return "PremiumMarket"
	case savings < StandardThreshold:
		return "StandardMarket"
	default:
		return "EconomyMarket"
	}
}
