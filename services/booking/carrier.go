// File: services/booking/carrier.go
package booking

import (
	"regexp"
	"strings"

	"voyago/models"
)

const defaultCarrierCode = "AS"

// airlineNameCodes maps common carrier display names to their two-letter
// IATA codes, for offers that carry a free-form carrier hint.
var airlineNameCodes = map[string]string{
	"ALASKA AIRLINES":    "AS",
	"AMERICAN AIRLINES":  "AA",
	"DELTA AIR LINES":    "DL",
	"UNITED AIRLINES":    "UA",
	"SOUTHWEST AIRLINES": "WN",
	"JETBLUE AIRWAYS":    "B6",
	"FRONTIER AIRLINES":  "F9",
	"SPIRIT AIRLINES":    "NK",
	"LUFTHANSA":          "LH",
	"BRITISH AIRWAYS":    "BA",
	"AIR FRANCE":         "AF",
	"KLM":                "KL",
}

// eticketPrefixes maps carrier codes to the three-digit airline prefix
// used on e-ticket numbers. Unknown carriers get "000".
var eticketPrefixes = map[string]string{
	"AS": "027",
	"AA": "001",
	"DL": "006",
	"UA": "016",
	"WN": "526",
	"B6": "279",
	"LH": "220",
	"BA": "125",
}

var (
	bareCodeRe   = regexp.MustCompile(`^[A-Z]{2}$`)
	flightCodeRe = regexp.MustCompile(`^([A-Z]{2})\d+`)
)

// extractCarrierCode derives a two-letter carrier code from wherever the
// offer exposes one: the free-form carrier hint first, then segment
// carrier codes, then validating airline codes, then a default.
func extractCarrierCode(offer models.FlightOffer) string {
	if hint := strings.ToUpper(strings.TrimSpace(offer.Carrier)); hint != "" {
		if code, ok := airlineNameCodes[hint]; ok {
			return code
		}
		for name, code := range airlineNameCodes {
			if strings.Contains(hint, name) || strings.Contains(name, hint) {
				return code
			}
		}
		if bareCodeRe.MatchString(hint) {
			return hint
		}
		if m := flightCodeRe.FindStringSubmatch(hint); m != nil {
			return m[1]
		}
	}

	for _, itin := range offer.Itineraries {
		for _, seg := range itin.Segments {
			if seg.CarrierCode != "" {
				return seg.CarrierCode
			}
		}
	}

	if len(offer.ValidatingAirlineCodes) > 0 && offer.ValidatingAirlineCodes[0] != "" {
		return offer.ValidatingAirlineCodes[0]
	}

	return defaultCarrierCode
}

func eticketPrefix(carrierCode string) string {
	if prefix, ok := eticketPrefixes[carrierCode]; ok {
		return prefix
	}
	return "000"
}
