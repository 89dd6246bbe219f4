// File: services/flights/format.go
package flights

import (
	"fmt"
	"strings"
	"time"

	"voyago/models"
)

const maxDisplayedOffers = 10

// FormatOffers renders the search result as a markdown option list the
// conversation layer can reply with. Option numbers are the 1-based
// positions used for later selection.
func FormatOffers(list *models.OfferList) string {
	var b strings.Builder
	b.WriteString("## Available Flight Options\n\n")

	carriers := list.Dictionaries.Carriers
	aircraft := list.Dictionaries.Aircraft

	offers := list.Data
	if len(offers) > maxDisplayedOffers {
		offers = offers[:maxDisplayedOffers]
	}

	for i, offer := range offers {
		fmt.Fprintf(&b, "### Option %d: %s %s (ID: %s)\n", i+1, offer.Price.GrandTotal, offer.Price.Currency, offer.ID)

		for j, itin := range offer.Itineraries {
			fmt.Fprintf(&b, "**%s**: %s • %s\n", tripType(j, len(offer.Itineraries)), stopText(itin), PrettyDuration(itin.Duration))

			for k, seg := range itin.Segments {
				carrierName := seg.CarrierCode
				if name, ok := carriers[seg.CarrierCode]; ok {
					carrierName = name
				}
				fmt.Fprintf(&b, "**Flight**: %s %s%s\n", carrierName, seg.CarrierCode, seg.Number)
				writePoint(&b, "From", seg.Departure)
				writePoint(&b, "To", seg.Arrival)
				if seg.Duration != "" {
					fmt.Fprintf(&b, "**Duration**: %s\n", PrettyDuration(seg.Duration))
				}
				if seg.Aircraft.Code != "" {
					name := seg.Aircraft.Code
					if n, ok := aircraft[seg.Aircraft.Code]; ok {
						name = n
					}
					fmt.Fprintf(&b, "**Aircraft**: %s\n", name)
				}
				if k < len(itin.Segments)-1 {
					b.WriteString("*Connection*\n")
				}
			}
		}

		b.WriteString("**Pricing**:\n")
		if offer.Price.Base != "" {
			fmt.Fprintf(&b, "- Base Fare: %s %s\n", offer.Price.Base, offer.Price.Currency)
		}
		fmt.Fprintf(&b, "- Total (inc. taxes): %s %s\n", offer.Price.GrandTotal, offer.Price.Currency)

		if bag := baggageText(offer); bag != "" {
			fmt.Fprintf(&b, "**Baggage**: %s\n", bag)
		}
		fmt.Fprintf(&b, "**Cabin**: %s\n", cabinText(offer, "Economy"))

		b.WriteString("\n---\n\n")
	}

	return b.String()
}

// FormatVerifiedPrices renders the price-verification pass: a compact
// price-focused variant of the option list.
func FormatVerifiedPrices(list *models.OfferList) string {
	var b strings.Builder
	b.WriteString("## Verified Flight Prices\n\n")

	carriers := list.Dictionaries.Carriers

	offers := list.Data
	if len(offers) > priceVerifyMaxResults {
		offers = offers[:priceVerifyMaxResults]
	}

	for i, offer := range offers {
		fmt.Fprintf(&b, "### Option %d: %s %s (ID: %s)\n", i+1, offer.Price.GrandTotal, offer.Price.Currency, offer.ID)

		for j, itin := range offer.Itineraries {
			fmt.Fprintf(&b, "**%s**: %s • %s\n", tripType(j, len(offer.Itineraries)), stopText(itin), PrettyDuration(itin.Duration))

			var segs []string
			for _, seg := range itin.Segments {
				carrierName := seg.CarrierCode
				if name, ok := carriers[seg.CarrierCode]; ok {
					carrierName = name
				}
				segs = append(segs, fmt.Sprintf("%s %s%s", carrierName, seg.CarrierCode, seg.Number))
			}
			fmt.Fprintf(&b, "**Flights**: %s\n", strings.Join(segs, ", "))
		}

		b.WriteString("**Pricing Breakdown**:\n")
		if offer.Price.Base != "" {
			fmt.Fprintf(&b, "- Base Fare: %s %s\n", offer.Price.Base, offer.Price.Currency)
		}
		if offer.Price.Total != "" {
			fmt.Fprintf(&b, "- Total (inc. taxes): %s %s\n", offer.Price.Total, offer.Price.Currency)
		}
		fmt.Fprintf(&b, "- Grand Total: %s %s\n", offer.Price.GrandTotal, offer.Price.Currency)

		if bag := baggageText(offer); bag != "" {
			fmt.Fprintf(&b, "**Baggage**: %s\n", bag)
		}
		fmt.Fprintf(&b, "**Cabin**: %s\n", cabinText(offer, "Unknown"))

		b.WriteString("\n---\n\n")
	}

	if len(list.Data) > priceVerifyMaxResults {
		fmt.Fprintf(&b, "*Showing top %d of %d available flights.*\n", priceVerifyMaxResults, len(list.Data))
	}

	return b.String()
}

func tripType(index, total int) string {
	if total == 1 {
		return "Flight"
	}
	if index == 0 {
		return "Outbound"
	}
	return "Return"
}

func stopText(itin models.Itinerary) string {
	stops := len(itin.Segments) - 1
	switch stops {
	case 0:
		return "Nonstop"
	case 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

var durationReplacer = strings.NewReplacer("PT", "", "H", "h ", "M", "m")

// PrettyDuration turns an ISO-8601 duration like "PT5H30M" into "5h 30m".
func PrettyDuration(d string) string {
	return strings.TrimSpace(durationReplacer.Replace(d))
}

func writePoint(b *strings.Builder, label string, p models.FlightPoint) {
	fmt.Fprintf(b, "**%s**: %s", label, p.IataCode)
	if p.Terminal != "" {
		fmt.Fprintf(b, " Terminal %s", p.Terminal)
	}
	fmt.Fprintf(b, " at %s\n", formatDatetime(p.At))
}

// formatDatetime renders an upstream ISO timestamp as "Mon, Jan 02, 15:04",
// falling back to the raw value when it does not parse.
func formatDatetime(v string) string {
	t, err := time.Parse("2006-01-02T15:04:05", strings.TrimSuffix(v, "Z"))
	if err != nil {
		return v
	}
	return t.Format("Mon, Jan 02, 15:04")
}

func baggageText(offer models.FlightOffer) string {
	for _, tp := range offer.TravelerPricings {
		for _, fd := range tp.FareDetailsBySegment {
			if fd.IncludedCheckedBags == nil {
				continue
			}
			if fd.IncludedCheckedBags.Quantity > 0 {
				return fmt.Sprintf("Checked Bags: %d included", fd.IncludedCheckedBags.Quantity)
			}
			if fd.IncludedCheckedBags.Weight > 0 && fd.IncludedCheckedBags.WeightUnit != "" {
				return fmt.Sprintf("Checked Baggage: %d %s", fd.IncludedCheckedBags.Weight, fd.IncludedCheckedBags.WeightUnit)
			}
		}
	}
	return ""
}

func cabinText(offer models.FlightOffer, fallback string) string {
	var cabins []string
	seen := map[string]bool{}
	for _, tp := range offer.TravelerPricings {
		for _, fd := range tp.FareDetailsBySegment {
			if fd.Cabin != "" && !seen[fd.Cabin] {
				seen[fd.Cabin] = true
				cabins = append(cabins, capitalize(fd.Cabin))
			}
		}
	}
	if len(cabins) == 0 {
		return fallback
	}
	return strings.Join(cabins, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
