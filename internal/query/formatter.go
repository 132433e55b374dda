package query

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxDisplayed caps how many events a digest lists regardless of the
// total count.
const maxDisplayed = 10

// noEventsMessage is the fixed digest for an empty result set.
const noEventsMessage = "No events found matching your criteria."

// Formatter renders event lists into deterministic human-readable
// digests, suitable both as direct tool output and as model context.
type Formatter struct{}

// NewFormatter builds a Formatter.
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format renders events into a digest. It is total: an empty list
// yields the fixed no-events sentence. At most the first ten events
// are listed, in caller order; the header always states the full
// count.
func (f *Formatter) Format(events []EventRecord) string {
	if len(events) == 0 {
		return noEventsMessage
	}

	parts := []string{fmt.Sprintf("Found %d relevant events:", len(events))}

	display := events
	if len(display) > maxDisplayed {
		display = display[:maxDisplayed]
	}

	for i, event := range display {
		info := []string{
			fmt.Sprintf("**%s**", event.Title),
			fmt.Sprintf("  - Group: %s", event.GroupName),
			fmt.Sprintf("  - Date: %s", event.StartTime.Format("2006-01-02 15:04")),
		}

		if event.IsOnline {
			info = append(info, "  - Location: Online/Remote")
		} else if event.VenueName != "" {
			location := event.VenueName
			if event.VenueCity != "" {
				location += ", " + event.VenueCity
			}
			info = append(info, fmt.Sprintf("  - Location: %s", location))
		}

		if event.AttendeeCount != 0 {
			info = append(info, fmt.Sprintf("  - Attendees: %d", event.AttendeeCount))
		}

		if event.FeeAmount != 0 {
			currency := event.FeeCurrency
			if currency == "" {
				currency = "USD"
			}
			info = append(info, fmt.Sprintf("  - Fee: %s %s", formatAmount(event.FeeAmount), currency))
		} else {
			info = append(info, "  - Fee: Free")
		}

		info = append(info, fmt.Sprintf("  - URL: %s", event.URL))

		parts = append(parts, fmt.Sprintf("\n%d. ", i+1)+strings.Join(info, "\n"))
	}

	if extra := len(events) - maxDisplayed; extra > 0 {
		parts = append(parts, fmt.Sprintf("\n... and %d more events not shown.", extra))
	}

	return strings.Join(parts, "\n")
}

// formatAmount renders a fee amount with at least one decimal place,
// so a whole-number fee reads "15.0" rather than "15".
func formatAmount(amount float64) string {
	if amount == math.Trunc(amount) {
		return strconv.FormatFloat(amount, 'f', 1, 64)
	}
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
