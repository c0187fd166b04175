// Package pricing computes booking totals from a service's per-day rate and a
// date range. Amounts are plain decimal EUR values; there is no minor-unit
// handling.
package pricing

import (
	"math"
	"time"

	"github.com/tassuhoiva/booking-api/internal/model"
)

// DateLayout is the wire format the booking form submits dates in.
const DateLayout = "2006-01-02"

// ComputeTotal returns the total price for booking svc from startDate to
// endDate, both inclusive: a single-day booking (start == end) counts as one
// day. The range is taken by absolute difference, so an inverted range prices
// the same as the swapped one. Returns 0 when the service is missing or
// either date does not parse.
func ComputeTotal(svc *model.Service, startDate, endDate string) float64 {
	if svc == nil || startDate == "" || endDate == "" {
		return 0
	}

	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return 0
	}

	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours()/24)) + 1

	return svc.Price * float64(days)
}
