package quote

import (
	"errors"
	"math"
)

// ErrInvalidDistance reports a negative or non-finite distance. The calculator
// rejects bad input explicitly instead of assuming a well-formed caller.
var ErrInvalidDistance = errors.New("invalid distance")

// Pricing holds the travel-surcharge policy. Both values are business policy,
// not structure: they come from config and must stay overridable.
type Pricing struct {
	FreeRadiusKm float64
	RatePerKm    int64
}

// DefaultPricing matches the pool-cleaning demo: no charge within 5 km of
// base, 300 pesos per km beyond it.
var DefaultPricing = Pricing{FreeRadiusKm: 5, RatePerKm: 300}

// TravelSurcharge is zero within the free radius, otherwise distance times the
// per-km rate, doubled for the round trip.
func (p Pricing) TravelSurcharge(distanceKm float64) (int64, error) {
	if distanceKm < 0 || math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return 0, ErrInvalidDistance
	}
	if distanceKm <= p.FreeRadiusKm {
		return 0, nil
	}
	return int64(math.Round(distanceKm * float64(p.RatePerKm) * 2)), nil
}

// QuoteTotal is the fixed service price plus the travel surcharge for the
// selected zone's distance.
func (p Pricing) QuoteTotal(servicePrice int64, distanceKm float64) (int64, error) {
	surcharge, err := p.TravelSurcharge(distanceKm)
	if err != nil {
		return 0, err
	}
	return servicePrice + surcharge, nil
}
