package services

import (
	"math"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/dto"
	apperrors "github.com/Ramyash8/hotel-reservation-system2/errors"
	"github.com/Ramyash8/hotel-reservation-system2/utils"
)

// ServiceFeeRate is the share of the stay price shown as a service fee
const ServiceFeeRate = 0.10

// MaxStayTotal bounds a stay price so the total plus its service fee still
// fits in an int64
const MaxStayTotal = math.MaxInt64 / 2

// StayQuote is the price of a stay at a fixed nightly rate
type StayQuote struct {
	Nights      int
	NightlyRate int64
	TotalPrice  int64
}

// PricingCalculator prices stays. Nights are counted as calendar days in loc.
type PricingCalculator struct {
	loc *time.Location
}

func NewPricingCalculator(loc *time.Location) *PricingCalculator {
	if loc == nil {
		loc = time.UTC
	}
	return &PricingCalculator{loc: loc}
}

// Location returns the timezone calendar days are counted in
func (p *PricingCalculator) Location() *time.Location {
	return p.loc
}

// ComputeStay returns the number of nights between from and to and their price
func (p *PricingCalculator) ComputeStay(from, to time.Time, nightlyRate int64) (StayQuote, error) {
	if from.IsZero() || to.IsZero() {
		return StayQuote{}, apperrors.ErrInvalidDateRange
	}
	nights := utils.DaysBetween(from, to, p.loc)
	if nights <= 0 {
		return StayQuote{}, apperrors.ErrInvalidDateRange
	}
	if nightlyRate <= 0 {
		return StayQuote{}, apperrors.ErrInvalidRate
	}
	if nightlyRate > MaxStayTotal/int64(nights) {
		return StayQuote{}, apperrors.ErrPriceOutOfRange
	}
	return StayQuote{
		Nights:      nights,
		NightlyRate: nightlyRate,
		TotalPrice:  int64(nights) * nightlyRate,
	}, nil
}

// ServiceFee is 10% of total rounded to a whole unit, or 0 for an empty total
func ServiceFee(total int64) int64 {
	if total <= 0 {
		return 0
	}
	return int64(math.Round(float64(total) * ServiceFeeRate))
}

// Breakdown is the price shown to a guest. Nothing here is persisted.
func Breakdown(total int64) dto.PriceBreakdown {
	fee := ServiceFee(total)
	return dto.PriceBreakdown{
		TotalPrice: total,
		ServiceFee: fee,
		GrandTotal: total + fee,
	}
}
