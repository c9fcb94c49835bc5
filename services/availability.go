package services

import (
	"context"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/constants"
	apperrors "github.com/Ramyash8/hotel-reservation-system2/errors"
	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/store"
	"github.com/Ramyash8/hotel-reservation-system2/utils"
)

// AvailabilityGuard decides whether a room can take a new stay. The booking
// facade runs without one unless configured.
type AvailabilityGuard interface {
	CheckAvailable(ctx context.Context, roomID string, from, to time.Time) error
}

// OverlapGuard rejects stays that share a night with a confirmed booking of
// the same room. The check and the insert are separate calls, so two
// concurrent requests can still both pass.
type OverlapGuard struct {
	bookings store.Collection[models.Booking]
	loc      *time.Location
}

func NewOverlapGuard(bookings store.Collection[models.Booking], loc *time.Location) *OverlapGuard {
	if loc == nil {
		loc = time.UTC
	}
	return &OverlapGuard{bookings: bookings, loc: loc}
}

func (g *OverlapGuard) CheckAvailable(ctx context.Context, roomID string, from, to time.Time) error {
	existing, err := g.bookings.FindWhere(ctx, store.Filter{
		"room_id": roomID,
		"status":  constants.BookingStatusConfirmed,
	})
	if err != nil {
		return apperrors.DBError("failed to load room bookings", err)
	}
	for _, b := range existing {
		if utils.RangesOverlap(from, to, b.FromDate, b.ToDate, g.loc) {
			return apperrors.ErrRoomUnavailable
		}
	}
	return nil
}
