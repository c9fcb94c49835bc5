package models

import (
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/constants"
	apperrors "github.com/Ramyash8/hotel-reservation-system2/errors"
)

// BookingState is the behaviour of a booking in a given status
type BookingState interface {
	Cancel(booking *Booking, at time.Time) error
	Active() bool
}

// ConfirmedState is the state of a live reservation
type ConfirmedState struct{}

func (s *ConfirmedState) Cancel(booking *Booking, at time.Time) error {
	booking.Status = constants.BookingStatusCancelled
	booking.CancelledAt = &at
	return nil
}

func (s *ConfirmedState) Active() bool { return true }

// CancelledState is terminal
type CancelledState struct{}

func (s *CancelledState) Cancel(booking *Booking, at time.Time) error {
	return apperrors.ErrAlreadyCancelled
}

func (s *CancelledState) Active() bool { return false }

// GetBookingState returns the state for a booking status. Unknown statuses
// are treated as confirmed.
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &ConfirmedState{}
	}
}
