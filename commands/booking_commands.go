package commands

import (
	"context"

	"github.com/Ramyash8/hotel-reservation-system2/constants"
	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/store"
)

// BookingCommand is a single write against the bookings collection
type BookingCommand interface {
	Execute(ctx context.Context) error
}

// CreateBookingCommand inserts a new booking
type CreateBookingCommand struct {
	booking  *models.Booking
	bookings store.Collection[models.Booking]
}

func NewCreateBookingCommand(booking *models.Booking, bookings store.Collection[models.Booking]) *CreateBookingCommand {
	return &CreateBookingCommand{
		booking:  booking,
		bookings: bookings,
	}
}

func (c *CreateBookingCommand) Execute(ctx context.Context) error {
	return c.bookings.Insert(ctx, c.booking)
}

// CancelBookingCommand writes the cancelled status and timestamp of a booking
// that has already been moved to the cancelled state
type CancelBookingCommand struct {
	booking  *models.Booking
	bookings store.Collection[models.Booking]
}

func NewCancelBookingCommand(booking *models.Booking, bookings store.Collection[models.Booking]) *CancelBookingCommand {
	return &CancelBookingCommand{
		booking:  booking,
		bookings: bookings,
	}
}

func (c *CancelBookingCommand) Execute(ctx context.Context) error {
	return c.bookings.UpdateFields(ctx, c.booking.ID, store.Fields{
		"status":       constants.BookingStatusCancelled,
		"cancelled_at": c.booking.CancelledAt,
	})
}
