package builders

import (
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/constants"
	"github.com/Ramyash8/hotel-reservation-system2/models"
)

// BookingBuilder assembles a booking step by step
type BookingBuilder struct {
	booking *models.Booking
}

// NewBookingBuilder starts a confirmed booking
func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		booking: &models.Booking{Status: constants.BookingStatusConfirmed},
	}
}

// WithUser sets the guest and snapshots their name
func (b *BookingBuilder) WithUser(user *models.User) *BookingBuilder {
	b.booking.UserID = user.ID
	b.booking.UserName = user.Name
	return b
}

// WithHotel sets the hotel and snapshots its display fields and owner
func (b *BookingBuilder) WithHotel(hotel *models.Hotel) *BookingBuilder {
	b.booking.HotelID = hotel.ID
	b.booking.HotelName = hotel.Name
	b.booking.HotelLocation = hotel.Location
	b.booking.CoverImage = hotel.CoverImage
	b.booking.HotelOwnerID = hotel.OwnerID
	return b
}

// WithRoom sets the room and snapshots its title
func (b *BookingBuilder) WithRoom(room *models.Room) *BookingBuilder {
	b.booking.RoomID = room.ID
	b.booking.RoomTitle = room.Title
	return b
}

// WithDates sets the stay
func (b *BookingBuilder) WithDates(from, to time.Time) *BookingBuilder {
	b.booking.FromDate = from
	b.booking.ToDate = to
	return b
}

// WithTotalPrice sets the price
func (b *BookingBuilder) WithTotalPrice(total int64) *BookingBuilder {
	b.booking.TotalPrice = total
	return b
}

// Build returns the booking
func (b *BookingBuilder) Build() *models.Booking {
	return b.booking
}
