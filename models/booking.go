package models

import "time"

// Booking is a reservation of one room for a date range.
//
// HotelName, HotelLocation, RoomTitle, CoverImage, UserName and HotelOwnerID
// are copied from the hotel, room and user when the booking is created and
// are not refreshed afterwards.
type Booking struct {
	ID            string     `gorm:"primaryKey;type:varchar(36)" json:"id"`
	UserID        string     `gorm:"index;type:varchar(36);not null" json:"userId"`
	RoomID        string     `gorm:"index;type:varchar(36);not null" json:"roomId"`
	HotelID       string     `gorm:"type:varchar(36);not null" json:"hotelId"`
	FromDate      time.Time  `gorm:"not null" json:"fromDate"`
	ToDate        time.Time  `gorm:"not null" json:"toDate"`
	TotalPrice    int64      `gorm:"not null" json:"totalPrice"`
	Status        string     `gorm:"type:varchar(16);not null" json:"status"`
	CreatedAt     time.Time  `json:"createdAt"`
	CancelledAt   *time.Time `json:"cancelledAt,omitempty"`
	HotelName     string     `json:"hotelName"`
	HotelLocation string     `json:"hotelLocation"`
	RoomTitle     string     `json:"roomTitle"`
	CoverImage    string     `json:"coverImage"`
	UserName      string     `json:"userName"`
	HotelOwnerID  string     `gorm:"index;type:varchar(36)" json:"hotelOwnerId"`
}

func (b *Booking) GetID() string            { return b.ID }
func (b *Booking) SetID(id string)          { b.ID = id }
func (b *Booking) SetCreatedAt(t time.Time) { b.CreatedAt = t }

// BookingRequest carries the caller supplied part of a new booking
type BookingRequest struct {
	UserID   string    `json:"userId" validate:"required"`
	RoomID   string    `json:"roomId" validate:"required"`
	HotelID  string    `json:"hotelId" validate:"required"`
	FromDate time.Time `json:"fromDate" validate:"required"`
	ToDate   time.Time `json:"toDate" validate:"required"`
}

// BookingEvent is pushed to websocket subscribers when a booking changes
type BookingEvent struct {
	Type         string    `json:"type"`
	BookingID    string    `json:"bookingId"`
	HotelID      string    `json:"hotelId"`
	HotelOwnerID string    `json:"hotelOwnerId"`
	UserID       string    `json:"userId"`
	Status       string    `json:"status"`
	FromDate     time.Time `json:"fromDate"`
	ToDate       time.Time `json:"toDate"`
	OccurredAt   time.Time `json:"occurredAt"`
}

// NewBookingEvent builds an event of the given type for b
func NewBookingEvent(eventType string, b *Booking, at time.Time) BookingEvent {
	return BookingEvent{
		Type:         eventType,
		BookingID:    b.ID,
		HotelID:      b.HotelID,
		HotelOwnerID: b.HotelOwnerID,
		UserID:       b.UserID,
		Status:       b.Status,
		FromDate:     b.FromDate,
		ToDate:       b.ToDate,
		OccurredAt:   at,
	}
}
