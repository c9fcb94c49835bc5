package dto

import "time"

// CreateBookingRequest is the JSON body of POST /bookings. Dates are either
// YYYY-MM-DD or RFC 3339.
type CreateBookingRequest struct {
	UserID   string `json:"userId"`
	RoomID   string `json:"roomId"`
	HotelID  string `json:"hotelId"`
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
}

// PriceBreakdown is the display price of a stay
type PriceBreakdown struct {
	TotalPrice int64 `json:"totalPrice"`
	ServiceFee int64 `json:"serviceFee"`
	GrandTotal int64 `json:"grandTotal"`
}

// QuoteResponse answers GET /quote
type QuoteResponse struct {
	RoomID      string    `json:"roomId"`
	FromDate    time.Time `json:"fromDate"`
	ToDate      time.Time `json:"toDate"`
	Nights      int       `json:"nights"`
	NightlyRate int64     `json:"nightlyRate"`
	PriceBreakdown
}
