package dto

type CreateRoomRequest struct {
	Title       string `json:"title" validate:"required"`
	HotelID     string `json:"hotelId" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       int64  `json:"price" validate:"gt=0,room_price"`
	Capacity    int    `json:"capacity" validate:"gt=0"`
}
