package dto

type CreateHotelRequest struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
	OwnerID     string `json:"ownerId" validate:"required"`
	Category    string `json:"category" validate:"omitempty,hotel_category"`
}

// HotelSearchResponse is the result of a destination search. Suggestion is
// set when nothing matched and a known destination is close to the query.
type HotelSearchResponse[T any] struct {
	Hotels     []T    `json:"hotels"`
	Suggestion string `json:"suggestion,omitempty"`
}
