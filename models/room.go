package models

import (
	"time"

	"github.com/lib/pq"
)

type Room struct {
	ID          string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	HotelID     string         `gorm:"index;type:varchar(36)" json:"hotelId"`
	Description string         `json:"description"`
	Price       int64          `gorm:"not null" json:"price"`
	Images      pq.StringArray `gorm:"type:text[]" json:"images"`
	Capacity    int            `json:"capacity"`
	Status      string         `gorm:"type:varchar(16);default:pending" json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
}

func (r *Room) GetID() string            { return r.ID }
func (r *Room) SetID(id string)          { r.ID = id }
func (r *Room) SetCreatedAt(t time.Time) { r.CreatedAt = t }

// OwnerRoom is a room listed together with the name of its hotel
type OwnerRoom struct {
	Room
	HotelName string `json:"hotelName"`
}
