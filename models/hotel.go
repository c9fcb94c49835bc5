package models

import "time"

type Hotel struct {
	ID          string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Location    string    `gorm:"not null" json:"location"`
	Description string    `json:"description"`
	OwnerID     string    `gorm:"index;type:varchar(36)" json:"ownerId"`
	Status      string    `gorm:"type:varchar(16);default:pending" json:"status"`
	CoverImage  string    `json:"coverImage"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (h *Hotel) GetID() string            { return h.ID }
func (h *Hotel) SetID(id string)          { h.ID = id }
func (h *Hotel) SetCreatedAt(t time.Time) { h.CreatedAt = t }
