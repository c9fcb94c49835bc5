package models

import "time"

type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(16);default:guest" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) GetID() string            { return u.ID }
func (u *User) SetID(id string)          { u.ID = id }
func (u *User) SetCreatedAt(t time.Time) { u.CreatedAt = t }
