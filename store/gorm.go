package store

import (
	"context"
	"errors"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCollection stores documents in a SQL table through GORM
type GormCollection[T any, P Doc[T]] struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormCollection[T any, P Doc[T]](db *gorm.DB, now func() time.Time) *GormCollection[T, P] {
	if now == nil {
		now = time.Now
	}
	return &GormCollection[T, P]{db: db, now: now}
}

// NewGormStore builds a Store backed by db
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Users:    NewGormCollection[models.User](db, nil),
		Hotels:   NewGormCollection[models.Hotel](db, nil),
		Rooms:    NewGormCollection[models.Room](db, nil),
		Bookings: NewGormCollection[models.Booking](db, nil),
	}
}

// AutoMigrate creates or updates the tables of every collection
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Hotel{}, &models.Room{}, &models.Booking{})
}

func (c *GormCollection[T, P]) FindByID(ctx context.Context, id string) (*T, error) {
	var doc T
	err := c.db.WithContext(ctx).Where("id = ?", id).Take(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (c *GormCollection[T, P]) FindWhere(ctx context.Context, filter Filter) ([]T, error) {
	tx := c.db.WithContext(ctx).Order("created_at")
	if len(filter) > 0 {
		tx = tx.Where(map[string]interface{}(filter))
	}

	out := make([]T, 0)
	if err := tx.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (c *GormCollection[T, P]) Insert(ctx context.Context, doc *T) error {
	p := P(doc)
	if p.GetID() == "" {
		p.SetID(uuid.NewString())
	}
	p.SetCreatedAt(c.now())
	return c.db.WithContext(ctx).Create(doc).Error
}

func (c *GormCollection[T, P]) UpdateFields(ctx context.Context, id string, fields Fields) error {
	res := c.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(map[string]interface{}(fields))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
