// Package store is the persistence layer behind the services. Each
// collection is addressed by string id and queried by column equality.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/models"
)

// ErrNotFound is returned when no document has the requested id
var ErrNotFound = errors.New("document not found")

// Filter selects documents whose columns equal the given values
type Filter map[string]interface{}

// Fields is a partial update keyed by column name
type Fields map[string]interface{}

// Doc is the pointer side of a stored model
type Doc[T any] interface {
	*T
	GetID() string
	SetID(id string)
	SetCreatedAt(t time.Time)
}

// Collection is a typed view over one table or document collection
type Collection[T any] interface {
	FindByID(ctx context.Context, id string) (*T, error)
	FindWhere(ctx context.Context, filter Filter) ([]T, error)
	// Insert assigns the id and creation time of doc and stores it.
	Insert(ctx context.Context, doc *T) error
	UpdateFields(ctx context.Context, id string, fields Fields) error
}

// Store groups the collections the booking backend works with
type Store struct {
	Users    Collection[models.User]
	Hotels   Collection[models.Hotel]
	Rooms    Collection[models.Room]
	Bookings Collection[models.Booking]
}
