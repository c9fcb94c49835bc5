package notification

import (
	"context"
	"fmt"

	"github.com/Ramyash8/hotel-reservation-system2/models"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// Session keys a websocket client subscribes with
const (
	KeyOwnerID = "ownerId"
	KeyUserID  = "userId"
)

// Publisher delivers booking events to interested listeners
type Publisher interface {
	Publish(ctx context.Context, event models.BookingEvent) error
}

// MelodyService pushes events to websocket sessions of the hotel owner and
// the guest of the booking
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) Publish(ctx context.Context, event models.BookingEvent) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.m.BroadcastFilter(payload, func(session *melody.Session) bool {
		return Interested(session, event)
	})
}

// KeyGetter is the part of a websocket session the audience check needs
type KeyGetter interface {
	Get(key string) (interface{}, bool)
}

// Interested reports whether a session subscribed as the event's hotel owner
// or guest
func Interested(session KeyGetter, event models.BookingEvent) bool {
	if v, ok := session.Get(KeyOwnerID); ok && event.HotelOwnerID != "" && v == event.HotelOwnerID {
		return true
	}
	if v, ok := session.Get(KeyUserID); ok && event.UserID != "" && v == event.UserID {
		return true
	}
	return false
}

// Discard drops every event
type Discard struct{}

func (Discard) Publish(context.Context, models.BookingEvent) error { return nil }
