package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/constants"
)

func TestAnnounceArrivals(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, from := range []int{1, 1, 2} {
		if _, err := f.facade.CreateBooking(ctx, request(day(2024, 8, from), day(2024, 8, from+2))); err != nil {
			t.Fatalf("CreateBooking() error = %v", err)
		}
	}

	pub := &recordingPublisher{}
	arrivals := NewArrivalService(f.queries, pub, nil, func() time.Time { return testNow })

	sent, err := arrivals.AnnounceArrivals(ctx, testNow)
	if err != nil {
		t.Fatalf("AnnounceArrivals() error = %v", err)
	}
	if sent != 2 || len(pub.events) != 2 {
		t.Fatalf("sent %d, published %d, want 2", sent, len(pub.events))
	}
	for _, e := range pub.events {
		if e.Type != constants.EventBookingArrival || e.HotelOwnerID != "owner1" {
			t.Errorf("event = %+v", e)
		}
	}

	pub.err = errors.New("hub down")
	sent, err = arrivals.AnnounceArrivals(ctx, testNow)
	if err != nil || sent != 0 {
		t.Errorf("AnnounceArrivals() with failing hub = %d, %v; want 0, nil", sent, err)
	}
}
