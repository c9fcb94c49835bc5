package services

import (
	"context"
	"testing"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/store"
)

func TestSortBookings(t *testing.T) {
	created := testNow
	bookings := []models.Booking{
		{ID: "a", FromDate: day(2024, 8, 1), CreatedAt: created},
		{ID: "b", FromDate: day(2024, 9, 1), CreatedAt: created},
		{ID: "d", FromDate: day(2024, 8, 15), CreatedAt: created},
		{ID: "c", FromDate: day(2024, 8, 15), CreatedAt: created},
		{ID: "e", FromDate: day(2024, 8, 15), CreatedAt: created.Add(time.Minute)},
	}

	SortBookings(bookings)

	want := []string{"b", "e", "c", "d", "a"}
	for i, id := range want {
		if bookings[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, bookings[i].ID, id)
		}
	}
}

func TestListByUserOrdering(t *testing.T) {
	ctx := context.Background()
	bookings := store.NewMemoryCollection[models.Booking](func() time.Time { return testNow })
	for _, b := range []models.Booking{
		{ID: "early", UserID: "u1", HotelOwnerID: "o1", FromDate: day(2024, 7, 1)},
		{ID: "late", UserID: "u1", HotelOwnerID: "o2", FromDate: day(2024, 12, 1)},
		{ID: "other", UserID: "u2", HotelOwnerID: "o1", FromDate: day(2024, 10, 1)},
		{ID: "middle", UserID: "u1", HotelOwnerID: "o1", FromDate: day(2024, 9, 1)},
	} {
		b := b
		if err := bookings.Insert(ctx, &b); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	q := NewBookingQueryService(BookingQueryOptions{Bookings: bookings})

	tests := []struct {
		name string
		list func() ([]models.Booking, error)
		want []string
	}{
		{"by user", func() ([]models.Booking, error) { return q.ListByUser(ctx, "u1") }, []string{"late", "middle", "early"}},
		{"by owner", func() ([]models.Booking, error) { return q.ListByOwner(ctx, "o1") }, []string{"other", "middle", "early"}},
		{"all", func() ([]models.Booking, error) { return q.ListAll(ctx) }, []string{"late", "other", "middle", "early"}},
		{"unknown user", func() ([]models.Booking, error) { return q.ListByUser(ctx, "nobody") }, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.list()
			if err != nil {
				t.Fatalf("list error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d bookings, want %d", len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("position %d = %q, want %q", i, got[i].ID, id)
				}
			}
		})
	}
}

func TestArrivalsOn(t *testing.T) {
	ctx := context.Background()
	bookings := store.NewMemoryCollection[models.Booking](nil)
	for _, b := range []models.Booking{
		{ID: "today", Status: "confirmed", FromDate: day(2024, 8, 1).Add(15 * time.Hour)},
		{ID: "today-cancelled", Status: "cancelled", FromDate: day(2024, 8, 1)},
		{ID: "tomorrow", Status: "confirmed", FromDate: day(2024, 8, 2)},
	} {
		b := b
		if err := bookings.Insert(ctx, &b); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	q := NewBookingQueryService(BookingQueryOptions{Bookings: bookings, Location: time.UTC})
	got, err := q.ArrivalsOn(ctx, testNow)
	if err != nil {
		t.Fatalf("ArrivalsOn() error = %v", err)
	}
	if len(got) != 1 || got[0].ID != "today" {
		t.Errorf("ArrivalsOn() = %+v, want only the confirmed arrival of today", got)
	}
}
