package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/store"
)

func TestCreateAndCancelCommands(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 8, 1, 8, 0, 0, 0, time.UTC)
	bookings := store.NewMemoryCollection[models.Booking](func() time.Time { return now })

	b := &models.Booking{UserID: "u1", Status: "confirmed"}
	if err := NewCreateBookingCommand(b, bookings).Execute(ctx); err != nil {
		t.Fatalf("create Execute() error = %v", err)
	}
	if b.ID == "" || !b.CreatedAt.Equal(now) {
		t.Fatalf("created booking not materialized: %+v", b)
	}

	cancelledAt := now.Add(time.Hour)
	b.Status = "cancelled"
	b.CancelledAt = &cancelledAt
	if err := NewCancelBookingCommand(b, bookings).Execute(ctx); err != nil {
		t.Fatalf("cancel Execute() error = %v", err)
	}

	got, err := bookings.FindByID(ctx, b.ID)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}
	if got.Status != "cancelled" || got.CancelledAt == nil || !got.CancelledAt.Equal(cancelledAt) {
		t.Errorf("stored booking = %+v", got)
	}
}

func TestCancelCommandMissingBooking(t *testing.T) {
	bookings := store.NewMemoryCollection[models.Booking](nil)
	at := time.Now()
	cmd := NewCancelBookingCommand(&models.Booking{ID: "ghost", CancelledAt: &at}, bookings)
	if err := cmd.Execute(context.Background()); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Execute() error = %v, want store.ErrNotFound", err)
	}
}
