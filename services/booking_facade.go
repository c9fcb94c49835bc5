package services

import (
	"context"
	"errors"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/builders"
	"github.com/Ramyash8/hotel-reservation-system2/commands"
	"github.com/Ramyash8/hotel-reservation-system2/constants"
	"github.com/Ramyash8/hotel-reservation-system2/dto"
	apperrors "github.com/Ramyash8/hotel-reservation-system2/errors"
	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/services/logger"
	"github.com/Ramyash8/hotel-reservation-system2/services/notification"
	"github.com/Ramyash8/hotel-reservation-system2/store"
	"github.com/Ramyash8/hotel-reservation-system2/utils"
	"github.com/Ramyash8/hotel-reservation-system2/validator"
)

// BookingFacade creates and cancels bookings
type BookingFacade struct {
	store     *store.Store
	pricing   *PricingCalculator
	guard     AvailabilityGuard
	publisher notification.Publisher
	cache     *BookingCache
	logger    logger.Logger
	now       func() time.Time
}

type BookingFacadeOptions struct {
	Store   *store.Store
	Pricing *PricingCalculator
	// Guard is optional. Without it overlapping stays of one room are accepted.
	Guard     AvailabilityGuard
	Publisher notification.Publisher
	Cache     *BookingCache
	Logger    logger.Logger
	Now       func() time.Time
}

func NewBookingFacade(opts BookingFacadeOptions) *BookingFacade {
	if opts.Pricing == nil {
		opts.Pricing = NewPricingCalculator(time.UTC)
	}
	if opts.Publisher == nil {
		opts.Publisher = notification.Discard{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &BookingFacade{
		store:     opts.Store,
		pricing:   opts.Pricing,
		guard:     opts.Guard,
		publisher: opts.Publisher,
		cache:     opts.Cache,
		logger:    opts.Logger,
		now:       opts.Now,
	}
}

// CreateBooking prices and stores a confirmed booking. The returned booking
// carries the id and creation time assigned by the store.
func (f *BookingFacade) CreateBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if err := validator.ValidateBookingRequest(&req); err != nil {
		return nil, err
	}

	room, err := findOr(ctx, f.store.Rooms, req.RoomID, apperrors.ErrRoomNotFound)
	if err != nil {
		return nil, err
	}
	hotel, err := findOr(ctx, f.store.Hotels, req.HotelID, apperrors.ErrHotelNotFound)
	if err != nil {
		return nil, err
	}
	user, err := findOr(ctx, f.store.Users, req.UserID, apperrors.ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	quote, err := f.pricing.ComputeStay(req.FromDate, req.ToDate, room.Price)
	if err != nil {
		return nil, err
	}

	if f.guard != nil {
		if err := f.guard.CheckAvailable(ctx, room.ID, req.FromDate, req.ToDate); err != nil {
			return nil, err
		}
	}

	booking := builders.NewBookingBuilder().
		WithUser(user).
		WithHotel(hotel).
		WithRoom(room).
		WithDates(req.FromDate, req.ToDate).
		WithTotalPrice(quote.TotalPrice).
		Build()

	if err := commands.NewCreateBookingCommand(booking, f.store.Bookings).Execute(ctx); err != nil {
		return nil, apperrors.DBError("failed to create booking", err)
	}

	f.logger.Info("booking %s created: room=%s user=%s nights=%d total=%d",
		booking.ID, booking.RoomID, booking.UserID, quote.Nights, booking.TotalPrice)
	f.afterWrite(ctx, constants.EventBookingCreated, booking)
	return booking, nil
}

// CancelBooking marks a booking cancelled. Cancelling on the check-in day is
// allowed; afterwards it is not.
func (f *BookingFacade) CancelBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := findOr(ctx, f.store.Bookings, bookingID, apperrors.ErrBookingNotFound)
	if err != nil {
		return nil, err
	}

	now := f.now()
	cancelled := *booking
	if err := models.GetBookingState(booking.Status).Cancel(&cancelled, now); err != nil {
		return nil, err
	}

	loc := f.pricing.Location()
	if utils.DayOnly(booking.FromDate, loc).Before(utils.DayOnly(now, loc)) {
		return nil, apperrors.ErrCheckInPassed
	}

	if err := commands.NewCancelBookingCommand(&cancelled, f.store.Bookings).Execute(ctx); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.ErrBookingNotFound
		}
		return nil, apperrors.DBError("failed to cancel booking", err)
	}

	f.logger.Info("booking %s cancelled", cancelled.ID)
	f.afterWrite(ctx, constants.EventBookingCancelled, &cancelled)
	return &cancelled, nil
}

// Quote prices a prospective stay in a room without booking it
func (f *BookingFacade) Quote(ctx context.Context, roomID string, from, to time.Time) (*dto.QuoteResponse, error) {
	room, err := findOr(ctx, f.store.Rooms, roomID, apperrors.ErrRoomNotFound)
	if err != nil {
		return nil, err
	}
	quote, err := f.pricing.ComputeStay(from, to, room.Price)
	if err != nil {
		return nil, err
	}
	return &dto.QuoteResponse{
		RoomID:         room.ID,
		FromDate:       from,
		ToDate:         to,
		Nights:         quote.Nights,
		NightlyRate:    quote.NightlyRate,
		PriceBreakdown: Breakdown(quote.TotalPrice),
	}, nil
}

// afterWrite drops cached lists and notifies listeners. Failures are logged
// and never undo the write.
func (f *BookingFacade) afterWrite(ctx context.Context, eventType string, booking *models.Booking) {
	keys := []string{userBookingsKey(booking.UserID), ownerBookingsKey(booking.HotelOwnerID), allBookingsKey}
	if err := f.cache.Invalidate(ctx, keys...); err != nil {
		f.logger.Warn("failed to invalidate booking cache for %s: %v", booking.ID, err)
	}
	if err := f.publisher.Publish(ctx, models.NewBookingEvent(eventType, booking, f.now())); err != nil {
		f.logger.Error("failed to publish %s for booking %s: %v", eventType, booking.ID, err)
	}
}

// findOr loads a document by id, turning a miss into notFound
func findOr[T any](ctx context.Context, c store.Collection[T], id string, notFound *apperrors.AppError) (*T, error) {
	doc, err := c.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, notFound
	}
	if err != nil {
		return nil, apperrors.DBError("failed to load document", err)
	}
	return doc, nil
}
