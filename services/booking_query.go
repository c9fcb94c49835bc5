package services

import (
	"context"
	"sort"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/constants"
	apperrors "github.com/Ramyash8/hotel-reservation-system2/errors"
	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/services/logger"
	"github.com/Ramyash8/hotel-reservation-system2/store"
	"github.com/Ramyash8/hotel-reservation-system2/utils"
)

// BookingQueryService answers read-only booking lookups
type BookingQueryService struct {
	bookings store.Collection[models.Booking]
	cache    *BookingCache
	logger   logger.Logger
	loc      *time.Location
}

type BookingQueryOptions struct {
	Bookings store.Collection[models.Booking]
	Cache    *BookingCache
	Logger   logger.Logger
	Location *time.Location
}

func NewBookingQueryService(opts BookingQueryOptions) *BookingQueryService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &BookingQueryService{
		bookings: opts.Bookings,
		cache:    opts.Cache,
		logger:   opts.Logger,
		loc:      opts.Location,
	}
}

// ListByUser returns a guest's bookings, latest stay first
func (s *BookingQueryService) ListByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.list(ctx, userBookingsKey(userID), store.Filter{"user_id": userID})
}

// ListByOwner returns the bookings of every hotel an owner had when each
// booking was made, latest stay first
func (s *BookingQueryService) ListByOwner(ctx context.Context, ownerID string) ([]models.Booking, error) {
	return s.list(ctx, ownerBookingsKey(ownerID), store.Filter{"hotel_owner_id": ownerID})
}

// ListAll returns every booking, latest stay first
func (s *BookingQueryService) ListAll(ctx context.Context) ([]models.Booking, error) {
	return s.list(ctx, allBookingsKey, store.Filter{})
}

// GetByID returns one booking
func (s *BookingQueryService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return findOr(ctx, s.bookings, id, apperrors.ErrBookingNotFound)
}

// ArrivalsOn returns confirmed bookings checking in on day
func (s *BookingQueryService) ArrivalsOn(ctx context.Context, day time.Time) ([]models.Booking, error) {
	confirmed, err := s.bookings.FindWhere(ctx, store.Filter{"status": constants.BookingStatusConfirmed})
	if err != nil {
		return nil, apperrors.DBError("failed to load bookings", err)
	}
	target := utils.DayOnly(day, s.loc)
	out := make([]models.Booking, 0)
	for _, b := range confirmed {
		if utils.DayOnly(b.FromDate, s.loc).Equal(target) {
			out = append(out, b)
		}
	}
	SortBookings(out)
	return out, nil
}

func (s *BookingQueryService) list(ctx context.Context, key string, filter store.Filter) ([]models.Booking, error) {
	cacheable := true
	version, err := s.cache.Version(ctx, key)
	if err != nil {
		s.logger.Warn("booking cache version %s failed: %v", key, err)
		cacheable = false
	}
	entry := VersionedKey(key, version)

	if cacheable {
		var cached []models.Booking
		hit, err := s.cache.Get(ctx, entry, &cached)
		if err != nil {
			s.logger.Warn("booking cache read %s failed: %v", entry, err)
		}
		if hit {
			return cached, nil
		}
	}

	bookings, err := s.bookings.FindWhere(ctx, filter)
	if err != nil {
		return nil, apperrors.DBError("failed to load bookings", err)
	}
	SortBookings(bookings)

	if cacheable {
		if err := s.cache.Set(ctx, entry, bookings); err != nil {
			s.logger.Warn("booking cache write %s failed: %v", entry, err)
		}
	}
	return bookings, nil
}

// SortBookings orders by check-in date descending, then by creation time
// descending, then by id
func SortBookings(bookings []models.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		a, b := bookings[i], bookings[j]
		if !a.FromDate.Equal(b.FromDate) {
			return a.FromDate.After(b.FromDate)
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
