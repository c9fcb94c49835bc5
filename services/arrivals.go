package services

import (
	"context"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/constants"
	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/services/logger"
	"github.com/Ramyash8/hotel-reservation-system2/services/notification"
)

// ArrivalService tells owners and guests about stays starting today
type ArrivalService struct {
	queries   *BookingQueryService
	publisher notification.Publisher
	logger    logger.Logger
	now       func() time.Time
}

func NewArrivalService(queries *BookingQueryService, publisher notification.Publisher, log logger.Logger, now func() time.Time) *ArrivalService {
	if log == nil {
		log = logger.Nop()
	}
	if now == nil {
		now = time.Now
	}
	return &ArrivalService{queries: queries, publisher: publisher, logger: log, now: now}
}

// AnnounceArrivals publishes one arrival event per confirmed booking checking
// in on day and returns how many were sent
func (s *ArrivalService) AnnounceArrivals(ctx context.Context, day time.Time) (int, error) {
	arrivals, err := s.queries.ArrivalsOn(ctx, day)
	if err != nil {
		return 0, err
	}
	sent := 0
	for i := range arrivals {
		event := models.NewBookingEvent(constants.EventBookingArrival, &arrivals[i], s.now())
		if err := s.publisher.Publish(ctx, event); err != nil {
			s.logger.Error("failed to announce arrival of booking %s: %v", arrivals[i].ID, err)
			continue
		}
		sent++
	}
	return sent, nil
}
