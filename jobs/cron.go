package jobs

import (
	"context"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/services/logger"

	"github.com/robfig/cron/v3"
)

// ArrivalsSchedule runs the arrivals announcement every morning
const ArrivalsSchedule = "0 7 * * *"

// ArrivalAnnouncer sends the arrival notifications of a day
type ArrivalAnnouncer interface {
	AnnounceArrivals(ctx context.Context, day time.Time) (int, error)
}

var arrivalAnnouncer ArrivalAnnouncer

// SetArrivalAnnouncer sets the implementation the cron job calls
func SetArrivalAnnouncer(a ArrivalAnnouncer) {
	arrivalAnnouncer = a
}

// RunArrivals announces today's arrivals once
func RunArrivals(ctx context.Context, now time.Time, log logger.Logger) {
	if arrivalAnnouncer == nil {
		log.Error("arrival announcer is not set")
		return
	}
	sent, err := arrivalAnnouncer.AnnounceArrivals(ctx, now)
	if err != nil {
		log.Error("failed to announce arrivals: %v", err)
		return
	}
	log.Info("announced %d arrivals for %s", sent, now.Format("2006-01-02"))
}

// InitCronJobs registers the jobs and starts the scheduler
func InitCronJobs(c *cron.Cron, log logger.Logger) error {
	_, err := c.AddFunc(ArrivalsSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		RunArrivals(ctx, time.Now(), log)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Info("cron jobs initialized")
	return nil
}
