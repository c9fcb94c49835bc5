package main

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/config"
	"github.com/Ramyash8/hotel-reservation-system2/jobs"
	"github.com/Ramyash8/hotel-reservation-system2/routes"
	"github.com/Ramyash8/hotel-reservation-system2/services"
	"github.com/Ramyash8/hotel-reservation-system2/services/logger"
	"github.com/Ramyash8/hotel-reservation-system2/services/notification"
	"github.com/Ramyash8/hotel-reservation-system2/store"
)

func main() {
	config.LoadEnv()

	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	appLogger := logger.NewDefaultLogger(logger.ParseLevel(settings.LogLevel))
	if settings.LogDir != "" {
		logFile, err := logger.OpenDailyFile(settings.LogDir, time.Now())
		if err != nil {
			log.Fatalf("Failed to open log file: %v", err)
		}
		defer logFile.Close()
		appLogger.WithOutput(io.MultiWriter(os.Stderr, logFile))
	}
	ctx := context.Background()

	var st *store.Store
	if settings.Env == config.EnvLocal {
		appLogger.Info("ENV=local, using the in-memory store")
		st = store.NewMemoryStore(nil)
	} else {
		db, err := config.ConnectDB(settings.DBDSN, appLogger)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		st = store.NewGormStore(db)
	}

	rdb, err := config.ConnectRedis(ctx, settings, appLogger)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	cld, err := config.ConnectCloudinary(settings, appLogger)
	if err != nil {
		log.Fatalf("Failed to initialize Cloudinary: %v", err)
	}

	router, m, c := config.InitApp(settings)

	cache := services.NewBookingCache(rdb, settings.CacheTTL)
	publisher := notification.NewMelodyService(m)
	pricing := services.NewPricingCalculator(settings.Location)

	var guard services.AvailabilityGuard
	if settings.PreventOverlap {
		appLogger.Info("overlapping bookings will be rejected")
		guard = services.NewOverlapGuard(st.Bookings, settings.Location)
	}

	facade := services.NewBookingFacade(services.BookingFacadeOptions{
		Store:     st,
		Pricing:   pricing,
		Guard:     guard,
		Publisher: publisher,
		Cache:     cache,
		Logger:    appLogger.WithField("component", "bookings"),
	})
	queries := services.NewBookingQueryService(services.BookingQueryOptions{
		Bookings: st.Bookings,
		Cache:    cache,
		Logger:   appLogger.WithField("component", "booking-queries"),
		Location: settings.Location,
	})

	catalogOpts := services.CatalogServiceOptions{Store: st, Logger: appLogger.WithField("component", "catalog")}
	if cld != nil {
		catalogOpts.Uploader = services.NewCloudinaryUploader(cld, "hotels")
	}
	catalog := services.NewCatalogService(catalogOpts)

	users := services.NewUserService(services.UserServiceOptions{
		Users:  st.Users,
		Logger: appLogger.WithField("component", "users"),
	})
	if settings.Env == config.EnvLocal {
		if err := users.Seed(ctx, services.DefaultSeedUsers); err != nil {
			log.Fatalf("Failed to seed users: %v", err)
		}
	}

	jobs.SetArrivalAnnouncer(services.NewArrivalService(queries, publisher, appLogger.WithField("component", "arrivals"), nil))
	if err := jobs.InitCronJobs(c, appLogger); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}
	defer c.Stop()

	routes.SetupRoutes(router, routes.Dependencies{
		Facade:   facade,
		Queries:  queries,
		Catalog:  catalog,
		Users:    users,
		Melody:   m,
		Logger:   appLogger,
		Location: settings.Location,
	})

	appLogger.Info("server starting on port %s", settings.Port)
	if err := router.Run(":" + settings.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
