package routes

import (
	"net/http"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/constants"
	"github.com/Ramyash8/hotel-reservation-system2/controllers"
	middlewares "github.com/Ramyash8/hotel-reservation-system2/middleware"
	"github.com/Ramyash8/hotel-reservation-system2/services"
	"github.com/Ramyash8/hotel-reservation-system2/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// Dependencies are the services the HTTP layer calls
type Dependencies struct {
	Facade   *services.BookingFacade
	Queries  *services.BookingQueryService
	Catalog  *services.CatalogService
	Users    *services.UserService
	Melody   *melody.Melody
	Logger   logger.Logger
	Location *time.Location
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	bookingController := controllers.NewBookingController(deps.Facade, deps.Queries, deps.Location)
	catalogController := controllers.NewCatalogController(deps.Catalog)
	userController := controllers.NewUserController(deps.Users)
	notificationController := controllers.NewNotificationController(deps.Melody, deps.Logger)

	admin := middlewares.RoleMiddleware(deps.Users, constants.RoleAdmin)
	owner := middlewares.RoleMiddleware(deps.Users, constants.RoleOwner, constants.RoleAdmin)

	router.Use(middlewares.RequestIDMiddleware(), middlewares.ErrorHandler(deps.Logger))

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	v1 := router.Group("/api/v1")

	v1.POST("/auth/signup", userController.Signup)
	v1.POST("/auth/login", userController.Login)
	v1.GET("/users/:id", userController.GetUser)

	v1.POST("/bookings", bookingController.CreateBooking)
	v1.GET("/bookings", admin, bookingController.ListAllBookings)
	v1.GET("/bookings/:id", bookingController.GetBooking)
	v1.POST("/bookings/:id/cancel", bookingController.CancelBooking)
	v1.GET("/users/:id/bookings", bookingController.ListUserBookings)
	v1.GET("/owners/:id/bookings", bookingController.ListOwnerBookings)
	v1.GET("/quote", bookingController.Quote)

	v1.GET("/hotels", catalogController.SearchHotels)
	v1.POST("/hotels", owner, catalogController.CreateHotel)
	v1.GET("/hotels/:id", catalogController.GetHotel)
	v1.PUT("/hotels/:id/status", admin, catalogController.UpdateHotelStatus)
	v1.POST("/hotels/:id/cover", owner, catalogController.UploadCover)
	v1.GET("/hotels/:id/rooms", catalogController.HotelRooms)
	v1.GET("/owners/:id/hotels", catalogController.OwnerHotels)

	v1.POST("/rooms", owner, catalogController.CreateRoom)
	v1.GET("/rooms/:id", catalogController.GetRoom)
	v1.PUT("/rooms/:id/status", admin, catalogController.UpdateRoomStatus)
	v1.GET("/owners/:id/rooms", catalogController.OwnerRooms)

	v1.GET("/ws/bookings", notificationController.BookingEvents)
}
