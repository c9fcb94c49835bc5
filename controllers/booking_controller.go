package controllers

import (
	"strconv"
	"strings"
	"time"

	"github.com/Ramyash8/hotel-reservation-system2/dto"
	apperrors "github.com/Ramyash8/hotel-reservation-system2/errors"
	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/response"
	"github.com/Ramyash8/hotel-reservation-system2/services"
	"github.com/Ramyash8/hotel-reservation-system2/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	facade  *services.BookingFacade
	queries *services.BookingQueryService
	loc     *time.Location
}

func NewBookingController(facade *services.BookingFacade, queries *services.BookingQueryService, loc *time.Location) *BookingController {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingController{facade: facade, queries: queries, loc: loc}
}

// parseOptionalDate returns the zero time for an empty value
func (ctl *BookingController) parseOptionalDate(field, value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := utils.ParseDate(value, ctl.loc)
	if err != nil {
		return time.Time{}, apperrors.NewAppError(apperrors.ErrCodeValidation,
			field+" must be YYYY-MM-DD or an RFC 3339 timestamp", err)
	}
	return t, nil
}

func (ctl *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	from, err := ctl.parseOptionalDate("fromDate", req.FromDate)
	if err != nil {
		_ = c.Error(err)
		return
	}
	to, err := ctl.parseOptionalDate("toDate", req.ToDate)
	if err != nil {
		_ = c.Error(err)
		return
	}

	booking, err := ctl.facade.CreateBooking(c.Request.Context(), models.BookingRequest{
		UserID:   req.UserID,
		RoomID:   req.RoomID,
		HotelID:  req.HotelID,
		FromDate: from,
		ToDate:   to,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, booking)
}

func (ctl *BookingController) CancelBooking(c *gin.Context) {
	booking, err := ctl.facade.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, booking)
}

func (ctl *BookingController) GetBooking(c *gin.Context) {
	booking, err := ctl.queries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, booking)
}

func (ctl *BookingController) ListUserBookings(c *gin.Context) {
	bookings, err := ctl.queries.ListByUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, bookings)
}

func (ctl *BookingController) ListOwnerBookings(c *gin.Context) {
	bookings, err := ctl.queries.ListByOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, bookings)
}

// ListAllBookings is the paginated admin view
func (ctl *BookingController) ListAllBookings(c *gin.Context) {
	bookings, err := ctl.queries.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	page, limit := pageParams(c)
	response.SuccessWithPagination(c, paginate(bookings, page, limit), page, limit, len(bookings))
}

func (ctl *BookingController) Quote(c *gin.Context) {
	roomID := c.Query("roomId")
	if roomID == "" {
		response.BadRequest(c, "roomId is required")
		return
	}
	from, err := ctl.parseOptionalDate("fromDate", c.Query("fromDate"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	to, err := ctl.parseOptionalDate("toDate", c.Query("toDate"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	quote, err := ctl.facade.Quote(c.Request.Context(), roomID, from, to)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, quote)
}

// maxPageLimit caps ?limit on paginated lists
const maxPageLimit = 100

// pageParams reads ?page (from 0) and ?limit (default 10, at most maxPageLimit)
func pageParams(c *gin.Context) (int, int) {
	page := 0
	limit := 10
	if parsed, err := strconv.Atoi(c.Query("page")); err == nil && parsed >= 0 {
		page = parsed
	}
	if parsed, err := strconv.Atoi(c.Query("limit")); err == nil && parsed > 0 {
		limit = parsed
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

func paginate[T any](items []T, page, limit int) []T {
	if page < 0 || limit <= 0 || page >= (len(items)+limit-1)/limit {
		return []T{}
	}
	start := page * limit
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
