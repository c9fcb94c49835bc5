package response

import (
	"net/http"

	apperrors "github.com/Ramyash8/hotel-reservation-system2/errors"

	"github.com/gin-gonic/gin"
)

// Response is the envelope of every JSON answer
type Response struct {
	Code       int         `json:"code"`
	Mess       string      `json:"mess"`
	ErrorCode  string      `json:"errorCode,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// Success answers 200 with data
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
	})
}

// Created answers 201 with data
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code: 1,
		Mess: "Created",
		Data: data,
	})
}

// SuccessWithPagination answers 200 with one page of data
func SuccessWithPagination(c *gin.Context, data interface{}, page, limit, total int) {
	c.JSON(http.StatusOK, Response{
		Code: 1,
		Mess: "Success",
		Data: data,
		Pagination: &Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
		},
	})
}

// AppError answers with the status matching the error code
func AppError(c *gin.Context, err *apperrors.AppError) {
	c.JSON(StatusFor(err.Code), Response{
		Code:      0,
		Mess:      err.Message,
		ErrorCode: string(err.Code),
	})
}

// StatusFor maps an error code to an HTTP status
func StatusFor(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeBookingNotFound, apperrors.ErrCodeRoomNotFound,
		apperrors.ErrCodeHotelNotFound, apperrors.ErrCodeUserNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeAlreadyCancelled, apperrors.ErrCodeRoomUnavailable, apperrors.ErrCodeUserExists:
		return http.StatusConflict
	case apperrors.ErrCodeMissingBookingFields, apperrors.ErrCodeInvalidDateRange, apperrors.ErrCodeInvalidRate, apperrors.ErrCodePriceOutOfRange,
		apperrors.ErrCodeCheckInPassed, apperrors.ErrCodeValidation, apperrors.ErrCodeInvalidStatus:
		return http.StatusBadRequest
	case apperrors.ErrCodeInvalidCredentials:
		return http.StatusUnauthorized
	case apperrors.ErrCodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// ServerError answers 500
func ServerError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 0,
		Mess: "Internal server error",
	})
}

// Unauthorized answers 401
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Response{
		Code: 0,
		Mess: "Unauthorized",
	})
}

// Forbidden answers 403
func Forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, Response{
		Code: 0,
		Mess: "Access denied",
	})
}

// NotFound answers 404
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, Response{
		Code: 0,
		Mess: "Not found",
	})
}

// BadRequest answers 400 with message
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 0,
		Mess: message,
	})
}
