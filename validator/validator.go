package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Ramyash8/hotel-reservation-system2/constants"
	"github.com/Ramyash8/hotel-reservation-system2/dto"
	apperrors "github.com/Ramyash8/hotel-reservation-system2/errors"
	"github.com/Ramyash8/hotel-reservation-system2/models"

	"github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("hotel_category", isHotelCategory); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("room_price", isRoomPrice); err != nil {
		panic(err)
	}
	return v
}

func isRoomPrice(fl validator.FieldLevel) bool {
	return fl.Field().Int() <= constants.MaxRoomPrice
}

func isHotelCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, c := range constants.HotelCategories {
		if c == value {
			return true
		}
	}
	return false
}

// ValidateBookingRequest checks that every booking field is present
func ValidateBookingRequest(req *models.BookingRequest) error {
	trimmed := *req
	trimmed.UserID = strings.TrimSpace(req.UserID)
	trimmed.RoomID = strings.TrimSpace(req.RoomID)
	trimmed.HotelID = strings.TrimSpace(req.HotelID)

	if err := validate.Struct(&trimmed); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeMissingBookingFields,
			"missing required booking fields: "+strings.Join(fieldNames(err), ", "), nil)
	}
	return nil
}

// ValidateSignup checks a signup request
func ValidateSignup(req *dto.SignupRequest) error {
	return check(req)
}

// ValidateLogin checks a login request
func ValidateLogin(req *dto.LoginRequest) error {
	return check(req)
}

// ValidateNewHotel checks a hotel listing request
func ValidateNewHotel(req *dto.CreateHotelRequest) error {
	return check(req)
}

// ValidateNewRoom checks a room listing request
func ValidateNewRoom(req *dto.CreateRoomRequest) error {
	return check(req)
}

// ValidateStatus checks an approval decision
func ValidateStatus(req *dto.StatusRequest) error {
	if err := validate.Struct(req); err != nil {
		return apperrors.NewAppError(apperrors.ErrCodeInvalidStatus,
			fmt.Sprintf("status must be %s or %s", constants.ApprovalStatusApproved, constants.ApprovalStatusRejected), nil)
	}
	return nil
}

func check(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	return apperrors.NewAppError(apperrors.ErrCodeValidation, describe(err), nil)
}

func fieldNames(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, lowerFirst(fe.Field()))
	}
	return names
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := lowerFirst(fe.Field())
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, field+" is required")
		case "email":
			msgs = append(msgs, field+" must be a valid email")
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s must be greater than %s", field, fe.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, fe.Param()))
		case "room_price":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %d", field, constants.MaxRoomPrice))
		case "hotel_category":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", field, strings.Join(constants.HotelCategories, ", ")))
		default:
			msgs = append(msgs, field+" is invalid")
		}
	}
	return strings.Join(msgs, "; ")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
