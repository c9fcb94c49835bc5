package middleware

import (
	"context"
	"errors"

	apperrors "github.com/Ramyash8/hotel-reservation-system2/errors"
	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/response"
	"github.com/Ramyash8/hotel-reservation-system2/services/logger"

	"github.com/gin-gonic/gin"
)

// UserHeader names the caller. It selects a role only and is not a credential.
const UserHeader = "X-User-ID"

// UserLookup resolves the caller of a request
type UserLookup interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// RoleMiddleware lets the request through when the caller has one of roles
func RoleMiddleware(users UserLookup, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserHeader)
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, apperrors.ErrUserNotFound) {
				response.Unauthorized(c)
			} else {
				response.ServerError(c)
			}
			c.Abort()
			return
		}

		hasRole := len(roles) == 0
		for _, role := range roles {
			if role == user.Role {
				hasRole = true
				break
			}
		}
		if !hasRole {
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", user.Role)
		c.Next()
	}
}

// ErrorHandler writes the last error a handler attached with c.Error
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		if appErr := apperrors.GetAppError(err); appErr != nil {
			if response.StatusFor(appErr.Code) >= 500 {
				log.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, appErr)
			}
			response.AppError(c, appErr)
			return
		}

		log.Error("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		response.ServerError(c)
	}
}
