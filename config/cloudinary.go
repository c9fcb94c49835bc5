package config

import (
	"github.com/Ramyash8/hotel-reservation-system2/services/logger"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ConnectCloudinary returns nil without error when CLOUDINARY_URL is unset
func ConnectCloudinary(s *Settings, log logger.Logger) (*cloudinary.Cloudinary, error) {
	if s.CloudinaryURL == "" {
		log.Info("CLOUDINARY_URL not set, cover uploads disabled")
		return nil, nil
	}
	return cloudinary.NewFromURL(s.CloudinaryURL)
}
