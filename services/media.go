package services

import (
	"context"
	"errors"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CoverUploader stores a hotel cover image and returns its public URL
type CoverUploader interface {
	UploadCover(ctx context.Context, hotelID string, file io.Reader) (string, error)
}

type CloudinaryUploader struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary, folder string) *CloudinaryUploader {
	if folder == "" {
		folder = "hotels"
	}
	return &CloudinaryUploader{cld: cld, folder: folder}
}

func (u *CloudinaryUploader) UploadCover(ctx context.Context, hotelID string, file io.Reader) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:   u.folder,
		PublicID: hotelID,
	})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", errors.New(resp.Error.Message)
	}
	return resp.SecureURL, nil
}
