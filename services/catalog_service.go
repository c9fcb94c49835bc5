package services

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/Ramyash8/hotel-reservation-system2/constants"
	"github.com/Ramyash8/hotel-reservation-system2/dto"
	apperrors "github.com/Ramyash8/hotel-reservation-system2/errors"
	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/services/logger"
	"github.com/Ramyash8/hotel-reservation-system2/store"
	"github.com/Ramyash8/hotel-reservation-system2/validator"

	"github.com/lib/pq"
)

// CatalogService manages hotel and room listings and their approval
type CatalogService struct {
	store    *store.Store
	uploader CoverUploader
	logger   logger.Logger
}

type CatalogServiceOptions struct {
	Store *store.Store
	// Uploader is optional; cover uploads fail without it.
	Uploader CoverUploader
	Logger   logger.Logger
}

func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}
	return &CatalogService{
		store:    opts.Store,
		uploader: opts.Uploader,
		logger:   opts.Logger,
	}
}

// CreateHotel lists a hotel for approval with a placeholder cover
func (s *CatalogService) CreateHotel(ctx context.Context, req dto.CreateHotelRequest) (*models.Hotel, error) {
	if err := validator.ValidateNewHotel(&req); err != nil {
		return nil, err
	}
	if _, err := findOr(ctx, s.store.Users, req.OwnerID, apperrors.ErrUserNotFound); err != nil {
		return nil, err
	}

	hotel := &models.Hotel{
		Name:        strings.TrimSpace(req.Name),
		Location:    strings.TrimSpace(req.Location),
		Description: req.Description,
		OwnerID:     req.OwnerID,
		Status:      constants.ApprovalStatusPending,
		CoverImage:  constants.PlaceholderCoverImage,
		Category:    req.Category,
	}
	if err := s.store.Hotels.Insert(ctx, hotel); err != nil {
		return nil, apperrors.DBError("failed to create hotel", err)
	}
	s.logger.Info("hotel %s listed by %s", hotel.ID, hotel.OwnerID)
	return hotel, nil
}

// UpdateHotelStatus approves or rejects a hotel
func (s *CatalogService) UpdateHotelStatus(ctx context.Context, id string, req dto.StatusRequest) (*models.Hotel, error) {
	if err := validator.ValidateStatus(&req); err != nil {
		return nil, err
	}
	if err := s.store.Hotels.UpdateFields(ctx, id, store.Fields{"status": req.Status}); err != nil {
		return nil, notFoundOr(err, apperrors.ErrHotelNotFound, "failed to update hotel")
	}
	return s.GetHotelByID(ctx, id)
}

// SetCoverImage uploads a new cover for a hotel
func (s *CatalogService) SetCoverImage(ctx context.Context, id string, file io.Reader) (*models.Hotel, error) {
	if _, err := s.GetHotelByID(ctx, id); err != nil {
		return nil, err
	}
	if s.uploader == nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeValidation, "image uploads are not configured", nil)
	}
	url, err := s.uploader.UploadCover(ctx, id, file)
	if err != nil {
		return nil, apperrors.NewAppError(apperrors.ErrCodeDBError, "failed to upload cover image", err)
	}
	if err := s.store.Hotels.UpdateFields(ctx, id, store.Fields{"cover_image": url}); err != nil {
		return nil, notFoundOr(err, apperrors.ErrHotelNotFound, "failed to update hotel")
	}
	return s.GetHotelByID(ctx, id)
}

// ApprovedHotels returns hotels visible to guests
func (s *CatalogService) ApprovedHotels(ctx context.Context) ([]models.Hotel, error) {
	return s.hotelsWhere(ctx, store.Filter{"status": constants.ApprovalStatusApproved})
}

// SearchHotels filters approved hotels by a destination matched against name
// and location. An empty destination returns every approved hotel.
func (s *CatalogService) SearchHotels(ctx context.Context, destination string) (*dto.HotelSearchResponse[models.Hotel], error) {
	approved, err := s.ApprovedHotels(ctx)
	if err != nil {
		return nil, err
	}
	query := normalizeInput(destination)
	if query == "" {
		return &dto.HotelSearchResponse[models.Hotel]{Hotels: approved}, nil
	}

	matched := make([]models.Hotel, 0)
	for _, h := range approved {
		if matchesDestination(h, query) {
			matched = append(matched, h)
		}
	}
	res := &dto.HotelSearchResponse[models.Hotel]{Hotels: matched}
	if len(matched) == 0 {
		res.Suggestion = suggestDestination(approved, query)
	}
	return res, nil
}

// GetHotelByID returns one hotel regardless of status
func (s *CatalogService) GetHotelByID(ctx context.Context, id string) (*models.Hotel, error) {
	return findOr(ctx, s.store.Hotels, id, apperrors.ErrHotelNotFound)
}

// HotelsByOwner returns every hotel of an owner regardless of status
func (s *CatalogService) HotelsByOwner(ctx context.Context, ownerID string) ([]models.Hotel, error) {
	return s.hotelsWhere(ctx, store.Filter{"owner_id": ownerID})
}

// CreateRoom lists a room for approval with placeholder images
func (s *CatalogService) CreateRoom(ctx context.Context, req dto.CreateRoomRequest) (*models.Room, error) {
	if err := validator.ValidateNewRoom(&req); err != nil {
		return nil, err
	}
	if _, err := s.GetHotelByID(ctx, req.HotelID); err != nil {
		return nil, err
	}

	images := make(pq.StringArray, constants.PlaceholderRoomImages)
	for i := range images {
		images[i] = constants.PlaceholderRoomImage
	}
	room := &models.Room{
		Title:       strings.TrimSpace(req.Title),
		HotelID:     req.HotelID,
		Description: req.Description,
		Price:       req.Price,
		Images:      images,
		Capacity:    req.Capacity,
		Status:      constants.ApprovalStatusPending,
	}
	if err := s.store.Rooms.Insert(ctx, room); err != nil {
		return nil, apperrors.DBError("failed to create room", err)
	}
	s.logger.Info("room %s listed in hotel %s", room.ID, room.HotelID)
	return room, nil
}

// UpdateRoomStatus approves or rejects a room
func (s *CatalogService) UpdateRoomStatus(ctx context.Context, id string, req dto.StatusRequest) (*models.Room, error) {
	if err := validator.ValidateStatus(&req); err != nil {
		return nil, err
	}
	if err := s.store.Rooms.UpdateFields(ctx, id, store.Fields{"status": req.Status}); err != nil {
		return nil, notFoundOr(err, apperrors.ErrRoomNotFound, "failed to update room")
	}
	return s.GetRoomByID(ctx, id)
}

// RoomsByHotel returns the approved rooms of a hotel
func (s *CatalogService) RoomsByHotel(ctx context.Context, hotelID string) ([]models.Room, error) {
	rooms, err := s.store.Rooms.FindWhere(ctx, store.Filter{
		"hotel_id": hotelID,
		"status":   constants.ApprovalStatusApproved,
	})
	if err != nil {
		return nil, apperrors.DBError("failed to load rooms", err)
	}
	return rooms, nil
}

// GetRoomByID returns one room regardless of status
func (s *CatalogService) GetRoomByID(ctx context.Context, id string) (*models.Room, error) {
	return findOr(ctx, s.store.Rooms, id, apperrors.ErrRoomNotFound)
}

// RoomsByOwner returns every room of the owner's hotels with the hotel name
func (s *CatalogService) RoomsByOwner(ctx context.Context, ownerID string) ([]models.OwnerRoom, error) {
	hotels, err := s.HotelsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]models.OwnerRoom, 0)
	for _, h := range hotels {
		rooms, err := s.store.Rooms.FindWhere(ctx, store.Filter{"hotel_id": h.ID})
		if err != nil {
			return nil, apperrors.DBError("failed to load rooms", err)
		}
		for _, r := range rooms {
			out = append(out, models.OwnerRoom{Room: r, HotelName: h.Name})
		}
	}
	return out, nil
}

func (s *CatalogService) hotelsWhere(ctx context.Context, filter store.Filter) ([]models.Hotel, error) {
	hotels, err := s.store.Hotels.FindWhere(ctx, filter)
	if err != nil {
		return nil, apperrors.DBError("failed to load hotels", err)
	}
	return hotels, nil
}

// notFoundOr maps a missing document to notFound and wraps anything else
func notFoundOr(err error, notFound *apperrors.AppError, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return notFound
	}
	return apperrors.DBError(op, err)
}
