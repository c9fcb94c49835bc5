package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/Ramyash8/hotel-reservation-system2/constants"
	"github.com/Ramyash8/hotel-reservation-system2/dto"
	apperrors "github.com/Ramyash8/hotel-reservation-system2/errors"
	"github.com/Ramyash8/hotel-reservation-system2/models"
	"github.com/Ramyash8/hotel-reservation-system2/store"
)

type fakeUploader struct {
	gotHotel string
	gotBody  string
	err      error
}

func (u *fakeUploader) UploadCover(_ context.Context, hotelID string, file io.Reader) (string, error) {
	b, _ := io.ReadAll(file)
	u.gotHotel, u.gotBody = hotelID, string(b)
	if u.err != nil {
		return "", u.err
	}
	return "https://cdn.example/" + hotelID + ".png", nil
}

func newCatalog(t *testing.T, uploader CoverUploader) (*CatalogService, *store.Store) {
	t.Helper()
	s := store.NewMemoryStore(nil)
	mustInsert(t, s.Users.Insert(context.Background(), &models.User{ID: "owner1", Name: "Olivia", Email: "o@example.com", Role: constants.RoleOwner}))
	svc := NewCatalogService(CatalogServiceOptions{Store: s, Uploader: uploader})
	return svc, s
}

func createApprovedHotel(t *testing.T, svc *CatalogService, name, location string) *models.Hotel {
	t.Helper()
	ctx := context.Background()
	h, err := svc.CreateHotel(ctx, dto.CreateHotelRequest{Name: name, Location: location, Description: "desc", OwnerID: "owner1"})
	if err != nil {
		t.Fatalf("CreateHotel() error = %v", err)
	}
	h, err = svc.UpdateHotelStatus(ctx, h.ID, dto.StatusRequest{Status: constants.ApprovalStatusApproved})
	if err != nil {
		t.Fatalf("UpdateHotelStatus() error = %v", err)
	}
	return h
}

func TestCreateHotel(t *testing.T) {
	svc, _ := newCatalog(t, nil)
	ctx := context.Background()

	h, err := svc.CreateHotel(ctx, dto.CreateHotelRequest{Name: "Grand Hyatt", Location: "Tokyo, Japan", Description: "d", OwnerID: "owner1", Category: "Premium"})
	if err != nil {
		t.Fatalf("CreateHotel() error = %v", err)
	}
	if h.Status != constants.ApprovalStatusPending || h.CoverImage != constants.PlaceholderCoverImage || h.Category != "Premium" {
		t.Errorf("CreateHotel() = %+v", h)
	}

	approved, _ := svc.ApprovedHotels(ctx)
	if len(approved) != 0 {
		t.Errorf("pending hotel is visible: %+v", approved)
	}

	_, err = svc.CreateHotel(ctx, dto.CreateHotelRequest{Name: "X", Location: "Y", Description: "d", OwnerID: "ghost"})
	if !errors.Is(err, apperrors.ErrUserNotFound) {
		t.Errorf("CreateHotel() for unknown owner error = %v", err)
	}
}

func TestUpdateHotelStatus(t *testing.T) {
	svc, _ := newCatalog(t, nil)
	ctx := context.Background()

	if _, err := svc.UpdateHotelStatus(ctx, "missing", dto.StatusRequest{Status: "approved"}); !errors.Is(err, apperrors.ErrHotelNotFound) {
		t.Errorf("UpdateHotelStatus(missing) error = %v", err)
	}
	h := createApprovedHotel(t, svc, "Grand Hyatt", "Tokyo, Japan")
	if h.Status != constants.ApprovalStatusApproved {
		t.Errorf("Status = %q, want approved", h.Status)
	}
	if _, err := svc.UpdateHotelStatus(ctx, h.ID, dto.StatusRequest{Status: "pending"}); !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("UpdateHotelStatus(pending) error = %v", err)
	}
}

func TestSearchHotels(t *testing.T) {
	svc, _ := newCatalog(t, nil)
	ctx := context.Background()
	createApprovedHotel(t, svc, "Grand Hyatt", "Tokyo, Japan")
	createApprovedHotel(t, svc, "Hôtel Métropole", "Genève, Switzerland")
	createApprovedHotel(t, svc, "Alpine Lodge", "Zermatt, Switzerland")
	if _, err := svc.CreateHotel(ctx, dto.CreateHotelRequest{Name: "Tokyo Pending", Location: "Tokyo, Japan", Description: "d", OwnerID: "owner1"}); err != nil {
		t.Fatalf("CreateHotel() error = %v", err)
	}

	tests := []struct {
		name           string
		destination    string
		wantNames      []string
		wantSuggestion string
	}{
		{"empty returns all approved", "", []string{"Grand Hyatt", "Hôtel Métropole", "Alpine Lodge"}, ""},
		{"location case insensitive", "TOKYO", []string{"Grand Hyatt"}, ""},
		{"name substring", "lodge", []string{"Alpine Lodge"}, ""},
		{"accents ignored", "geneve", []string{"Hôtel Métropole"}, ""},
		{"country", "switzerland", []string{"Hôtel Métropole", "Alpine Lodge"}, ""},
		{"typo gets suggestion", "tokio", []string{}, "Tokyo"},
		{"nothing close", "qqqqqqqq", []string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.SearchHotels(ctx, tt.destination)
			if err != nil {
				t.Fatalf("SearchHotels() error = %v", err)
			}
			if len(got.Hotels) != len(tt.wantNames) {
				t.Fatalf("SearchHotels() returned %d hotels, want %d: %+v", len(got.Hotels), len(tt.wantNames), got.Hotels)
			}
			for i, name := range tt.wantNames {
				if got.Hotels[i].Name != name {
					t.Errorf("hotel %d = %q, want %q", i, got.Hotels[i].Name, name)
				}
			}
			if got.Suggestion != tt.wantSuggestion {
				t.Errorf("Suggestion = %q, want %q", got.Suggestion, tt.wantSuggestion)
			}
		})
	}
}

func TestRooms(t *testing.T) {
	svc, _ := newCatalog(t, nil)
	ctx := context.Background()
	h := createApprovedHotel(t, svc, "Grand Hyatt", "Tokyo, Japan")

	if _, err := svc.CreateRoom(ctx, dto.CreateRoomRequest{Title: "Suite", HotelID: "missing", Description: "d", Price: 100, Capacity: 2}); !errors.Is(err, apperrors.ErrHotelNotFound) {
		t.Errorf("CreateRoom(unknown hotel) error = %v", err)
	}

	pending, err := svc.CreateRoom(ctx, dto.CreateRoomRequest{Title: "Suite", HotelID: h.ID, Description: "d", Price: 300, Capacity: 2})
	if err != nil {
		t.Fatalf("CreateRoom() error = %v", err)
	}
	if pending.Status != constants.ApprovalStatusPending || len(pending.Images) != constants.PlaceholderRoomImages {
		t.Errorf("CreateRoom() = %+v", pending)
	}

	approved, err := svc.CreateRoom(ctx, dto.CreateRoomRequest{Title: "Twin", HotelID: h.ID, Description: "d", Price: 200, Capacity: 2})
	if err != nil {
		t.Fatalf("CreateRoom() error = %v", err)
	}
	if _, err := svc.UpdateRoomStatus(ctx, approved.ID, dto.StatusRequest{Status: "approved"}); err != nil {
		t.Fatalf("UpdateRoomStatus() error = %v", err)
	}
	if _, err := svc.UpdateRoomStatus(ctx, "missing", dto.StatusRequest{Status: "approved"}); !errors.Is(err, apperrors.ErrRoomNotFound) {
		t.Errorf("UpdateRoomStatus(missing) error = %v", err)
	}

	visible, err := svc.RoomsByHotel(ctx, h.ID)
	if err != nil {
		t.Fatalf("RoomsByHotel() error = %v", err)
	}
	if len(visible) != 1 || visible[0].ID != approved.ID {
		t.Errorf("RoomsByHotel() = %+v, want only the approved room", visible)
	}

	owned, err := svc.RoomsByOwner(ctx, "owner1")
	if err != nil {
		t.Fatalf("RoomsByOwner() error = %v", err)
	}
	if len(owned) != 2 || owned[0].HotelName != "Grand Hyatt" {
		t.Errorf("RoomsByOwner() = %+v", owned)
	}

	none, _ := svc.RoomsByOwner(ctx, "nobody")
	if len(none) != 0 {
		t.Errorf("RoomsByOwner(nobody) = %+v", none)
	}
}

func TestSetCoverImage(t *testing.T) {
	up := &fakeUploader{}
	svc, _ := newCatalog(t, up)
	ctx := context.Background()
	h := createApprovedHotel(t, svc, "Grand Hyatt", "Tokyo, Japan")

	got, err := svc.SetCoverImage(ctx, h.ID, strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("SetCoverImage() error = %v", err)
	}
	if got.CoverImage != "https://cdn.example/"+h.ID+".png" {
		t.Errorf("CoverImage = %q", got.CoverImage)
	}
	if up.gotHotel != h.ID || up.gotBody != "png-bytes" {
		t.Errorf("uploader got hotel=%q body=%q", up.gotHotel, up.gotBody)
	}

	if _, err := svc.SetCoverImage(ctx, "missing", strings.NewReader("x")); !errors.Is(err, apperrors.ErrHotelNotFound) {
		t.Errorf("SetCoverImage(missing) error = %v", err)
	}

	noUploads, _ := newCatalog(t, nil)
	h2 := createApprovedHotel(t, noUploads, "Alpine Lodge", "Zermatt")
	if _, err := noUploads.SetCoverImage(ctx, h2.ID, strings.NewReader("x")); !apperrors.HasCode(err, apperrors.ErrCodeValidation) {
		t.Errorf("SetCoverImage() without uploader error = %v", err)
	}
}
