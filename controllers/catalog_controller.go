package controllers

import (
	"github.com/Ramyash8/hotel-reservation-system2/dto"
	"github.com/Ramyash8/hotel-reservation-system2/response"
	"github.com/Ramyash8/hotel-reservation-system2/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	catalog *services.CatalogService
}

func NewCatalogController(catalog *services.CatalogService) *CatalogController {
	return &CatalogController{catalog: catalog}
}

// SearchHotels lists approved hotels, filtered by ?destination when given
func (ctl *CatalogController) SearchHotels(c *gin.Context) {
	res, err := ctl.catalog.SearchHotels(c.Request.Context(), c.Query("destination"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, res)
}

func (ctl *CatalogController) GetHotel(c *gin.Context) {
	hotel, err := ctl.catalog.GetHotelByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, hotel)
}

func (ctl *CatalogController) CreateHotel(c *gin.Context) {
	var req dto.CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	hotel, err := ctl.catalog.CreateHotel(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, hotel)
}

func (ctl *CatalogController) UpdateHotelStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	hotel, err := ctl.catalog.UpdateHotelStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, hotel)
}

// UploadCover takes a multipart "file" and makes it the hotel cover
func (ctl *CatalogController) UploadCover(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	src, err := file.Open()
	if err != nil {
		response.BadRequest(c, "cannot open file")
		return
	}
	defer src.Close()

	hotel, err := ctl.catalog.SetCoverImage(c.Request.Context(), c.Param("id"), src)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, hotel)
}

func (ctl *CatalogController) OwnerHotels(c *gin.Context) {
	hotels, err := ctl.catalog.HotelsByOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, hotels)
}

func (ctl *CatalogController) HotelRooms(c *gin.Context) {
	rooms, err := ctl.catalog.RoomsByHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, rooms)
}

func (ctl *CatalogController) GetRoom(c *gin.Context) {
	room, err := ctl.catalog.GetRoomByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, room)
}

func (ctl *CatalogController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	room, err := ctl.catalog.CreateRoom(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, room)
}

func (ctl *CatalogController) UpdateRoomStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	room, err := ctl.catalog.UpdateRoomStatus(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, room)
}

func (ctl *CatalogController) OwnerRooms(c *gin.Context) {
	rooms, err := ctl.catalog.RoomsByOwner(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Success(c, rooms)
}
