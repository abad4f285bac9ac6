package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pawhub/pet-care-backend/internal/auth"
	"github.com/pawhub/pet-care-backend/internal/pet"
	"github.com/pawhub/pet-care-backend/internal/pkg/response"
)

// maxPhotoSizeBytes limits pet photo uploads to 5 MiB.
const maxPhotoSizeBytes = 5 << 20

type Handler struct {
	service pet.Service
}

func NewHandler(service pet.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	userID := auth.GetUserID(c)

	pets, err := h.service.ListByOwner(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PetResponse, len(pets))
	for i, p := range pets {
		items[i] = NewPetResponse(p)
	}

	c.JSON(http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var body CreatePetBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := pet.CreateRequest{
		UserID:      auth.GetUserID(c),
		Name:        body.Name,
		Species:     body.Species,
		Breed:       body.Breed,
		DateOfBirth: body.DateOfBirth,
		Weight:      body.Weight,
	}

	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewPetResponse(p))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	p, err := h.service.GetOwned(c.Request.Context(), id, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPetResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdatePetBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	req := pet.UpdateRequest{
		Name:        body.Name,
		Species:     body.Species,
		Breed:       body.Breed,
		DateOfBirth: body.DateOfBirth,
		Weight:      body.Weight,
	}

	p, err := h.service.Update(c.Request.Context(), id, req, auth.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewPetResponse(p))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) UploadPhoto(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is required"})
		return
	}
	if fileHeader.Size > maxPhotoSizeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo is too large"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadPhoto(c.Request.Context(), id, auth.GetUserID(c), file)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, UploadPhotoResponse{PhotoURL: url})
}
