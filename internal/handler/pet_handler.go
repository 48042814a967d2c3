package handler

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/golden-fur/grooming-records/internal/application"
	"github.com/golden-fur/grooming-records/internal/response"
)

// PetHandler handles HTTP requests for pet profile operations.
type PetHandler struct {
	service *application.PetService
}

// NewPetHandler creates a new PetHandler.
func NewPetHandler(service *application.PetService) *PetHandler {
	return &PetHandler{service: service}
}

// RegisterRoutes registers all pet profile routes.
func (h *PetHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")

	pets := api.Group("/pets")
	{
		pets.GET("", h.ListPets)
		pets.POST("", h.CreatePet)
		pets.GET("/:id", h.GetPet)
		pets.PUT("/:id", h.UpdatePet)
		pets.DELETE("/:id", h.DeletePet)
	}

	// Advisory record-number feed for the duplicate warning in the UI.
	numbers := api.Group("/record-numbers")
	{
		numbers.GET("", h.GetRecordNumbers)
		numbers.GET("/exists", h.RecordNumberExists)
	}
}

// ListPets handles GET /api/v1/pets. A non-blank search query narrows the
// result; a blank or absent one returns every profile, so the store is
// never asked to search for an empty substring.
func (h *PetHandler) ListPets(c *gin.Context) {
	term := strings.TrimSpace(c.Query("search"))

	var (
		result []application.PetWithHistoryDTO
		err    error
	)
	if term == "" {
		result, err = h.service.ListPets(c.Request.Context())
	} else {
		result, err = h.service.SearchPets(c.Request.Context(), term)
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetPet handles GET /api/v1/pets/:id.
func (h *PetHandler) GetPet(c *gin.Context) {
	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid pet ID")
		return
	}

	result, err := h.service.GetPet(c.Request.Context(), petID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// CreatePet handles POST /api/v1/pets.
func (h *PetHandler) CreatePet(c *gin.Context) {
	var req application.CreatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreatePet(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UpdatePet handles PUT /api/v1/pets/:id.
func (h *PetHandler) UpdatePet(c *gin.Context) {
	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid pet ID")
		return
	}

	var req application.UpdatePetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdatePet(c.Request.Context(), petID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeletePet handles DELETE /api/v1/pets/:id.
func (h *PetHandler) DeletePet(c *gin.Context) {
	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid pet ID")
		return
	}

	if err := h.service.DeletePet(c.Request.Context(), petID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "pet profile deleted"})
}

// GetRecordNumbers handles GET /api/v1/record-numbers.
func (h *PetHandler) GetRecordNumbers(c *gin.Context) {
	response.Success(c, h.service.GetRecordNumbers(c.Request.Context()))
}

// RecordNumberExists handles GET /api/v1/record-numbers/exists.
func (h *PetHandler) RecordNumberExists(c *gin.Context) {
	exists, err := h.service.RecordNumberExists(c.Request.Context(), c.Query("value"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"exists": exists})
}
