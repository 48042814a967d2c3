package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/golden-fur/grooming-records/internal/application"
	"github.com/golden-fur/grooming-records/internal/response"
)

// GroomingHandler handles HTTP requests for grooming visit records.
type GroomingHandler struct {
	service *application.GroomingService
}

// NewGroomingHandler creates a new GroomingHandler.
func NewGroomingHandler(service *application.GroomingService) *GroomingHandler {
	return &GroomingHandler{service: service}
}

// RegisterRoutes registers all grooming record routes.
func (h *GroomingHandler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1")

	records := api.Group("/grooming-records")
	{
		records.POST("", h.CreateRecord)
		records.PUT("/:id", h.UpdateRecord)
		records.DELETE("/:id", h.DeleteRecord)
	}

	api.GET("/pets/:id/grooming-records", h.ListByPet)
}

// CreateRecord handles POST /api/v1/grooming-records.
func (h *GroomingHandler) CreateRecord(c *gin.Context) {
	var req application.CreateGroomingRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateRecord(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateRecord handles PUT /api/v1/grooming-records/:id.
func (h *GroomingHandler) UpdateRecord(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid grooming record ID")
		return
	}

	var req application.UpdateGroomingRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateRecord(c.Request.Context(), recordID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// DeleteRecord handles DELETE /api/v1/grooming-records/:id.
func (h *GroomingHandler) DeleteRecord(c *gin.Context) {
	recordID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid grooming record ID")
		return
	}

	if err := h.service.DeleteRecord(c.Request.Context(), recordID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "grooming record deleted"})
}

// ListByPet handles GET /api/v1/pets/:id/grooming-records.
func (h *GroomingHandler) ListByPet(c *gin.Context) {
	petID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid pet ID")
		return
	}

	result, err := h.service.ListByPet(c.Request.Context(), petID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
