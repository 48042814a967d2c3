package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/golden-fur/grooming-records/internal/domain"
)

// Success writes a 200 response with the standard envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created writes a 201 response with the standard envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// NotFound writes a 404 response with the given message.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"success": false, "error": message})
}

// Error maps a domain error to its HTTP status and writes it. Validation
// errors become 400, missing resources 404, everything else is a storage
// failure reported as 500 with a generic message.
func Error(c *gin.Context, err error) {
	switch domain.CodeOf(err) {
	case domain.CodeValidation:
		BadRequest(c, err.Error())
	case domain.CodeNotFound:
		NotFound(c, err.Error())
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "internal error"})
	}
}
