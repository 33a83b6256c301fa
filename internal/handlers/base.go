package handlers

import (
	"errors"
	"log"
	"net/http"

	"stackoverfaux/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto the API's {"error": ...} body.
// Anything that is not a known sentinel is logged and reported as the
// generic fallback message.
func respondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("%s: %v", fallback, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
