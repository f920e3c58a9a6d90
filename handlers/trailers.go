package handlers

import (
	"log"
	"net/http"

	"trailer-rental-api/config"
	"trailer-rental-api/middleware"
	"trailer-rental-api/models"
	"trailer-rental-api/validation"

	"github.com/gin-gonic/gin"
)

type CreateTrailerRequest struct {
	Name        string `json:"name" validate:"required"`
	Size        string `json:"size" validate:"required"`
	IsAvailable *bool  `json:"is_available" validate:"omitempty"`
}

type TrailerActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// CreateTrailer lists a new trailer owned by the caller
func CreateTrailer(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	req, ok := validation.Bind[CreateTrailerRequest](c)
	if !ok {
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	trailer := models.Trailer{
		UserID:      auth.SubjectID,
		Name:        req.Name,
		Size:        req.Size,
		IsAvailable: isAvailable,
	}
	if err := config.DB.Create(&trailer).Error; err != nil {
		log.Printf("trailer insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create trailer"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": trailer})
}

// ListTrailers returns active trailers (public)
func ListTrailers(c *gin.Context) {
	var trailers []models.Trailer
	if err := config.DB.Where("is_available = ?", true).Find(&trailers).Error; err != nil {
		log.Printf("trailer listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trailers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trailers})
}

// GetTrailer returns one trailer with its owner and live reservations.
// Completed and canceled reservations are hidden from the embed.
func GetTrailer(c *gin.Context) {
	id := c.Param("id")
	var trailer models.Trailer
	err := config.DB.
		Preload("User").
		Preload("Reservations", "status IN ?", models.ActiveStatuses).
		First(&trailer, "id = ?", id).Error
	if err != nil {
		log.Printf("trailer fetch failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trailer"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trailer})
}

// GetTrailerReservations returns a trailer's bookings, owner only
func GetTrailerReservations(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	id := c.Param("id")

	var trailer models.Trailer
	if err := config.DB.Select("id, user_id").First(&trailer, "id = ?", id).Error; err != nil {
		log.Printf("trailer fetch failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trailer"})
		return
	}
	if trailer.UserID != auth.SubjectID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Forbidden",
			"message": "You can only view reservations for your own trailers.",
		})
		return
	}

	var reservations []models.Reservation
	if err := config.DB.Where("trailer_id = ?", id).Order("start_date").Find(&reservations).Error; err != nil {
		log.Printf("reservation listing failed for trailer %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reservations})
}

// UpdateTrailerActive flips a trailer's availability flag
func UpdateTrailerActive(c *gin.Context) {
	id := c.Param("id")
	req, ok := validation.Bind[TrailerActiveRequest](c)
	if !ok {
		return
	}

	if err := config.DB.Model(&models.Trailer{}).Where("id = ?", id).
		Update("is_available", *req.Active).Error; err != nil {
		log.Printf("trailer availability update failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update trailer"})
		return
	}
	c.Status(http.StatusNoContent)
}
