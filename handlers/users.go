package handlers

import (
	"log"
	"net/http"

	"trailer-rental-api/config"
	"trailer-rental-api/middleware"
	"trailer-rental-api/models"

	"github.com/gin-gonic/gin"
)

// ListUsers returns every user — admin only
func ListUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		log.Printf("user listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": users})
}

// GetUserReservations returns a user's reservations, self only
func GetUserReservations(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	userID := c.Param("id")
	if userID != auth.SubjectID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Forbidden",
			"message": "You can only view your own reservations.",
		})
		return
	}

	var reservations []models.Reservation
	if err := config.DB.Where("user_id = ?", userID).Order("start_date").Find(&reservations).Error; err != nil {
		log.Printf("reservation listing failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reservations})
}

// GetUserTrailers returns the trailers a user has listed
func GetUserTrailers(c *gin.Context) {
	userID := c.Param("id")
	var trailers []models.Trailer
	if err := config.DB.Where("user_id = ?", userID).Find(&trailers).Error; err != nil {
		log.Printf("trailer listing failed for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list trailers"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": trailers})
}
