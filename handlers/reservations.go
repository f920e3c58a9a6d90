package handlers

import (
	"errors"
	"log"
	"net/http"

	"trailer-rental-api/booking"
	"trailer-rental-api/config"
	"trailer-rental-api/middleware"
	"trailer-rental-api/models"
	"trailer-rental-api/validation"

	"github.com/gin-gonic/gin"
)

type CreateReservationRequest struct {
	TrailerID string  `json:"trailer_id" validate:"required,uuid"`
	StartDate string  `json:"start_date" validate:"required"`
	EndDate   string  `json:"end_date" validate:"required"`
	TotalCost float64 `json:"total_cost" validate:"required,gte=1"`
}

type ReservationStatusRequest struct {
	Status models.ReservationStatus `json:"status" validate:"required,oneof=pending confirmed completed canceled"`
}

type CreateReviewRequest struct {
	TrailerID string `json:"trailer_id" validate:"required,uuid"`
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string `json:"comment" validate:"omitempty"`
}

// CreateReservation books a trailer for a date window. Admission runs
// through the booking engine so overlapping windows cannot double-book.
func CreateReservation(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	req, ok := validation.Bind[CreateReservationRequest](c)
	if !ok {
		return
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		dateIssue(c, "start_date")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		dateIssue(c, "end_date")
		return
	}

	reservation, err := booking.Reserve(config.DB, booking.Request{
		TrailerID: req.TrailerID,
		RenterID:  auth.SubjectID,
		StartDate: start,
		EndDate:   end,
		TotalCost: req.TotalCost,
	})
	switch {
	case errors.Is(err, booking.ErrOwnTrailer):
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "Forbidden",
			"message": "You cannot reserve your own trailer.",
		})
		return
	case errors.Is(err, booking.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":   "Conflict",
			"message": "A reservation already exists at the dates specified.",
		})
		return
	case errors.Is(err, booking.ErrTrailerLookup):
		log.Printf("reservation admission failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch trailer info."})
		return
	case errors.Is(err, booking.ErrConflictCheck):
		log.Printf("reservation admission failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Conflict check failed."})
		return
	case err != nil:
		log.Printf("reservation admission failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create reservation"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": reservation})
}

// ListReservations returns every reservation — admin only
func ListReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := config.DB.Find(&reservations).Error; err != nil {
		log.Printf("reservation listing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reservations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reservations})
}

// GetReservationDetail returns a reservation joined with trailer and
// renter identity projections in one denormalized shape
func GetReservationDetail(c *gin.Context) {
	id := c.Param("id")
	var reservation models.Reservation
	err := config.DB.Preload("Trailer").Preload("User").First(&reservation, "id = ?", id).Error
	if err != nil {
		log.Printf("reservation fetch failed for %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reservation"})
		return
	}

	detail := gin.H{
		"start_date": reservation.StartDate,
		"end_date":   reservation.EndDate,
		"status":     reservation.Status,
		"total_cost": reservation.TotalCost,
	}
	if reservation.Trailer != nil {
		detail["trailer"] = gin.H{
			"id":      reservation.Trailer.ID,
			"name":    reservation.Trailer.Name,
			"size":    reservation.Trailer.Size,
			"user_id": reservation.Trailer.UserID,
		}
	}
	if reservation.User != nil {
		detail["user"] = gin.H{
			"id":         reservation.User.ID,
			"first_name": reservation.User.FirstName,
			"last_name":  reservation.User.LastName,
		}
	}
	c.JSON(http.StatusOK, gin.H{"data": detail})
}

// UpdateReservationStatus moves a reservation to any lifecycle state —
// admin only, enum membership is the only transition rule
func UpdateReservationStatus(c *gin.Context) {
	id := c.Param("id")
	req, ok := validation.Bind[ReservationStatusRequest](c)
	if !ok {
		return
	}

	if err := config.DB.Model(&models.Reservation{}).Where("id = ?", id).
		Update("status", req.Status).Error; err != nil {
		log.Printf("status update failed for reservation %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update reservation"})
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateReview attaches a review to a reservation context. Only auth
// and reservation existence are checked; renter/completion/uniqueness
// rules are an unresolved business question upstream and stay open.
func CreateReview(c *gin.Context) {
	auth := middleware.GetAuthContext(c)
	req, ok := validation.Bind[CreateReviewRequest](c)
	if !ok {
		return
	}

	review := models.Review{
		TrailerID: req.TrailerID,
		UserID:    auth.SubjectID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		log.Printf("review insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": review})
}

func dateIssue(c *gin.Context, field string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "Bad Request",
		"message": "One or more fields failed validation.",
		"issues":  []validation.Issue{{Path: field, Message: field + " must be a valid date"}},
	})
}
