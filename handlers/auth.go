package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"trailer-rental-api/config"
	"trailer-rental-api/middleware"
	"trailer-rental-api/models"
	"trailer-rental-api/validation"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SignupRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Signup creates an account and the mirrored users row
func Signup(c *gin.Context) {
	req, ok := validation.Bind[SignupRequest](c)
	if !ok {
		return
	}

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := parseDate(req.DateOfBirth)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "Bad Request",
				"message": "One or more fields failed validation.",
				"issues":  []validation.Issue{{Path: "date_of_birth", Message: "date_of_birth must be a valid date"}},
			})
			return
		}
		dob = &parsed
	}

	// Duplicate email is a 422, matching the upstream identity provider
	var existing models.User
	err := config.DB.Where("email = ?", req.Email).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Unprocessable Entity",
			"message": "This email is already in use.",
		})
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("signup email lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("password hash failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	user := models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		DateOfBirth:  dob,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		log.Printf("signup insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		log.Printf("token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"token": token, "user": user}})
}

// Login verifies credentials and issues a bearer token
func Login(c *gin.Context) {
	req, ok := validation.Bind[LoginRequest](c)
	if !ok {
		return
	}

	var user models.User
	err := config.DB.Where("email = ?", req.Email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "message": "Invalid credentials."})
		return
	} else if err != nil {
		log.Printf("login lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "message": "Invalid credentials."})
		return
	}

	token, err := middleware.GenerateToken(&user)
	if err != nil {
		log.Printf("token generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"token": token, "user": user}})
}

// parseDate accepts plain dates or full RFC 3339 timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
