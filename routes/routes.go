package routes

import (
	"trailer-rental-api/handlers"
	"trailer-rental-api/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Users ──────────────────────────────────────────────────────
	users := r.Group("/api/users")
	{
		users.POST("/signup", handlers.Signup)
		users.POST("/login", handlers.Login)
		users.GET("", middleware.AuthRequired(), middleware.AdminRequired(), handlers.ListUsers)
		users.GET("/:id/reservations", middleware.AuthRequired(), middleware.ResourceExists("users"), handlers.GetUserReservations)
		users.GET("/:id/trailers", middleware.ResourceExists("users"), handlers.GetUserTrailers)
	}

	// ── Trailers ───────────────────────────────────────────────────
	trailers := r.Group("/api/trailers")
	{
		trailers.POST("", middleware.AuthRequired(), handlers.CreateTrailer)
		trailers.GET("", handlers.ListTrailers)
		trailers.GET("/:id", middleware.ResourceExists("trailers"), handlers.GetTrailer)
		trailers.GET("/:id/reservations", middleware.AuthRequired(), middleware.ResourceExists("trailers"), handlers.GetTrailerReservations)
		trailers.PATCH("/:id/active", middleware.AuthRequired(), middleware.ResourceExists("trailers"), handlers.UpdateTrailerActive)
	}

	// ── Reservations ───────────────────────────────────────────────
	reservations := r.Group("/api/reservations")
	{
		reservations.POST("", middleware.AuthRequired(), handlers.CreateReservation)
		reservations.GET("", middleware.AuthRequired(), middleware.AdminRequired(), handlers.ListReservations)
		reservations.GET("/:id", middleware.ResourceExists("reservations"), handlers.GetReservationDetail)
		reservations.PATCH("/:id/status", middleware.AuthRequired(), middleware.AdminRequired(), middleware.ResourceExists("reservations"), handlers.UpdateReservationStatus)
		reservations.POST("/:id/reviews", middleware.AuthRequired(), middleware.ResourceExists("reservations"), handlers.CreateReview)
	}
}
