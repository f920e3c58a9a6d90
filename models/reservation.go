package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReservationStatus represents the lifecycle states of a booking
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCanceled  ReservationStatus = "canceled"
)

// ActiveStatuses are the states during which a reservation blocks the
// trailer's dates. Completed and canceled bookings free the window.
var ActiveStatuses = []ReservationStatus{StatusPending, StatusConfirmed}

type Reservation struct {
	ID        string            `json:"id" gorm:"primaryKey"`
	TrailerID string            `json:"trailer_id" gorm:"not null;index"`
	Trailer   *Trailer          `json:"trailer,omitempty" gorm:"foreignKey:TrailerID"`
	UserID    string            `json:"user_id" gorm:"not null;index"`
	User      *User             `json:"user,omitempty" gorm:"foreignKey:UserID"`
	StartDate time.Time         `json:"start_date" gorm:"not null"`
	EndDate   time.Time         `json:"end_date" gorm:"not null"`
	TotalCost float64           `json:"total_cost" gorm:"not null"`
	Status    ReservationStatus `json:"status" gorm:"not null;default:'pending'"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// ValidStatus reports whether s is one of the four lifecycle states.
func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}
