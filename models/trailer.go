package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Trailer struct {
	ID           string        `json:"id" gorm:"primaryKey"`
	UserID       string        `json:"user_id" gorm:"not null"`
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Name         string        `json:"name" gorm:"not null"`
	Size         string        `json:"size" gorm:"not null"`
	IsAvailable  bool          `json:"is_available" gorm:"default:true"`
	Reservations []Reservation `json:"reservations,omitempty" gorm:"foreignKey:TrailerID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

func (t *Trailer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
