package models

import (
	"gorm.io/gorm"
)

// Provider links a user to a service they offer. Rating and
// TotalReviews are denormalized from the reviews table and recomputed
// whenever a review is added.
type Provider struct {
	gorm.Model
	UserID            uint    `json:"user_id" gorm:"not null;index"`
	User              User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
	ServiceID         uint    `json:"service_id" gorm:"not null;index"`
	Service           Service `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Experience        int     `json:"experience" gorm:"default:0"`
	HourlyRate        float64 `json:"hourly_rate" gorm:"type:decimal(10,2);not null"`
	Availability      string  `json:"availability"`
	Rating            float64 `json:"rating" gorm:"type:decimal(3,2);default:0"`
	TotalReviews      int     `json:"total_reviews" gorm:"default:0"`
	CompletedBookings int     `json:"completed_bookings" gorm:"default:0"`
	IDDocument        string  `json:"id_document" gorm:"column:id_document"`
	IsVerified        bool    `json:"is_verified" gorm:"default:false;not null"`
	IsAvailable       bool    `json:"is_available" gorm:"default:true;not null"`
}
