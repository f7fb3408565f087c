package models

import (
	"gorm.io/gorm"
)

type Review struct {
	gorm.Model
	BookingID  uint     `json:"booking_id" gorm:"not null;index"`
	Booking    Booking  `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
	CustomerID uint     `json:"customer_id" gorm:"not null;index"`
	Customer   User     `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProviderID uint     `json:"provider_id" gorm:"not null;index"`
	Provider   Provider `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ServiceID  uint     `json:"service_id" gorm:"not null;index"`
	Service    Service  `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Rating     int      `json:"rating" gorm:"not null"`
	Comment    string   `json:"comment"`
}
