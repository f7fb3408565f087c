package models

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingInProgress BookingStatus = "in_progress"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	gorm.Model
	CustomerID         uint          `json:"customer_id" gorm:"not null;index"`
	Customer           User          `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ProviderID         uint          `json:"provider_id" gorm:"not null;index"`
	Provider           Provider      `json:"provider,omitempty" gorm:"foreignKey:ProviderID"`
	ServiceID          uint          `json:"service_id" gorm:"not null;index"`
	Service            Service       `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	BookingDate        time.Time     `json:"booking_date" gorm:"not null"`
	StartTime          string        `json:"start_time" gorm:"size:10;not null"` // "HH:MM" 24h
	Duration           int           `json:"duration" gorm:"not null"`           // hours
	Status             BookingStatus `json:"status" gorm:"size:20;default:pending;not null"`
	Address            string        `json:"address" gorm:"not null"`
	City               string        `json:"city" gorm:"size:100;not null"`
	Notes              string        `json:"notes"`
	TotalPrice         float64       `json:"total_price" gorm:"type:decimal(10,2);not null"`
	CancellationReason string        `json:"cancellation_reason"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = BookingPending
	}
	return nil
}
