package models

import (
	"time"
)

type NotificationType string

const (
	NotificationBooking      NotificationType = "booking"
	NotificationReview       NotificationType = "review"
	NotificationStatusChange NotificationType = "status_change"
	NotificationSystem       NotificationType = "system"
)

type Notification struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	UserID    uint             `json:"user_id" gorm:"not null;index"`
	Type      NotificationType `json:"type" gorm:"size:20;not null"`
	Title     string           `json:"title" gorm:"size:255;not null"`
	Message   string           `json:"message" gorm:"not null"`
	RelatedID *uint            `json:"related_id,omitempty"`
	IsRead    bool             `json:"is_read" gorm:"default:false;not null"`
	CreatedAt time.Time        `json:"created_at"`
}
