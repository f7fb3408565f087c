package models

import (
	"gorm.io/gorm"
)

type ServiceCategory string

const (
	CategoryCleaning    ServiceCategory = "cleaning"
	CategoryHospitality ServiceCategory = "hospitality"
	CategoryGardening   ServiceCategory = "gardening"
	CategoryOther       ServiceCategory = "other"
)

func (c ServiceCategory) Valid() bool {
	switch c {
	case CategoryCleaning, CategoryHospitality, CategoryGardening, CategoryOther:
		return true
	}
	return false
}

// Service is a bilingual catalog entry. Arabic fields are what the
// storefront renders first.
type Service struct {
	gorm.Model
	NameAr        string          `json:"name_ar" gorm:"size:255;not null"`
	NameEn        string          `json:"name_en" gorm:"size:255;not null"`
	DescriptionAr string          `json:"description_ar" gorm:"not null"`
	DescriptionEn string          `json:"description_en" gorm:"not null"`
	Category      ServiceCategory `json:"category" gorm:"size:50;not null"`
	Icon          string          `json:"icon" gorm:"size:100"`
	Image         string          `json:"image"`
	BasePrice     float64         `json:"base_price" gorm:"type:decimal(10,2);not null"`
	PriceUnit     string          `json:"price_unit" gorm:"size:50;default:hour;not null"`
	IsActive      bool            `json:"is_active" gorm:"default:true;not null"`
}
