package db_models

import "github.com/lib/pq"

type Hotel struct {
	ID            int    `gorm:"primaryKey"`
	Name          string `gorm:"index"`
	City          string `gorm:"index"`
	Country       string `gorm:"index"`
	PricePerNight float64
	Rating        float64
	Description   string         `gorm:"type:text"`
	Amenities     pq.StringArray `gorm:"type:text[]"`
	ImageURL      string
	Address       string
}
