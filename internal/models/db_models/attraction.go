package db_models

type Attraction struct {
	ID           int    `gorm:"primaryKey"`
	Name         string `gorm:"index"`
	City         string `gorm:"index"`
	Country      string `gorm:"index"`
	Category     string
	Description  string `gorm:"type:text"`
	Price        float64
	Rating       float64
	ImageURL     string
	Address      string
	OpeningHours string
}
