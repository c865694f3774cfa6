package db_models

type Flight struct {
	ID            int    `gorm:"primaryKey"`
	Airline       string
	Origin        string `gorm:"index"`
	Destination   string `gorm:"index"`
	DepartureDate string
	DepartureTime string
	ArrivalTime   string
	Price         float64
	Duration      string
	Stops         int
	FlightClass   string
}
