package response_models

type HotelResponse struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	City          string   `json:"city"`
	Country       string   `json:"country"`
	PricePerNight float64  `json:"price_per_night"`
	Rating        float64  `json:"rating"`
	Description   string   `json:"description"`
	Amenities     []string `json:"amenities"`
	ImageURL      string   `json:"image_url"`
	Address       string   `json:"address"`
}

type FlightResponse struct {
	ID            int     `json:"id"`
	Airline       string  `json:"airline"`
	Origin        string  `json:"origin"`
	Destination   string  `json:"destination"`
	DepartureDate string  `json:"departure_date"`
	DepartureTime string  `json:"departure_time"`
	ArrivalTime   string  `json:"arrival_time"`
	Price         float64 `json:"price"`
	Duration      string  `json:"duration"`
	Stops         int     `json:"stops"`
	FlightClass   string  `json:"flight_class"`
}

type AttractionResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	City         string  `json:"city"`
	Country      string  `json:"country"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	Price        float64 `json:"price"`
	Rating       float64 `json:"rating"`
	ImageURL     string  `json:"image_url"`
	Address      string  `json:"address"`
	OpeningHours string  `json:"opening_hours"`
}

type RecommendationsResponse struct {
	Hotels      []HotelResponse      `json:"hotels"`
	Flights     []FlightResponse     `json:"flights"`
	Attractions []AttractionResponse `json:"attractions"`
	Days        int                  `json:"days"`
	CurrentDay  int                  `json:"current_day"`
}
