package infra

import (
	"log"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

// MigrateAndSeed creates the catalog tables and loads the fixed record
// set on first start. The catalog is read-only afterwards; a populated
// hotels table means seeding already happened.
func MigrateAndSeed(db *gorm.DB) error {
	if err := db.AutoMigrate(&db_models.Hotel{}, &db_models.Flight{}, &db_models.Attraction{}); err != nil {
		return err
	}

	var count int64
	if err := db.Model(&db_models.Hotel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(seedHotels()).Error; err != nil {
			return err
		}
		if err := tx.Create(seedFlights()).Error; err != nil {
			return err
		}
		return tx.Create(seedAttractions()).Error
	})
	if err != nil {
		log.Printf("Error seeding catalog: %v", err)
		return err
	}

	log.Println("Catalog seeded")
	return nil
}

func seedHotels() []db_models.Hotel {
	return []db_models.Hotel{
		{
			ID: 1, Name: "Tokyo Grand Hotel", City: "Tokyo", Country: "Japan",
			PricePerNight: 150.0, Rating: 4.5,
			Description: "Luxury hotel in the heart of Tokyo with modern amenities",
			Amenities:   pq.StringArray{"WiFi", "Pool", "Spa", "Restaurant"},
			ImageURL:    "https://via.placeholder.com/300",
			Address:     "1-1-1 Shibuya, Tokyo",
		},
		{
			ID: 2, Name: "Kyoto Traditional Inn", City: "Kyoto", Country: "Japan",
			PricePerNight: 120.0, Rating: 4.7,
			Description: "Authentic Japanese ryokan experience",
			Amenities:   pq.StringArray{"WiFi", "Onsen", "Traditional Breakfast"},
			ImageURL:    "https://via.placeholder.com/300",
			Address:     "2-2-2 Gion, Kyoto",
		},
		{
			ID: 3, Name: "Hakone Mountain Resort", City: "Hakone", Country: "Japan",
			PricePerNight: 200.0, Rating: 4.8,
			Description: "Scenic resort with hot springs and mountain views",
			Amenities:   pq.StringArray{"WiFi", "Onsen", "Restaurant", "Mountain Views"},
			ImageURL:    "https://via.placeholder.com/300",
			Address:     "3-3-3 Hakone, Kanagawa",
		},
		{
			ID: 4, Name: "Paris Eiffel View Hotel", City: "Paris", Country: "France",
			PricePerNight: 180.0, Rating: 4.6,
			Description: "Boutique hotel with views of the Eiffel Tower",
			Amenities:   pq.StringArray{"WiFi", "Restaurant", "City Views"},
			ImageURL:    "https://via.placeholder.com/300",
			Address:     "15 Rue de la Tour, Paris",
		},
		{
			ID: 5, Name: "Rome Historic Center Hotel", City: "Rome", Country: "Italy",
			PricePerNight: 130.0, Rating: 4.4,
			Description: "Charming hotel near the Colosseum",
			Amenities:   pq.StringArray{"WiFi", "Breakfast", "Historic Location"},
			ImageURL:    "https://via.placeholder.com/300",
			Address:     "Via dei Fori Imperiali, Rome",
		},
		{
			ID: 6, Name: "Barcelona Beach Hotel", City: "Barcelona", Country: "Spain",
			PricePerNight: 140.0, Rating: 4.5,
			Description: "Modern hotel steps from the beach",
			Amenities:   pq.StringArray{"WiFi", "Pool", "Beach Access", "Restaurant"},
			ImageURL:    "https://via.placeholder.com/300",
			Address:     "Passeig de la Barceloneta, Barcelona",
		},
	}
}

func seedFlights() []db_models.Flight {
	return []db_models.Flight{
		{
			ID: 1, Airline: "Japan Airlines", Origin: "New York", Destination: "Tokyo",
			DepartureDate: "2024-06-01", DepartureTime: "10:00", ArrivalTime: "14:30",
			Price: 1200.0, Duration: "14h 30m", Stops: 0, FlightClass: "Economy",
		},
		{
			ID: 2, Airline: "All Nippon Airways", Origin: "Los Angeles", Destination: "Tokyo",
			DepartureDate: "2024-06-01", DepartureTime: "11:00", ArrivalTime: "15:45",
			Price: 1100.0, Duration: "12h 45m", Stops: 0, FlightClass: "Economy",
		},
		{
			ID: 3, Airline: "Shinkansen", Origin: "Tokyo", Destination: "Kyoto",
			DepartureDate: "2024-06-04", DepartureTime: "09:00", ArrivalTime: "11:30",
			Price: 130.0, Duration: "2h 30m", Stops: 0, FlightClass: "Standard",
		},
		{
			ID: 4, Airline: "Air France", Origin: "New York", Destination: "Paris",
			DepartureDate: "2024-07-01", DepartureTime: "20:00", ArrivalTime: "08:00",
			Price: 900.0, Duration: "7h 0m", Stops: 0, FlightClass: "Economy",
		},
		{
			ID: 5, Airline: "Lufthansa", Origin: "London", Destination: "Rome",
			DepartureDate: "2024-07-05", DepartureTime: "14:00", ArrivalTime: "16:30",
			Price: 250.0, Duration: "2h 30m", Stops: 0, FlightClass: "Economy",
		},
	}
}

func seedAttractions() []db_models.Attraction {
	return []db_models.Attraction{
		{
			ID: 1, Name: "Shibuya Crossing", City: "Tokyo", Country: "Japan", Category: "culture",
			Description: "The world's busiest pedestrian crossing", Price: 0.0, Rating: 4.5,
			ImageURL: "https://via.placeholder.com/300", Address: "Shibuya, Tokyo", OpeningHours: "24/7",
		},
		{
			ID: 2, Name: "Asakusa Temple", City: "Tokyo", Country: "Japan", Category: "history",
			Description: "Historic Buddhist temple in Tokyo", Price: 0.0, Rating: 4.6,
			ImageURL: "https://via.placeholder.com/300", Address: "2-3-1 Asakusa, Tokyo", OpeningHours: "6:00-17:00",
		},
		{
			ID: 3, Name: "Meiji Shrine", City: "Tokyo", Country: "Japan", Category: "nature",
			Description: "Peaceful Shinto shrine surrounded by forest", Price: 0.0, Rating: 4.7,
			ImageURL: "https://via.placeholder.com/300", Address: "1-1 Yoyogi Kamizono-cho, Tokyo", OpeningHours: "6:00-18:00",
		},
		{
			ID: 4, Name: "Hakone Open-Air Museum", City: "Hakone", Country: "Japan", Category: "nature",
			Description: "Beautiful outdoor sculpture museum with mountain views", Price: 15.0, Rating: 4.8,
			ImageURL: "https://via.placeholder.com/300", Address: "1121 Ninotaira, Hakone", OpeningHours: "9:00-17:00",
		},
		{
			ID: 5, Name: "Fushimi Inari Shrine", City: "Kyoto", Country: "Japan", Category: "nature",
			Description: "Famous shrine with thousands of torii gates", Price: 0.0, Rating: 4.9,
			ImageURL: "https://via.placeholder.com/300", Address: "68 Fukakusa Yabunouchicho, Kyoto", OpeningHours: "24/7",
		},
		{
			ID: 6, Name: "Eiffel Tower", City: "Paris", Country: "France", Category: "culture",
			Description: "Iconic iron lattice tower", Price: 25.0, Rating: 4.7,
			ImageURL: "https://via.placeholder.com/300", Address: "Champ de Mars, Paris", OpeningHours: "9:00-23:00",
		},
		{
			ID: 7, Name: "Louvre Museum", City: "Paris", Country: "France", Category: "history",
			Description: "World's largest art museum", Price: 17.0, Rating: 4.8,
			ImageURL: "https://via.placeholder.com/300", Address: "Rue de Rivoli, Paris", OpeningHours: "9:00-18:00",
		},
		{
			ID: 8, Name: "Colosseum", City: "Rome", Country: "Italy", Category: "history",
			Description: "Ancient Roman amphitheater", Price: 16.0, Rating: 4.6,
			ImageURL: "https://via.placeholder.com/300", Address: "Piazza del Colosseo, Rome", OpeningHours: "8:30-19:00",
		},
		{
			ID: 9, Name: "Sagrada Familia", City: "Barcelona", Country: "Spain", Category: "culture",
			Description: "Gaudi's masterpiece basilica", Price: 20.0, Rating: 4.9,
			ImageURL: "https://via.placeholder.com/300", Address: "Carrer de Mallorca, Barcelona", OpeningHours: "9:00-20:00",
		},
	}
}
