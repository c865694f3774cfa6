package services

import (
	"strings"

	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
)

// Per-kind canonicalization, selected by the variant and never by
// probing field presence. Field order is fixed so the textual weighting
// a candidate receives is reproducible across ranking passes.

func hotelSearchText(h db_models.Hotel) string {
	return strings.Join([]string{
		h.Name,
		h.Description,
		strings.Join(h.Amenities, ", "),
		h.City,
		h.Country,
	}, " ")
}

func flightSearchText(f db_models.Flight) string {
	return strings.Join([]string{
		f.Airline,
		f.Origin,
		f.Destination,
		f.FlightClass,
		f.Duration,
	}, " ")
}

func attractionSearchText(a db_models.Attraction) string {
	return strings.Join([]string{
		a.Name,
		a.Description,
		a.Category,
		a.City,
		a.Country,
	}, " ")
}

func toHotelResponses(hotels []db_models.Hotel) []response_models.HotelResponse {
	responses := make([]response_models.HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		responses = append(responses, response_models.HotelResponse{
			ID:            h.ID,
			Name:          h.Name,
			City:          h.City,
			Country:       h.Country,
			PricePerNight: h.PricePerNight,
			Rating:        h.Rating,
			Description:   h.Description,
			Amenities:     h.Amenities,
			ImageURL:      h.ImageURL,
			Address:       h.Address,
		})
	}
	return responses
}

func toFlightResponses(flights []db_models.Flight) []response_models.FlightResponse {
	responses := make([]response_models.FlightResponse, 0, len(flights))
	for _, f := range flights {
		responses = append(responses, response_models.FlightResponse{
			ID:            f.ID,
			Airline:       f.Airline,
			Origin:        f.Origin,
			Destination:   f.Destination,
			DepartureDate: f.DepartureDate,
			DepartureTime: f.DepartureTime,
			ArrivalTime:   f.ArrivalTime,
			Price:         f.Price,
			Duration:      f.Duration,
			Stops:         f.Stops,
			FlightClass:   f.FlightClass,
		})
	}
	return responses
}

func toAttractionResponses(attractions []db_models.Attraction) []response_models.AttractionResponse {
	responses := make([]response_models.AttractionResponse, 0, len(attractions))
	for _, a := range attractions {
		responses = append(responses, response_models.AttractionResponse{
			ID:           a.ID,
			Name:         a.Name,
			City:         a.City,
			Country:      a.Country,
			Category:     a.Category,
			Description:  a.Description,
			Price:        a.Price,
			Rating:       a.Rating,
			ImageURL:     a.ImageURL,
			Address:      a.Address,
			OpeningHours: a.OpeningHours,
		})
	}
	return responses
}
