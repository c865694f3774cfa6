package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"voyago/internal/models/request_models"
	"voyago/internal/models/response_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

type BookingServiceInterface interface {
	Book(ctx context.Context, request request_models.BookingRequest) (response_models.BookingResponse, error)
}

type bookingService struct {
	catalogRepo repositories.CatalogRepository
	now         func() time.Time
}

func NewBookingService(catalogRepo repositories.CatalogRepository) BookingServiceInterface {
	return &bookingService{
		catalogRepo: catalogRepo,
		now:         time.Now,
	}
}

// Book stamps a booking id; nothing is persisted.
func (s *bookingService) Book(ctx context.Context, request request_models.BookingRequest) (response_models.BookingResponse, error) {
	bookingID := fmt.Sprintf("%s_%d_%s", request.Type, request.ID, s.now().Format("20060102150405"))

	switch request.Type {
	case "hotel":
		hotel, err := s.catalogRepo.GetHotelByID(ctx, request.ID)
		if err != nil {
			log.Printf("Error fetching hotel %d: %v", request.ID, err)
			return response_models.BookingResponse{}, utils.ErrDatabaseError
		}
		if hotel == nil {
			return response_models.BookingResponse{}, utils.ErrHotelNotFound
		}
		return response_models.BookingResponse{
			Success:   true,
			Message:   fmt.Sprintf("Hotel %s booked successfully!", hotel.Name),
			BookingID: bookingID,
		}, nil

	case "flight":
		flight, err := s.catalogRepo.GetFlightByID(ctx, request.ID)
		if err != nil {
			log.Printf("Error fetching flight %d: %v", request.ID, err)
			return response_models.BookingResponse{}, utils.ErrDatabaseError
		}
		if flight == nil {
			return response_models.BookingResponse{}, utils.ErrFlightNotFound
		}
		return response_models.BookingResponse{
			Success:   true,
			Message:   fmt.Sprintf("Flight %s from %s to %s booked successfully!", flight.Airline, flight.Origin, flight.Destination),
			BookingID: bookingID,
		}, nil

	case "attraction":
		attraction, err := s.catalogRepo.GetAttractionByID(ctx, request.ID)
		if err != nil {
			log.Printf("Error fetching attraction %d: %v", request.ID, err)
			return response_models.BookingResponse{}, utils.ErrDatabaseError
		}
		if attraction == nil {
			return response_models.BookingResponse{}, utils.ErrAttractionNotFound
		}
		return response_models.BookingResponse{
			Success:   true,
			Message:   fmt.Sprintf("Ticket for %s purchased successfully!", attraction.Name),
			BookingID: bookingID,
		}, nil

	default:
		return response_models.BookingResponse{}, utils.ErrInvalidBookingType
	}
}
