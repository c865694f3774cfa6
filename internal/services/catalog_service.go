package services

import (
	"context"
	"log"

	"voyago/internal/models/db_models"
	"voyago/internal/repositories"
	"voyago/pkg/utils"
)

// CatalogServiceInterface is the candidate retriever: an empty location
// set yields the full catalog for the kind, otherwise items whose
// location fields intersect the set. Zero matches is a valid empty
// result, not an error.
type CatalogServiceInterface interface {
	RetrieveHotels(ctx context.Context, locations []string) ([]db_models.Hotel, error)
	RetrieveFlights(ctx context.Context, locations []string) ([]db_models.Flight, error)
	RetrieveAttractions(ctx context.Context, locations []string) ([]db_models.Attraction, error)
}

type catalogService struct {
	catalogRepo repositories.CatalogRepository
}

func NewCatalogService(catalogRepo repositories.CatalogRepository) CatalogServiceInterface {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) RetrieveHotels(ctx context.Context, locations []string) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	var err error

	if len(locations) == 0 {
		hotels, err = s.catalogRepo.ListHotels(ctx)
	} else {
		hotels, err = s.catalogRepo.HotelsByLocations(ctx, locations)
	}
	if err != nil {
		log.Printf("Error retrieving hotels: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return hotels, nil
}

func (s *catalogService) RetrieveFlights(ctx context.Context, locations []string) ([]db_models.Flight, error) {
	var flights []db_models.Flight
	var err error

	if len(locations) == 0 {
		flights, err = s.catalogRepo.ListFlights(ctx)
	} else {
		flights, err = s.catalogRepo.FlightsByLocations(ctx, locations)
	}
	if err != nil {
		log.Printf("Error retrieving flights: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return flights, nil
}

func (s *catalogService) RetrieveAttractions(ctx context.Context, locations []string) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	var err error

	if len(locations) == 0 {
		attractions, err = s.catalogRepo.ListAttractions(ctx)
	} else {
		attractions, err = s.catalogRepo.AttractionsByLocations(ctx, locations)
	}
	if err != nil {
		log.Printf("Error retrieving attractions: %v", err)
		return nil, utils.ErrDatabaseError
	}
	return attractions, nil
}
