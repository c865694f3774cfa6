package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"voyago/internal/models/db_models"
)

type CatalogRepository interface {
	ListHotels(ctx context.Context) ([]db_models.Hotel, error)
	HotelsByLocations(ctx context.Context, locations []string) ([]db_models.Hotel, error)
	GetHotelByID(ctx context.Context, id int) (*db_models.Hotel, error)

	ListFlights(ctx context.Context) ([]db_models.Flight, error)
	FlightsByLocations(ctx context.Context, locations []string) ([]db_models.Flight, error)
	GetFlightByID(ctx context.Context, id int) (*db_models.Flight, error)

	ListAttractions(ctx context.Context) ([]db_models.Attraction, error)
	AttractionsByLocations(ctx context.Context, locations []string) ([]db_models.Attraction, error)
	GetAttractionByID(ctx context.Context, id int) (*db_models.Attraction, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListHotels(ctx context.Context) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	if err := r.db.WithContext(ctx).Order("id").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *catalogRepository) HotelsByLocations(ctx context.Context, locations []string) ([]db_models.Hotel, error) {
	var hotels []db_models.Hotel
	err := r.db.WithContext(ctx).
		Where("city IN ? OR country IN ?", locations, locations).
		Order("id").
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *catalogRepository) GetHotelByID(ctx context.Context, id int) (*db_models.Hotel, error) {
	var hotel db_models.Hotel
	err := r.db.WithContext(ctx).First(&hotel, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hotel, nil
}

func (r *catalogRepository) ListFlights(ctx context.Context) ([]db_models.Flight, error) {
	var flights []db_models.Flight
	if err := r.db.WithContext(ctx).Order("id").Find(&flights).Error; err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *catalogRepository) FlightsByLocations(ctx context.Context, locations []string) ([]db_models.Flight, error) {
	var flights []db_models.Flight
	err := r.db.WithContext(ctx).
		Where("origin IN ? OR destination IN ?", locations, locations).
		Order("id").
		Find(&flights).Error
	if err != nil {
		return nil, err
	}
	return flights, nil
}

func (r *catalogRepository) GetFlightByID(ctx context.Context, id int) (*db_models.Flight, error) {
	var flight db_models.Flight
	err := r.db.WithContext(ctx).First(&flight, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &flight, nil
}

func (r *catalogRepository) ListAttractions(ctx context.Context) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	if err := r.db.WithContext(ctx).Order("id").Find(&attractions).Error; err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *catalogRepository) AttractionsByLocations(ctx context.Context, locations []string) ([]db_models.Attraction, error) {
	var attractions []db_models.Attraction
	err := r.db.WithContext(ctx).
		Where("city IN ? OR country IN ?", locations, locations).
		Order("id").
		Find(&attractions).Error
	if err != nil {
		return nil, err
	}
	return attractions, nil
}

func (r *catalogRepository) GetAttractionByID(ctx context.Context, id int) (*db_models.Attraction, error) {
	var attraction db_models.Attraction
	err := r.db.WithContext(ctx).First(&attraction, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &attraction, nil
}
