package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/db_models"
	"voyago/internal/models/request_models"
	"voyago/pkg/utils"
)

type fakeCatalogRepository struct {
	hotels      map[int]db_models.Hotel
	flights     map[int]db_models.Flight
	attractions map[int]db_models.Attraction
}

func (f *fakeCatalogRepository) ListHotels(ctx context.Context) ([]db_models.Hotel, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) HotelsByLocations(ctx context.Context, locations []string) ([]db_models.Hotel, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) GetHotelByID(ctx context.Context, id int) (*db_models.Hotel, error) {
	if h, ok := f.hotels[id]; ok {
		return &h, nil
	}
	return nil, nil
}

func (f *fakeCatalogRepository) ListFlights(ctx context.Context) ([]db_models.Flight, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) FlightsByLocations(ctx context.Context, locations []string) ([]db_models.Flight, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) GetFlightByID(ctx context.Context, id int) (*db_models.Flight, error) {
	if fl, ok := f.flights[id]; ok {
		return &fl, nil
	}
	return nil, nil
}

func (f *fakeCatalogRepository) ListAttractions(ctx context.Context) ([]db_models.Attraction, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) AttractionsByLocations(ctx context.Context, locations []string) ([]db_models.Attraction, error) {
	return nil, nil
}

func (f *fakeCatalogRepository) GetAttractionByID(ctx context.Context, id int) (*db_models.Attraction, error) {
	if a, ok := f.attractions[id]; ok {
		return &a, nil
	}
	return nil, nil
}

func newTestBookingService(repo *fakeCatalogRepository) *bookingService {
	return &bookingService{
		catalogRepo: repo,
		now:         func() time.Time { return time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC) },
	}
}

func bookingTestRepo() *fakeCatalogRepository {
	return &fakeCatalogRepository{
		hotels: map[int]db_models.Hotel{
			1: {ID: 1, Name: "Tokyo Grand Hotel", City: "Tokyo", Country: "Japan"},
		},
		flights: map[int]db_models.Flight{
			2: {ID: 2, Airline: "Japan Airlines", Origin: "New York", Destination: "Tokyo"},
		},
		attractions: map[int]db_models.Attraction{
			3: {ID: 3, Name: "Meiji Shrine", City: "Tokyo", Country: "Japan"},
		},
	}
}

func TestBook_Success(t *testing.T) {
	svc := newTestBookingService(bookingTestRepo())

	tests := []struct {
		name          string
		request       request_models.BookingRequest
		wantMessage   string
		wantBookingID string
	}{
		{
			name:          "hotel",
			request:       request_models.BookingRequest{Type: "hotel", ID: 1, Date: "2025-04-01"},
			wantMessage:   "Hotel Tokyo Grand Hotel booked successfully!",
			wantBookingID: "hotel_1_20250314092653",
		},
		{
			name:          "flight",
			request:       request_models.BookingRequest{Type: "flight", ID: 2},
			wantMessage:   "Flight Japan Airlines from New York to Tokyo booked successfully!",
			wantBookingID: "flight_2_20250314092653",
		},
		{
			name:          "attraction",
			request:       request_models.BookingRequest{Type: "attraction", ID: 3},
			wantMessage:   "Ticket for Meiji Shrine purchased successfully!",
			wantBookingID: "attraction_3_20250314092653",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Book(context.Background(), tt.request)

			require.NoError(t, err)
			assert.True(t, resp.Success)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantBookingID, resp.BookingID)
		})
	}
}

func TestBook_UnknownItem(t *testing.T) {
	svc := newTestBookingService(bookingTestRepo())

	tests := []struct {
		name    string
		request request_models.BookingRequest
		wantErr error
	}{
		{name: "hotel", request: request_models.BookingRequest{Type: "hotel", ID: 99}, wantErr: utils.ErrHotelNotFound},
		{name: "flight", request: request_models.BookingRequest{Type: "flight", ID: 99}, wantErr: utils.ErrFlightNotFound},
		{name: "attraction", request: request_models.BookingRequest{Type: "attraction", ID: 99}, wantErr: utils.ErrAttractionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Book(context.Background(), tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBook_InvalidType(t *testing.T) {
	svc := newTestBookingService(bookingTestRepo())

	_, err := svc.Book(context.Background(), request_models.BookingRequest{Type: "cruise", ID: 1})

	assert.ErrorIs(t, err, utils.ErrInvalidBookingType)
}
