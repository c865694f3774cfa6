package services

import (
	"context"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voyago/internal/models/db_models"
)

// fakeCatalogService filters an in-memory catalog the way the retriever
// contract requires and records the location set of the last call.
type fakeCatalogService struct {
	hotels      []db_models.Hotel
	flights     []db_models.Flight
	attractions []db_models.Attraction

	lastLocations []string
}

func (f *fakeCatalogService) RetrieveHotels(ctx context.Context, locations []string) ([]db_models.Hotel, error) {
	f.lastLocations = locations
	if len(locations) == 0 {
		return f.hotels, nil
	}
	var matched []db_models.Hotel
	for _, h := range f.hotels {
		if containsLocation(locations, h.City) || containsLocation(locations, h.Country) {
			matched = append(matched, h)
		}
	}
	return matched, nil
}

func (f *fakeCatalogService) RetrieveFlights(ctx context.Context, locations []string) ([]db_models.Flight, error) {
	f.lastLocations = locations
	if len(locations) == 0 {
		return f.flights, nil
	}
	var matched []db_models.Flight
	for _, fl := range f.flights {
		if containsLocation(locations, fl.Origin) || containsLocation(locations, fl.Destination) {
			matched = append(matched, fl)
		}
	}
	return matched, nil
}

func (f *fakeCatalogService) RetrieveAttractions(ctx context.Context, locations []string) ([]db_models.Attraction, error) {
	f.lastLocations = locations
	if len(locations) == 0 {
		return f.attractions, nil
	}
	var matched []db_models.Attraction
	for _, a := range f.attractions {
		if containsLocation(locations, a.City) || containsLocation(locations, a.Country) {
			matched = append(matched, a)
		}
	}
	return matched, nil
}

func containsLocation(locations []string, value string) bool {
	for _, loc := range locations {
		if loc == value {
			return true
		}
	}
	return false
}

func testCatalog() *fakeCatalogService {
	return &fakeCatalogService{
		hotels: []db_models.Hotel{
			{ID: 1, Name: "Tokyo Grand Hotel", City: "Tokyo", Country: "Japan", Description: "City hotel", Amenities: pq.StringArray{"WiFi", "Pool"}},
			{ID: 2, Name: "Hakone Mountain Resort", City: "Hakone", Country: "Japan", Description: "Resort with nature and hot springs"},
			{ID: 3, Name: "Paris Eiffel View Hotel", City: "Paris", Country: "France", Description: "Boutique hotel"},
			{ID: 4, Name: "Rome Historic Center Hotel", City: "Rome", Country: "Italy", Description: "Near the Colosseum"},
		},
		flights: []db_models.Flight{
			{ID: 1, Airline: "Japan Airlines", Origin: "New York", Destination: "Tokyo"},
			{ID: 2, Airline: "Air France", Origin: "New York", Destination: "Paris"},
			{ID: 3, Airline: "Lufthansa", Origin: "London", Destination: "Rome"},
		},
		attractions: []db_models.Attraction{
			{ID: 1, Name: "Shibuya Crossing", City: "Tokyo", Country: "Japan", Category: "culture"},
			{ID: 2, Name: "Meiji Shrine", City: "Tokyo", Country: "Japan", Category: "nature", Description: "Shrine surrounded by nature"},
			{ID: 3, Name: "Louvre Museum", City: "Paris", Country: "France", Category: "history"},
		},
	}
}

func newTestRecommendationService(catalog CatalogServiceInterface, ranker RankingStrategy) RecommendationServiceInterface {
	if ranker == nil {
		ranker = NewEmbeddingRanker(&fakeEmbeddingClient{})
	}
	return NewRecommendationService(NewIntentService(), catalog, ranker)
}

func TestProcessPlan_SpecificLocations(t *testing.T) {
	catalog := testCatalog()
	svc := newTestRecommendationService(catalog, nil)

	resp, err := svc.ProcessPlan(context.Background(), "7-day trip to Tokyo and Kyoto", "")

	require.NoError(t, err)
	assert.Equal(t, []string{"Tokyo", "Kyoto"}, catalog.lastLocations)
	assert.Equal(t, 7, resp.Days)
	assert.Equal(t, 1, resp.CurrentDay)

	// Retrieval order is preserved; the initial plan is never ranked.
	require.Len(t, resp.Hotels, 1)
	assert.Equal(t, "Tokyo Grand Hotel", resp.Hotels[0].Name)
	require.Len(t, resp.Flights, 1)
	assert.Equal(t, "Japan Airlines", resp.Flights[0].Airline)
	require.Len(t, resp.Attractions, 2)
	assert.Equal(t, "Shibuya Crossing", resp.Attractions[0].Name)
}

func TestProcessPlan_PreferenceLocationsAreUnioned(t *testing.T) {
	catalog := testCatalog()
	svc := newTestRecommendationService(catalog, nil)

	_, err := svc.ProcessPlan(context.Background(), "trip to Tokyo", "would love a stop in Paris")

	require.NoError(t, err)
	assert.Equal(t, []string{"Tokyo", "Paris"}, catalog.lastLocations)
}

func TestProcessPlan_DefaultsForRegionOrNoLocation(t *testing.T) {
	tests := []struct {
		name string
		plan string
	}{
		{name: "broad region keyword", plan: "10 days around Europe"},
		{name: "no recognizable location", plan: "somewhere warm and cheap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := testCatalog()
			svc := newTestRecommendationService(catalog, nil)

			_, err := svc.ProcessPlan(context.Background(), tt.plan, "")

			require.NoError(t, err)
			assert.Equal(t, defaultLocations, catalog.lastLocations)
		})
	}
}

func TestChat_PriorPlanLocationsCarryOver(t *testing.T) {
	catalog := testCatalog()
	svc := newTestRecommendationService(catalog, nil)

	resp, err := svc.Chat(context.Background(), "I want something chill with nature", "5 days in Paris")

	require.NoError(t, err)
	assert.Equal(t, []string{"Paris"}, catalog.lastLocations)
	assert.Equal(t, 5, resp.Days)
	require.Len(t, resp.Hotels, 1)
	assert.Equal(t, "Paris Eiffel View Hotel", resp.Hotels[0].Name)
}

func TestChat_MessageLocationsOverridePlan(t *testing.T) {
	catalog := testCatalog()
	svc := newTestRecommendationService(catalog, nil)

	resp, err := svc.Chat(context.Background(), "Actually take me to Rome instead, 10 days", "5 days in Paris")

	require.NoError(t, err)
	assert.Equal(t, []string{"Rome"}, catalog.lastLocations)
	assert.Equal(t, 10, resp.Days)
}

func TestChat_DayCountOfOneDoesNotOverride(t *testing.T) {
	catalog := testCatalog()
	svc := newTestRecommendationService(catalog, nil)

	resp, err := svc.Chat(context.Background(), "make it 1 day of museums", "5 days in Paris")

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Days, "a day count of 1 means unspecified")
}

func TestChat_RanksCandidatesAgainstMessage(t *testing.T) {
	catalog := testCatalog()
	svc := newTestRecommendationService(catalog, nil)

	// Both hotels are in Japan; the nature resort should outrank the
	// city hotel for a nature-seeking message.
	resp, err := svc.Chat(context.Background(), "somewhere chill with nature", "a week in Japan")

	require.NoError(t, err)
	require.Len(t, resp.Hotels, 2)
	assert.Equal(t, "Hakone Mountain Resort", resp.Hotels[0].Name)
	assert.Equal(t, "Tokyo Grand Hotel", resp.Hotels[1].Name)

	require.Len(t, resp.Attractions, 2)
	assert.Equal(t, "Meiji Shrine", resp.Attractions[0].Name)
}

func TestChat_ProviderFailureKeepsRetrievalOrder(t *testing.T) {
	catalog := testCatalog()
	ranker := NewEmbeddingRanker(&fakeEmbeddingClient{fail: true})
	svc := newTestRecommendationService(catalog, ranker)

	resp, err := svc.Chat(context.Background(), "somewhere chill with nature", "a week in Japan")

	require.NoError(t, err, "provider failure must not fail the request")
	require.Len(t, resp.Hotels, 2)
	assert.Equal(t, "Tokyo Grand Hotel", resp.Hotels[0].Name)
	assert.Equal(t, "Hakone Mountain Resort", resp.Hotels[1].Name)
}

func TestChat_UnmatchedLocationYieldsEmptyLists(t *testing.T) {
	catalog := testCatalog()
	svc := newTestRecommendationService(catalog, nil)

	resp, err := svc.Chat(context.Background(), "take me to Berlin", "")

	require.NoError(t, err)
	assert.Empty(t, resp.Hotels)
	assert.Empty(t, resp.Flights)
	assert.Empty(t, resp.Attractions)
}

func TestDayView_FullCatalogWithCaps(t *testing.T) {
	catalog := testCatalog()
	for id := 5; id <= 12; id++ {
		catalog.hotels = append(catalog.hotels, db_models.Hotel{ID: id, Name: "Filler Hotel", City: "Tokyo", Country: "Japan"})
	}
	svc := newTestRecommendationService(catalog, nil)

	resp, err := svc.DayView(context.Background(), 3, nil)

	require.NoError(t, err)
	assert.Empty(t, catalog.lastLocations)
	assert.Len(t, resp.Hotels, maxHotels)
	assert.LessOrEqual(t, len(resp.Flights), maxFlights)
	assert.LessOrEqual(t, len(resp.Attractions), maxAttractions)
	assert.Equal(t, maxPlanDays, resp.Days)
	assert.Equal(t, 3, resp.CurrentDay)

	// Catalog order, no ranking.
	assert.Equal(t, 1, resp.Hotels[0].ID)
	assert.Equal(t, 2, resp.Hotels[1].ID)
}

func TestDayView_WithLocations(t *testing.T) {
	catalog := testCatalog()
	svc := newTestRecommendationService(catalog, nil)

	resp, err := svc.DayView(context.Background(), 2, []string{"France"})

	require.NoError(t, err)
	require.Len(t, resp.Hotels, 1)
	assert.Equal(t, "Paris Eiffel View Hotel", resp.Hotels[0].Name)
	assert.Equal(t, 2, resp.CurrentDay)
}
