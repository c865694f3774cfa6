package services

import (
	"context"
	"strings"

	"voyago/internal/models/db_models"
	"voyago/internal/models/response_models"
)

const (
	maxHotels      = 6
	maxFlights     = 5
	maxAttractions = 6

	// Presentation maximum used by the day view, which has no plan text
	// to derive a trip length from.
	maxPlanDays = 7
)

// Curated defaults used when a plan names a broad region or no location
// at all. Retrieval matches city or country, so one list serves every
// catalog kind.
var defaultLocations = []string{"Paris", "Rome", "Barcelona", "France", "Italy", "Spain"}

type RecommendationServiceInterface interface {
	ProcessPlan(ctx context.Context, plan, preferences string) (response_models.RecommendationsResponse, error)
	Chat(ctx context.Context, message, currentPlan string) (response_models.RecommendationsResponse, error)
	DayView(ctx context.Context, day int, locations []string) (response_models.RecommendationsResponse, error)
}

type recommendationService struct {
	intent  IntentServiceInterface
	catalog CatalogServiceInterface
	ranker  RankingStrategy
}

func NewRecommendationService(
	intent IntentServiceInterface,
	catalog CatalogServiceInterface,
	ranker RankingStrategy,
) RecommendationServiceInterface {
	return &recommendationService{
		intent:  intent,
		catalog: catalog,
		ranker:  ranker,
	}
}

// ProcessPlan handles the initial travel plan. Results are presented in
// retrieval order; ranking only happens on chat turns, where there is a
// preference utterance to rank against.
func (s *recommendationService) ProcessPlan(ctx context.Context, plan, preferences string) (response_models.RecommendationsResponse, error) {
	parsed := s.intent.ParseIntent(plan)

	locations := parsed.Locations
	if preferences != "" {
		locations = unionLocations(locations, s.intent.ExtractLocations(preferences))
	}

	if len(locations) == 0 || strings.Contains(strings.ToLower(plan), "europe") {
		locations = defaultLocations
	}

	hotels, flights, attractions, err := s.retrieveAll(ctx, locations)
	if err != nil {
		return response_models.RecommendationsResponse{}, err
	}

	return buildResponse(hotels, flights, attractions, parsed.Days, 1), nil
}

// Chat re-parses the prior plan and the new message each turn. Message
// locations win outright when present; a message day count of 1 is
// treated as unspecified and does not override the plan's.
func (s *recommendationService) Chat(ctx context.Context, message, currentPlan string) (response_models.RecommendationsResponse, error) {
	locations := s.intent.ExtractLocations(message)
	days := s.intent.ExtractDays(message)

	planIntent := s.intent.ParseIntent(currentPlan)
	if len(locations) == 0 {
		locations = planIntent.Locations
	}
	if days <= 1 {
		days = planIntent.Days
	}

	hotels, flights, attractions, err := s.retrieveAll(ctx, locations)
	if err != nil {
		return response_models.RecommendationsResponse{}, err
	}

	hotels = s.rankHotels(ctx, message, hotels)
	flights = s.rankFlights(ctx, message, flights)
	attractions = s.rankAttractions(ctx, message, attractions)

	return buildResponse(hotels, flights, attractions, days, 1), nil
}

// DayView is stateless: caller-supplied locations (possibly none), no
// ranking, fixed caps, the requested day echoed back.
func (s *recommendationService) DayView(ctx context.Context, day int, locations []string) (response_models.RecommendationsResponse, error) {
	hotels, flights, attractions, err := s.retrieveAll(ctx, locations)
	if err != nil {
		return response_models.RecommendationsResponse{}, err
	}

	return buildResponse(hotels, flights, attractions, maxPlanDays, day), nil
}

func (s *recommendationService) retrieveAll(ctx context.Context, locations []string) ([]db_models.Hotel, []db_models.Flight, []db_models.Attraction, error) {
	hotels, err := s.catalog.RetrieveHotels(ctx, locations)
	if err != nil {
		return nil, nil, nil, err
	}
	flights, err := s.catalog.RetrieveFlights(ctx, locations)
	if err != nil {
		return nil, nil, nil, err
	}
	attractions, err := s.catalog.RetrieveAttractions(ctx, locations)
	if err != nil {
		return nil, nil, nil, err
	}
	return hotels, flights, attractions, nil
}

func (s *recommendationService) rankHotels(ctx context.Context, message string, hotels []db_models.Hotel) []db_models.Hotel {
	docs := make([]Document, len(hotels))
	for i, h := range hotels {
		docs[i] = Document{Index: i, Text: hotelSearchText(h)}
	}

	scored := s.ranker.Rank(ctx, message, docs)
	ordered := make([]db_models.Hotel, len(scored))
	for i, sd := range scored {
		ordered[i] = hotels[sd.Index]
	}
	return ordered
}

func (s *recommendationService) rankFlights(ctx context.Context, message string, flights []db_models.Flight) []db_models.Flight {
	docs := make([]Document, len(flights))
	for i, f := range flights {
		docs[i] = Document{Index: i, Text: flightSearchText(f)}
	}

	scored := s.ranker.Rank(ctx, message, docs)
	ordered := make([]db_models.Flight, len(scored))
	for i, sd := range scored {
		ordered[i] = flights[sd.Index]
	}
	return ordered
}

func (s *recommendationService) rankAttractions(ctx context.Context, message string, attractions []db_models.Attraction) []db_models.Attraction {
	docs := make([]Document, len(attractions))
	for i, a := range attractions {
		docs[i] = Document{Index: i, Text: attractionSearchText(a)}
	}

	scored := s.ranker.Rank(ctx, message, docs)
	ordered := make([]db_models.Attraction, len(scored))
	for i, sd := range scored {
		ordered[i] = attractions[sd.Index]
	}
	return ordered
}

func unionLocations(first, second []string) []string {
	seen := make(map[string]bool)
	var union []string
	for _, loc := range append(append([]string{}, first...), second...) {
		if !seen[loc] {
			seen[loc] = true
			union = append(union, loc)
		}
	}
	return union
}

func buildResponse(hotels []db_models.Hotel, flights []db_models.Flight, attractions []db_models.Attraction, days, currentDay int) response_models.RecommendationsResponse {
	if len(hotels) > maxHotels {
		hotels = hotels[:maxHotels]
	}
	if len(flights) > maxFlights {
		flights = flights[:maxFlights]
	}
	if len(attractions) > maxAttractions {
		attractions = attractions[:maxAttractions]
	}

	return response_models.RecommendationsResponse{
		Hotels:      toHotelResponses(hotels),
		Flights:     toFlightResponses(flights),
		Attractions: toAttractionResponses(attractions),
		Days:        days,
		CurrentDay:  currentDay,
	}
}
