package services

import (
	"regexp"
	"strconv"
	"strings"
)

type ParsedIntent struct {
	Locations  []string
	Days       int
	IsSpecific bool
}

type IntentServiceInterface interface {
	ExtractLocations(text string) []string
	ExtractDays(text string) int
	ParseIntent(text string) ParsedIntent
}

// Gazetteer scanned in priority order: a city match is recorded before
// its enclosing country, and countries before region names.
var (
	gazetteerCities = []string{
		"Tokyo", "Kyoto", "Hakone",
		"Paris", "Rome", "Barcelona",
		"London", "Berlin", "Amsterdam",
	}
	gazetteerCountries = []string{
		"Japan", "France", "Italy", "Spain",
		"UK", "Germany", "Netherlands", "USA",
	}
	gazetteerRegions = []string{
		"Europe", "Asia", "America",
	}
)

var dayPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)-day`),
	regexp.MustCompile(`(?i)(\d+)day`),
	regexp.MustCompile(`(?i)(\d+)\s+days?`),
}

type intentService struct{}

func NewIntentService() IntentServiceInterface {
	return &intentService{}
}

// ExtractLocations does a case-insensitive contains scan against the
// gazetteer. Substring hits are accepted on purpose; there is no attempt
// to disambiguate a place name embedded in another word.
func (s *intentService) ExtractLocations(text string) []string {
	lower := strings.ToLower(text)

	seen := make(map[string]bool)
	var locations []string
	for _, group := range [][]string{gazetteerCities, gazetteerCountries, gazetteerRegions} {
		for _, loc := range group {
			if !strings.Contains(lower, strings.ToLower(loc)) {
				continue
			}
			if seen[loc] {
				continue
			}
			seen[loc] = true
			locations = append(locations, loc)
		}
	}

	return locations
}

// ExtractDays returns the capture of the first day pattern that matches,
// in pattern priority order. No match means a 1-day trip.
func (s *intentService) ExtractDays(text string) int {
	for _, pattern := range dayPatterns {
		match := pattern.FindStringSubmatch(text)
		if len(match) < 2 {
			continue
		}
		if days, err := strconv.Atoi(match[1]); err == nil && days >= 1 {
			return days
		}
	}
	return 1
}

func (s *intentService) ParseIntent(text string) ParsedIntent {
	locations := s.ExtractLocations(text)
	days := s.ExtractDays(text)

	return ParsedIntent{
		Locations:  locations,
		Days:       days,
		IsSpecific: len(locations) > 0 && days > 1,
	}
}
