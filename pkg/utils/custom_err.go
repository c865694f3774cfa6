package utils

import "errors"

var (
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrFlightNotFound     = errors.New("flight not found")
	ErrAttractionNotFound = errors.New("attraction not found")
	ErrInvalidBookingType = errors.New("invalid booking type")
	ErrDatabaseError      = errors.New("database error")
)
