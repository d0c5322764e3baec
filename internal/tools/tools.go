// Package tools holds the string-in, string-out contract of the two MCP
// tools and the static text the host publishes about them.
package tools

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2/log"

	"github.com/i474232898/weather-mock-mcp/internal/weather"
)

// Tool names as registered with the host.
const (
	GetCitiesName  = "get_cities"
	GetWeatherName = "get_weather"
)

// Tool descriptions used by the MCP tool listing.
const (
	GetCitiesDescription = "Get list of cities for a given country. " +
		"Country name (e.g., usa, canada, uk, australia, india, portugal, thailand). Returns list of cities."
	GetWeatherDescription = "Get weather information for a given city. " +
		"City name (supports both English and Thai for Thai cities). Returns weather information."
)

// Tools wraps the weather service with the serialized tool contract.
type Tools struct {
	service *weather.Service
}

// New creates the tool set.
func New(service *weather.Service) *Tools {
	return &Tools{service: service}
}

// GetCities returns the cities of country as a JSON array, "[]" when unknown.
func (t *Tools) GetCities(country string) string {
	return encode(t.service.Cities(country), "[]")
}

// GetWeather returns a JSON object with city, condition, temperature and
// humidity. city is null when the name is not recognized.
func (t *Tools) GetWeather(city string) string {
	return encode(t.service.Weather(city), `{"city":null}`)
}

// encode never fails for the types it is given; fallback keeps the tools
// total should that change.
func encode(v any, fallback string) string {
	b, err := json.Marshal(v)
	if err != nil {
		log.Errorf("encoding tool result: %v", err)
		return fallback
	}
	return string(b)
}
