package weather

import (
	"fmt"

	"github.com/gofiber/fiber/v2/log"

	"github.com/i474232898/weather-mock-mcp/internal/geo"
)

// Service answers city and weather lookups on top of the geo catalog and
// the synthesizer.
type Service struct {
	synth    *Synthesizer
	recorder Recorder
}

// NewService creates a new Service. A nil synth uses the default source and
// a nil recorder discards events.
func NewService(synth *Synthesizer, recorder Recorder) *Service {
	if synth == nil {
		synth = NewSynthesizer()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Service{
		synth:    synth,
		recorder: recorder,
	}
}

// Cities lists the cities of a country; unknown countries give an empty list.
func (s *Service) Cities(country string) []string {
	cities := geo.ListCities(country)
	log.Debugf("cities lookup for %q returned %d entries", country, len(cities))
	s.recorder.CitiesListed(country, len(cities) > 0)
	return cities
}

// Weather canonicalizes the city name and synthesizes a reading. Unknown
// cities still get a reading, just without a city attached.
func (s *Service) Weather(city string) Reading {
	name, ok := geo.Canonicalize(city)
	if !ok {
		log.Debugf("city %q not recognized; answering without city", city)
	}
	r := s.synth.Synthesize(name, ok)
	s.recorder.WeatherSynthesized(r)
	return r
}

// SelfCheck verifies the catalog invariant and that a probe reading for
// every Thai city is well formed. It does not touch the recorder.
func (s *Service) SelfCheck() error {
	if err := geo.Validate(); err != nil {
		return err
	}
	for _, city := range geo.ListCities(geo.Thailand) {
		name, ok := geo.Canonicalize(city)
		if !ok || name != city {
			return fmt.Errorf("%w: %q does not canonicalize to itself", geo.ErrInconsistentCatalog, city)
		}
		if err := checkReading(s.synth.Synthesize(name, ok)); err != nil {
			return fmt.Errorf("probe reading for %s: %w", city, err)
		}
	}
	return nil
}

func checkReading(r Reading) error {
	if !r.Condition.Valid() {
		return fmt.Errorf("unknown condition %q", r.Condition)
	}
	if r.Temperature < MinTemperature || r.Temperature > MaxTemperature {
		return fmt.Errorf("temperature %.2f out of range", r.Temperature)
	}
	if r.Humidity < MinHumidity || r.Humidity > MaxHumidity {
		return fmt.Errorf("humidity %.2f out of range", r.Humidity)
	}
	return nil
}
