package weather

// Recorder observes tool activity. Implementations must be safe for
// concurrent use.
type Recorder interface {
	CitiesListed(country string, found bool)
	WeatherSynthesized(reading Reading)
}

type nopRecorder struct{}

func (nopRecorder) CitiesListed(string, bool)  {}
func (nopRecorder) WeatherSynthesized(Reading) {}
