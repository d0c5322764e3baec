package weather

// Condition is the high-level weather condition of a synthetic reading.
type Condition string

const (
	ConditionSunny  Condition = "Sunny"
	ConditionCloudy Condition = "Cloudy"
	ConditionRainy  Condition = "Rainy"
	ConditionSnowy  Condition = "Snowy"
	ConditionWindy  Condition = "Windy"
)

// Conditions lists every condition a reading may carry, in draw order.
var Conditions = []Condition{
	ConditionSunny,
	ConditionCloudy,
	ConditionRainy,
	ConditionSnowy,
	ConditionWindy,
}

// Valid reports whether c is one of Conditions.
func (c Condition) Valid() bool {
	for _, known := range Conditions {
		if c == known {
			return true
		}
	}
	return false
}

// Closed ranges for the numeric fields of a Reading.
const (
	MinTemperature = -10.0
	MaxTemperature = 35.0
	MinHumidity    = 20.0
	MaxHumidity    = 100.0
)

// Reading is a synthetic weather observation.
// City is nil when the requested name could not be canonicalized.
type Reading struct {
	City        *string   `json:"city"`
	Condition   Condition `json:"condition"`
	Temperature float64   `json:"temperature"` // Celsius, 2 decimals
	Humidity    float64   `json:"humidity"`    // percent, 2 decimals
}

// CityName returns the canonical city name and whether one is attached.
func (r Reading) CityName() (string, bool) {
	if r.City == nil {
		return "", false
	}
	return *r.City, true
}
