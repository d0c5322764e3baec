package geo

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInconsistentCatalog is returned by Validate when a Thai name or alias
// points at a city missing from the thailand list.
var ErrInconsistentCatalog = errors.New("inconsistent city catalog")

// Thailand is the country identifier that the Thai-script synonyms resolve to.
const Thailand = "thailand"

// thaiCity pairs the canonical English name with its Thai display name.
type thaiCity struct {
	English string
	Thai    string
}

// thaiCities is ordered; the order is the display order of ListCities("thailand").
var thaiCities = []thaiCity{
	{"Bangkok", "กรุงเทพมหานคร"},
	{"Chiang Mai", "เชียงใหม่"},
	{"Phuket", "ภูเก็ต"},
	{"Pattaya", "พัทยา"},
	{"Khon Kaen", "ขอนแก่น"},
	{"Hat Yai", "หาดใหญ่"},
	{"Nakhon Ratchasima", "นครราชสีมา"},
	{"Chiang Rai", "เชียงราย"},
	{"Udon Thani", "อุดรธานี"},
	{"Krabi", "กระบี่"},
}

// thaiAliases maps informal or abbreviated Thai names to the English name.
var thaiAliases = map[string]string{
	"กรุงเทพ":  "Bangkok",
	"กรุงเทพฯ": "Bangkok",
}

// thailandSynonyms are the Thai-script spellings of the country name.
var thailandSynonyms = map[string]struct{}{
	"ประเทศไทย": {},
	"ไทย":       {},
}

var (
	englishThai     map[string]string
	thaiToEnglish   map[string]string
	citiesByCountry map[string][]string
)

func init() {
	englishThai = make(map[string]string, len(thaiCities))
	thaiToEnglish = make(map[string]string, len(thaiCities))
	thai := make([]string, 0, len(thaiCities))
	for _, c := range thaiCities {
		englishThai[c.English] = c.Thai
		thaiToEnglish[c.Thai] = c.English
		thai = append(thai, c.English)
	}

	citiesByCountry = map[string][]string{
		"usa":       {"New York", "Los Angeles", "Chicago", "Houston", "Phoenix"},
		"canada":    {"Toronto", "Vancouver", "Montreal", "Calgary", "Ottawa"},
		"uk":        {"London", "Manchester", "Birmingham", "Leeds", "Glasgow"},
		"australia": {"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide"},
		"india":     {"Mumbai", "Delhi", "Bangalore", "Hyderabad", "Chennai"},
		"portugal":  {"Lisbon", "Porto", "Braga", "Faro", "Coimbra"},
		Thailand:    thai,
	}
}

// NormalizeCountry lowercases the identifier and folds the Thai-script
// names of Thailand into "thailand".
func NormalizeCountry(country string) string {
	lower := strings.ToLower(country)
	if _, ok := thailandSynonyms[lower]; ok {
		return Thailand
	}
	return lower
}

// ListCities returns the cities known for a country. Unknown countries
// yield an empty, non-nil slice. The result is a copy and safe to modify.
func ListCities(country string) []string {
	cities, ok := citiesByCountry[NormalizeCountry(country)]
	if !ok {
		return []string{}
	}
	out := make([]string, len(cities))
	copy(out, cities)
	return out
}

// Canonicalize resolves an English name, Thai display name or Thai alias of
// a Thai city to its canonical English name. Matching is exact and
// case-sensitive. The boolean is false when the name is not recognized.
func Canonicalize(city string) (string, bool) {
	if _, ok := englishThai[city]; ok {
		return city, true
	}
	if en, ok := thaiToEnglish[city]; ok {
		return en, true
	}
	if en, ok := thaiAliases[city]; ok {
		return en, true
	}
	return "", false
}

// ThaiName returns the Thai display name for a canonical English Thai city.
func ThaiName(english string) (string, bool) {
	th, ok := englishThai[english]
	return th, ok
}

// Countries returns the supported country identifiers, sorted.
func Countries() []string {
	out := make([]string, 0, len(citiesByCountry))
	for k := range citiesByCountry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Validate checks that every Thai name and alias resolves to a city listed
// under thailand.
func Validate() error {
	listed := make(map[string]struct{}, len(citiesByCountry[Thailand]))
	for _, c := range citiesByCountry[Thailand] {
		listed[c] = struct{}{}
	}
	for th, en := range thaiToEnglish {
		if _, ok := listed[en]; !ok {
			return fmt.Errorf("%w: %q maps to unlisted city %q", ErrInconsistentCatalog, th, en)
		}
	}
	for alias, en := range thaiAliases {
		if _, ok := listed[en]; !ok {
			return fmt.Errorf("%w: alias %q maps to unlisted city %q", ErrInconsistentCatalog, alias, en)
		}
	}
	return nil
}
