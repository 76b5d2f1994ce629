package owm

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/types"
)

// DefaultZipCountry is used for zip code lookups that name no country.
const DefaultZipCountry = types.CountryUnitedStates

type locationKind int

const (
	locationUnset locationKind = iota
	locationCityName
	locationCityID
	locationCoordinates
	locationZipCode
)

// Location identifies the place a request is about. Exactly one form is set;
// build it with CityName, CityNameIn, CityID, Coordinates, ZipCode or ZipCodeIn.
type Location struct {
	kind    locationKind
	name    string
	country types.Country
	id      int64
	lat     float64
	lon     float64
}

func CityName(name string) Location {
	return Location{kind: locationCityName, name: name}
}

// CityNameIn narrows a city name to a country, sent as "name,CODE".
func CityNameIn(name string, country types.Country) Location {
	return Location{kind: locationCityName, name: name, country: country}
}

func CityID(id int64) Location {
	return Location{kind: locationCityID, id: id}
}

func Coordinates(lat, lon float64) Location {
	return Location{kind: locationCoordinates, lat: lat, lon: lon}
}

// ZipCode looks up a zip code in DefaultZipCountry.
func ZipCode(zip string) Location {
	return ZipCodeIn(zip, "")
}

func ZipCodeIn(zip string, country types.Country) Location {
	return Location{kind: locationZipCode, name: zip, country: country}
}

func (l Location) IsZero() bool {
	return l.kind == locationUnset
}

// Query returns the query parameters selecting the location.
func (l Location) Query() (map[string]string, error) {
	switch l.kind {
	case locationCityName:
		name := strings.TrimSpace(l.name)
		if name == "" {
			return nil, errors.InvalidArgument("location", "city name must not be empty")
		}
		v, err := withCountry(name, l.country, false)
		if err != nil {
			return nil, err
		}
		return map[string]string{"q": v}, nil

	case locationCityID:
		if l.id <= 0 {
			return nil, errors.InvalidArgument("location", fmt.Sprintf("city id %d must be positive", l.id))
		}
		return map[string]string{"id": strconv.FormatInt(l.id, 10)}, nil

	case locationCoordinates:
		if err := validateCoordinates(l.lat, l.lon); err != nil {
			return nil, err
		}
		return map[string]string{"lat": formatCoordinate(l.lat), "lon": formatCoordinate(l.lon)}, nil

	case locationZipCode:
		zip := strings.TrimSpace(l.name)
		if zip == "" {
			return nil, errors.InvalidArgument("location", "zip code must not be empty")
		}
		v, err := withCountry(zip, l.country, true)
		if err != nil {
			return nil, err
		}
		return map[string]string{"zip": v}, nil

	default:
		return nil, errors.InvalidArgument("location", "no location given")
	}
}

func (l Location) String() string {
	switch l.kind {
	case locationCityName:
		if l.country != "" {
			return l.name + "," + string(l.country)
		}
		return l.name
	case locationCityID:
		return "id:" + strconv.FormatInt(l.id, 10)
	case locationCoordinates:
		return formatCoordinate(l.lat) + "," + formatCoordinate(l.lon)
	case locationZipCode:
		country := l.country
		if country == "" {
			country = DefaultZipCountry
		}
		return "zip:" + l.name + "," + string(country)
	default:
		return "unset"
	}
}

func withCountry(value string, country types.Country, required bool) (string, error) {
	if country == "" {
		if !required {
			return value, nil
		}
		country = DefaultZipCountry
	}
	if !country.IsValid() {
		return "", errors.InvalidArgument("country", fmt.Sprintf("unknown country code %q", country))
	}
	return value + "," + string(country), nil
}

func validateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return errors.InvalidArgument("lat", fmt.Sprintf("latitude %v out of range", lat))
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return errors.InvalidArgument("lon", fmt.Sprintf("longitude %v out of range", lon))
	}
	return nil
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
