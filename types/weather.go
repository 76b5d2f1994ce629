package types

import "time"

// Response models mirror the OpenWeatherMap JSON payloads. The service omits
// fields freely, so every field is optional and pointer typed; use the Has*
// predicates before dereferencing.

type Coord struct {
	Lat *float64 `json:"lat,omitempty"`
	Lon *float64 `json:"lon,omitempty"`
}

type WeatherCondition struct {
	ID          *int    `json:"id,omitempty"`
	Main        *string `json:"main,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

type MainData struct {
	Temp      *float64 `json:"temp,omitempty"`
	FeelsLike *float64 `json:"feels_like,omitempty"`
	TempMin   *float64 `json:"temp_min,omitempty"`
	TempMax   *float64 `json:"temp_max,omitempty"`
	Pressure  *float64 `json:"pressure,omitempty"`
	SeaLevel  *float64 `json:"sea_level,omitempty"`
	GrndLevel *float64 `json:"grnd_level,omitempty"`
	Humidity  *int     `json:"humidity,omitempty"`
	TempKf    *float64 `json:"temp_kf,omitempty"`
}

type Wind struct {
	Speed *float64 `json:"speed,omitempty"`
	Deg   *float64 `json:"deg,omitempty"`
	Gust  *float64 `json:"gust,omitempty"`
}

type Clouds struct {
	All *int `json:"all,omitempty"`
}

// Precipitation holds rain or snow volume in millimetres.
type Precipitation struct {
	OneHour   *float64 `json:"1h,omitempty"`
	ThreeHour *float64 `json:"3h,omitempty"`
}

type Sys struct {
	Type    *int    `json:"type,omitempty"`
	ID      *int    `json:"id,omitempty"`
	Country *string `json:"country,omitempty"`
	Sunrise *int64  `json:"sunrise,omitempty"`
	Sunset  *int64  `json:"sunset,omitempty"`
	Pod     *string `json:"pod,omitempty"`
}

type City struct {
	ID         *int64  `json:"id,omitempty"`
	Name       *string `json:"name,omitempty"`
	Coord      *Coord  `json:"coord,omitempty"`
	Country    *string `json:"country,omitempty"`
	Population *int64  `json:"population,omitempty"`
	Timezone   *int    `json:"timezone,omitempty"`
	Sunrise    *int64  `json:"sunrise,omitempty"`
	Sunset     *int64  `json:"sunset,omitempty"`
}

// CurrentWeather is the payload of /weather and an element of /group and /find.
type CurrentWeather struct {
	Coord      *Coord             `json:"coord,omitempty"`
	Weather    []WeatherCondition `json:"weather,omitempty"`
	Base       *string            `json:"base,omitempty"`
	Main       *MainData          `json:"main,omitempty"`
	Visibility *int               `json:"visibility,omitempty"`
	Wind       *Wind              `json:"wind,omitempty"`
	Clouds     *Clouds            `json:"clouds,omitempty"`
	Rain       *Precipitation     `json:"rain,omitempty"`
	Snow       *Precipitation     `json:"snow,omitempty"`
	Dt         *int64             `json:"dt,omitempty"`
	Sys        *Sys               `json:"sys,omitempty"`
	Timezone   *int               `json:"timezone,omitempty"`
	ID         *int64             `json:"id,omitempty"`
	Name       *string            `json:"name,omitempty"`
	Cod        *int               `json:"cod,omitempty"`
}

func (w *CurrentWeather) HasCoord() bool { return w != nil && w.Coord != nil }
func (w *CurrentWeather) HasWeather() bool { return w != nil && len(w.Weather) > 0 }
func (w *CurrentWeather) HasMain() bool { return w != nil && w.Main != nil }
func (w *CurrentWeather) HasVisibility() bool { return w != nil && w.Visibility != nil }
func (w *CurrentWeather) HasWind() bool { return w != nil && w.Wind != nil }
func (w *CurrentWeather) HasClouds() bool { return w != nil && w.Clouds != nil }
func (w *CurrentWeather) HasRain() bool { return w != nil && w.Rain != nil }
func (w *CurrentWeather) HasSnow() bool { return w != nil && w.Snow != nil }
func (w *CurrentWeather) HasDateTime() bool { return w != nil && w.Dt != nil }
func (w *CurrentWeather) HasSys() bool { return w != nil && w.Sys != nil }
func (w *CurrentWeather) HasCityID() bool { return w != nil && w.ID != nil }
func (w *CurrentWeather) HasCityName() bool { return w != nil && w.Name != nil }

// DateTime returns the time of data calculation, or the zero time when absent.
func (w *CurrentWeather) DateTime() time.Time {
	if !w.HasDateTime() {
		return time.Time{}
	}
	return time.Unix(*w.Dt, 0).UTC()
}

// CurrentWeatherList is the payload of /group and /find.
type CurrentWeatherList struct {
	Cnt     *int             `json:"cnt,omitempty"`
	Message *string          `json:"message,omitempty"`
	List    []CurrentWeather `json:"list,omitempty"`
}

func (l *CurrentWeatherList) HasList() bool { return l != nil && len(l.List) > 0 }
