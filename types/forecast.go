package types

import "time"

// ForecastItem is one step of the 3-hour and hourly forecasts.
type ForecastItem struct {
	Dt         *int64             `json:"dt,omitempty"`
	Main       *MainData          `json:"main,omitempty"`
	Weather    []WeatherCondition `json:"weather,omitempty"`
	Clouds     *Clouds            `json:"clouds,omitempty"`
	Wind       *Wind              `json:"wind,omitempty"`
	Visibility *int               `json:"visibility,omitempty"`
	Pop        *float64           `json:"pop,omitempty"`
	Rain       *Precipitation     `json:"rain,omitempty"`
	Snow       *Precipitation     `json:"snow,omitempty"`
	Sys        *Sys               `json:"sys,omitempty"`
	DtTxt      *string            `json:"dt_txt,omitempty"`
}

func (f *ForecastItem) HasDateTime() bool { return f != nil && f.Dt != nil }
func (f *ForecastItem) HasMain() bool { return f != nil && f.Main != nil }

func (f *ForecastItem) DateTime() time.Time {
	if !f.HasDateTime() {
		return time.Time{}
	}
	return time.Unix(*f.Dt, 0).UTC()
}

// Forecast is the payload of /forecast and /forecast/hourly.
type Forecast struct {
	Cod     *string        `json:"cod,omitempty"`
	Message *float64       `json:"message,omitempty"`
	Cnt     *int           `json:"cnt,omitempty"`
	List    []ForecastItem `json:"list,omitempty"`
	City    *City          `json:"city,omitempty"`
}

func (f *Forecast) HasCity() bool { return f != nil && f.City != nil }
func (f *Forecast) HasList() bool { return f != nil && len(f.List) > 0 }
func (f *Forecast) HasCount() bool { return f != nil && f.Cnt != nil }

type DailyTemperature struct {
	Day   *float64 `json:"day,omitempty"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Night *float64 `json:"night,omitempty"`
	Eve   *float64 `json:"eve,omitempty"`
	Morn  *float64 `json:"morn,omitempty"`
}

type DailyFeelsLike struct {
	Day   *float64 `json:"day,omitempty"`
	Night *float64 `json:"night,omitempty"`
	Eve   *float64 `json:"eve,omitempty"`
	Morn  *float64 `json:"morn,omitempty"`
}

// DailyItem is one day of /forecast/daily. Rain and snow are daily totals.
type DailyItem struct {
	Dt        *int64             `json:"dt,omitempty"`
	Sunrise   *int64             `json:"sunrise,omitempty"`
	Sunset    *int64             `json:"sunset,omitempty"`
	Temp      *DailyTemperature  `json:"temp,omitempty"`
	FeelsLike *DailyFeelsLike    `json:"feels_like,omitempty"`
	Pressure  *float64           `json:"pressure,omitempty"`
	Humidity  *int               `json:"humidity,omitempty"`
	Weather   []WeatherCondition `json:"weather,omitempty"`
	Speed     *float64           `json:"speed,omitempty"`
	Deg       *float64           `json:"deg,omitempty"`
	Gust      *float64           `json:"gust,omitempty"`
	Clouds    *int               `json:"clouds,omitempty"`
	Pop       *float64           `json:"pop,omitempty"`
	Rain      *float64           `json:"rain,omitempty"`
	Snow      *float64           `json:"snow,omitempty"`
}

func (d *DailyItem) HasTemp() bool { return d != nil && d.Temp != nil }

// DailyForecast is the payload of /forecast/daily.
type DailyForecast struct {
	City    *City       `json:"city,omitempty"`
	Cod     *string     `json:"cod,omitempty"`
	Message *float64    `json:"message,omitempty"`
	Cnt     *int        `json:"cnt,omitempty"`
	List    []DailyItem `json:"list,omitempty"`
}

func (f *DailyForecast) HasCity() bool { return f != nil && f.City != nil }
func (f *DailyForecast) HasList() bool { return f != nil && len(f.List) > 0 }
func (f *DailyForecast) HasCount() bool { return f != nil && f.Cnt != nil }
