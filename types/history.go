package types

type HistoryItem struct {
	Dt      *int64             `json:"dt,omitempty"`
	Main    *MainData          `json:"main,omitempty"`
	Wind    *Wind              `json:"wind,omitempty"`
	Clouds  *Clouds            `json:"clouds,omitempty"`
	Weather []WeatherCondition `json:"weather,omitempty"`
	Rain    *Precipitation     `json:"rain,omitempty"`
	Snow    *Precipitation     `json:"snow,omitempty"`
}

// HistoricalWeather is the payload of /history.
type HistoricalWeather struct {
	Message  *string       `json:"message,omitempty"`
	Cod      *string       `json:"cod,omitempty"`
	CityID   *int64        `json:"city_id,omitempty"`
	CalcTime *float64      `json:"calctime,omitempty"`
	Cnt      *int          `json:"cnt,omitempty"`
	List     []HistoryItem `json:"list,omitempty"`
}

func (h *HistoricalWeather) HasCityID() bool { return h != nil && h.CityID != nil }
func (h *HistoricalWeather) HasList() bool { return h != nil && len(h.List) > 0 }

type AccumulatedPrecipitation struct {
	Date  *string  `json:"date,omitempty"`
	Rain  *float64 `json:"rain,omitempty"`
	Count *int     `json:"count,omitempty"`
}

// AccumulatedPrecipitationList is the payload of /history/accumulated_precipitation.
type AccumulatedPrecipitationList []AccumulatedPrecipitation

type AccumulatedTemperature struct {
	Date  *string  `json:"date,omitempty"`
	Temp  *float64 `json:"temp,omitempty"`
	Count *int     `json:"count,omitempty"`
}

// AccumulatedTemperatureList is the payload of /history/accumulated_temperature.
type AccumulatedTemperatureList []AccumulatedTemperature
