package handlers

import (
	"context"

	"github.com/NomadCrew/openweather-go/pkg/owm"
	"github.com/NomadCrew/openweather-go/types"
)

// WeatherClient is the subset of *owm.Client served by the gateway.
type WeatherClient interface {
	CurrentWeather(ctx context.Context, loc owm.Location) (*types.CurrentWeather, error)
	Forecast(ctx context.Context, loc owm.Location, opts *owm.ForecastOptions) (*types.Forecast, error)
	DailyForecast(ctx context.Context, loc owm.Location, opts *owm.ForecastOptions) (*types.DailyForecast, error)
	CurrentUVIndex(ctx context.Context, lat, lon float64) (*types.UVIndex, error)
}

// OutcomeRecorder is told about every call that reached the weather client.
type OutcomeRecorder interface {
	Record(err error)
}

var _ WeatherClient = (*owm.Client)(nil)
