package handlers

import (
	"context"

	"github.com/NomadCrew/openweather-go/pkg/owm"
	"github.com/NomadCrew/openweather-go/types"
	"github.com/stretchr/testify/mock"
)

// MockWeatherClient implements WeatherClient for handler tests.
type MockWeatherClient struct {
	mock.Mock
}

var _ WeatherClient = (*MockWeatherClient)(nil)

func (m *MockWeatherClient) CurrentWeather(ctx context.Context, loc owm.Location) (*types.CurrentWeather, error) {
	args := m.Called(ctx, loc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.CurrentWeather), args.Error(1)
}

func (m *MockWeatherClient) Forecast(ctx context.Context, loc owm.Location, opts *owm.ForecastOptions) (*types.Forecast, error) {
	args := m.Called(ctx, loc, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Forecast), args.Error(1)
}

func (m *MockWeatherClient) DailyForecast(ctx context.Context, loc owm.Location, opts *owm.ForecastOptions) (*types.DailyForecast, error) {
	args := m.Called(ctx, loc, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.DailyForecast), args.Error(1)
}

func (m *MockWeatherClient) CurrentUVIndex(ctx context.Context, lat, lon float64) (*types.UVIndex, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UVIndex), args.Error(1)
}

// MockRecorder implements OutcomeRecorder.
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) Record(err error) {
	m.Called(err)
}
