package owm

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/types"
)

const (
	DefaultProDailyCount  = 16
	DefaultFreeDailyCount = 7
	MaxDailyCount         = 16

	DefaultFindCount = 10
	MaxFindCount     = 50
	MaxGroupSize     = 20
)

// ForecastOptions tunes forecast requests. A zero Count leaves the number of
// records to the endpoint default.
type ForecastOptions struct {
	Count int
}

func (o *ForecastOptions) count() int {
	if o == nil {
		return 0
	}
	return o.Count
}

// CurrentWeather returns the current conditions at loc.
func (c *Client) CurrentWeather(ctx context.Context, loc Location) (*types.CurrentWeather, error) {
	q, err := loc.Query()
	if err != nil {
		return nil, err
	}
	return execute[types.CurrentWeather](ctx, c, call{
		area:      AreaWeather,
		operation: "current_weather",
		path:      "/weather",
		query:     q,
	})
}

// Forecast returns the 5 day forecast in 3 hour steps.
func (c *Client) Forecast(ctx context.Context, loc Location, opts *ForecastOptions) (*types.Forecast, error) {
	q, err := loc.Query()
	if err != nil {
		return nil, err
	}
	if n := opts.count(); n < 0 {
		return nil, errors.InvalidArgument("cnt", fmt.Sprintf("count %d must not be negative", n))
	}
	setCount(q, opts.count())
	return execute[types.Forecast](ctx, c, call{
		area:      AreaWeather,
		operation: "forecast",
		path:      "/forecast",
		query:     q,
	})
}

// HourlyForecast returns the 4 day hourly forecast. Pro tier only.
func (c *Client) HourlyForecast(ctx context.Context, loc Location, opts *ForecastOptions) (*types.Forecast, error) {
	if c.tier != TierPro {
		return nil, errors.InvalidArgument("tier", "hourly forecast requires the pro tier")
	}
	q, err := loc.Query()
	if err != nil {
		return nil, err
	}
	if n := opts.count(); n < 0 {
		return nil, errors.InvalidArgument("cnt", fmt.Sprintf("count %d must not be negative", n))
	}
	setCount(q, opts.count())
	return execute[types.Forecast](ctx, c, call{
		area:      AreaWeather,
		operation: "hourly_forecast",
		path:      "/forecast/hourly",
		query:     q,
	})
}

// DailyForecast returns up to 16 days of daily forecasts. Without a count the
// tier maximum is requested: 16 days on pro, 7 on free.
func (c *Client) DailyForecast(ctx context.Context, loc Location, opts *ForecastOptions) (*types.DailyForecast, error) {
	q, err := loc.Query()
	if err != nil {
		return nil, err
	}
	count := opts.count()
	switch {
	case count == 0:
		count = c.defaultDailyCount()
	case count < 1 || count > MaxDailyCount:
		return nil, errors.InvalidArgument("cnt", fmt.Sprintf("count %d outside 1..%d", count, MaxDailyCount))
	}
	setCount(q, count)
	return execute[types.DailyForecast](ctx, c, call{
		area:      AreaWeather,
		operation: "daily_forecast",
		path:      "/forecast/daily",
		query:     q,
	})
}

func (c *Client) defaultDailyCount() int {
	if c.tier == TierPro {
		return DefaultProDailyCount
	}
	return DefaultFreeDailyCount
}

// CurrentWeatherGroup returns current conditions for up to 20 city ids in one
// call.
func (c *Client) CurrentWeatherGroup(ctx context.Context, ids []int64) (*types.CurrentWeatherList, error) {
	if len(ids) == 0 || len(ids) > MaxGroupSize {
		return nil, errors.InvalidArgument("id", fmt.Sprintf("need 1..%d city ids, got %d", MaxGroupSize, len(ids)))
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		if id <= 0 {
			return nil, errors.InvalidArgument("id", fmt.Sprintf("city id %d must be positive", id))
		}
		parts[i] = strconv.FormatInt(id, 10)
	}
	return execute[types.CurrentWeatherList](ctx, c, call{
		area:      AreaWeather,
		operation: "current_weather_group",
		path:      "/group",
		query:     map[string]string{"id": strings.Join(parts, ",")},
	})
}

// CitiesInCircle returns current conditions for the cities closest to a
// point. A count of zero asks for DefaultFindCount; larger counts are capped
// at MaxFindCount.
func (c *Client) CitiesInCircle(ctx context.Context, lat, lon float64, count int) (*types.CurrentWeatherList, error) {
	q, err := Coordinates(lat, lon).Query()
	if err != nil {
		return nil, err
	}
	switch {
	case count < 0:
		return nil, errors.InvalidArgument("cnt", fmt.Sprintf("count %d must not be negative", count))
	case count == 0:
		count = DefaultFindCount
	case count > MaxFindCount:
		count = MaxFindCount
	}
	setCount(q, count)
	return execute[types.CurrentWeatherList](ctx, c, call{
		area:      AreaWeather,
		operation: "cities_in_circle",
		path:      "/find",
		query:     q,
	})
}
