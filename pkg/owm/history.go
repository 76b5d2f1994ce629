package owm

import (
	"context"
	"fmt"
	"strconv"

	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/types"
)

const DefaultHistoryCount = 1

// HistoryOptions selects the samples of a historical weather query. Type
// defaults to hourly samples and Count to DefaultHistoryCount. A zero Range
// is left out of the request.
type HistoryOptions struct {
	Type  types.HistoryType
	Range TimeRange
	Count int
}

// HistoricalWeather returns past observations at loc.
func (c *Client) HistoricalWeather(ctx context.Context, loc Location, opts HistoryOptions) (*types.HistoricalWeather, error) {
	q, err := historyQuery(loc)
	if err != nil {
		return nil, err
	}

	typ := opts.Type
	if typ == "" {
		typ = types.HistoryHour
	}
	if !typ.IsValid() {
		return nil, errors.InvalidArgument("type", fmt.Sprintf("unknown history type %q", typ))
	}
	q["type"] = string(typ)

	if !opts.Range.IsZero() {
		if err := opts.Range.validate(); err != nil {
			return nil, err
		}
		opts.Range.apply(q)
	}

	count := opts.Count
	switch {
	case count < 0:
		return nil, errors.InvalidArgument("cnt", fmt.Sprintf("count %d must not be negative", count))
	case count == 0:
		count = DefaultHistoryCount
	}
	setCount(q, count)

	return execute[types.HistoricalWeather](ctx, c, call{
		area:      AreaHistory,
		operation: "historical_weather",
		path:      "/history",
		query:     q,
	})
}

// AccumulatedPrecipitation returns precipitation summed per day over r.
func (c *Client) AccumulatedPrecipitation(ctx context.Context, loc Location, r TimeRange) (types.AccumulatedPrecipitationList, error) {
	q, err := historyQuery(loc)
	if err != nil {
		return nil, err
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	r.apply(q)

	out, err := execute[types.AccumulatedPrecipitationList](ctx, c, call{
		area:      AreaHistory,
		operation: "accumulated_precipitation",
		path:      "/history/accumulated_precipitation",
		query:     q,
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// AccumulatedTemperature returns the temperature summed per day over r. With
// a threshold only the degrees above it are accumulated.
func (c *Client) AccumulatedTemperature(ctx context.Context, loc Location, r TimeRange, threshold *float64) (types.AccumulatedTemperatureList, error) {
	q, err := historyQuery(loc)
	if err != nil {
		return nil, err
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	r.apply(q)
	if threshold != nil {
		q["threshold"] = strconv.FormatFloat(*threshold, 'f', -1, 64)
	}

	out, err := execute[types.AccumulatedTemperatureList](ctx, c, call{
		area:      AreaHistory,
		operation: "accumulated_temperature",
		path:      "/history/accumulated_temperature",
		query:     q,
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func historyQuery(loc Location) (map[string]string, error) {
	if loc.kind == locationZipCode {
		return nil, errors.InvalidArgument("location", "history endpoints do not accept zip codes")
	}
	return loc.Query()
}
