package owm

import (
	"context"
	"fmt"

	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/types"
)

const DefaultUVHistoryCount = 5

type UVIndexOptions struct {
	Count int
}

func (o *UVIndexOptions) count() (int, error) {
	if o == nil {
		return 0, nil
	}
	if o.Count < 0 {
		return 0, errors.InvalidArgument("cnt", fmt.Sprintf("count %d must not be negative", o.Count))
	}
	return o.Count, nil
}

// CurrentUVIndex returns the UV index at a point.
func (c *Client) CurrentUVIndex(ctx context.Context, lat, lon float64) (*types.UVIndex, error) {
	q, err := Coordinates(lat, lon).Query()
	if err != nil {
		return nil, err
	}
	return execute[types.UVIndex](ctx, c, call{
		area:      AreaMisc,
		operation: "uv_index",
		path:      "/uvi",
		query:     q,
	})
}

func (c *Client) UVIndexForecast(ctx context.Context, lat, lon float64, opts *UVIndexOptions) (types.UVIndexList, error) {
	q, err := Coordinates(lat, lon).Query()
	if err != nil {
		return nil, err
	}
	count, err := opts.count()
	if err != nil {
		return nil, err
	}
	setCount(q, count)

	out, err := execute[types.UVIndexList](ctx, c, call{
		area:      AreaMisc,
		operation: "uv_index_forecast",
		path:      "/uvi/forecast",
		query:     q,
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// UVIndexHistory returns past UV index values over r, DefaultUVHistoryCount
// of them unless opts says otherwise.
func (c *Client) UVIndexHistory(ctx context.Context, lat, lon float64, r TimeRange, opts *UVIndexOptions) (types.UVIndexList, error) {
	q, err := Coordinates(lat, lon).Query()
	if err != nil {
		return nil, err
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	r.apply(q)
	count, err := opts.count()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		count = DefaultUVHistoryCount
	}
	setCount(q, count)

	out, err := execute[types.UVIndexList](ctx, c, call{
		area:      AreaMisc,
		operation: "uv_index_history",
		path:      "/uvi/history",
		query:     q,
	})
	if err != nil {
		return nil, err
	}
	return *out, nil
}
