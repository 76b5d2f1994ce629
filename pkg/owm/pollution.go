package owm

import (
	"context"
	"fmt"
	"time"

	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/types"
)

const pollutionTimeLayout = "2006-01-02T15:04:05Z"

// PollutionTime is the instant of an air pollution query. The zero value
// means the latest available data.
type PollutionTime struct {
	at time.Time
}

func PollutionNow() PollutionTime {
	return PollutionTime{}
}

func PollutionAt(t time.Time) PollutionTime {
	return PollutionTime{at: t}
}

func (p PollutionTime) String() string {
	if p.at.IsZero() {
		return "current"
	}
	return p.at.UTC().Format(pollutionTimeLayout)
}

// AirPollution returns pollutant readings of kind around a point.
func (c *Client) AirPollution(ctx context.Context, kind types.PollutionType, lat, lon float64, at PollutionTime) (*types.AirPollution, error) {
	if !kind.IsValid() {
		return nil, errors.InvalidArgument("type", fmt.Sprintf("unknown pollution type %q", kind))
	}
	if err := validateCoordinates(lat, lon); err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/%s/%s,%s/%s.json", kind, formatCoordinate(lat), formatCoordinate(lon), at)
	return execute[types.AirPollution](ctx, c, call{
		area:      AreaPollution,
		operation: "air_pollution",
		path:      path,
	})
}
