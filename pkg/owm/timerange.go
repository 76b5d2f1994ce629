package owm

import (
	"fmt"
	"strconv"
	"time"

	"github.com/NomadCrew/openweather-go/errors"
)

// TimeRange is a closed interval in epoch seconds.
type TimeRange struct {
	Start int64
	End   int64
}

func Between(start, end int64) TimeRange {
	return TimeRange{Start: start, End: end}
}

// BetweenTimes converts both instants to epoch seconds, truncating any
// sub-second part.
func BetweenTimes(start, end time.Time) TimeRange {
	return TimeRange{Start: epochSeconds(start), End: epochSeconds(end)}
}

func epochSeconds(t time.Time) int64 {
	return t.UnixMilli() / 1000
}

func (r TimeRange) IsZero() bool {
	return r.Start == 0 && r.End == 0
}

func (r TimeRange) validate() error {
	if r.End < r.Start {
		return errors.InvalidArgument("end", fmt.Sprintf("end %d is before start %d", r.End, r.Start))
	}
	return nil
}

func (r TimeRange) apply(q map[string]string) {
	q["start"] = strconv.FormatInt(r.Start, 10)
	q["end"] = strconv.FormatInt(r.End, 10)
}
