package types

import "time"

// UVIndex is the payload of /uvi and an element of /uvi/forecast and /uvi/history.
type UVIndex struct {
	Lat     *float64 `json:"lat,omitempty"`
	Lon     *float64 `json:"lon,omitempty"`
	DateISO *string  `json:"date_iso,omitempty"`
	Date    *int64   `json:"date,omitempty"`
	Value   *float64 `json:"value,omitempty"`
}

func (u *UVIndex) HasValue() bool { return u != nil && u.Value != nil }
func (u *UVIndex) HasDateTime() bool { return u != nil && u.Date != nil }

func (u *UVIndex) DateTime() time.Time {
	if !u.HasDateTime() {
		return time.Time{}
	}
	return time.Unix(*u.Date, 0).UTC()
}

type UVIndexList []UVIndex
