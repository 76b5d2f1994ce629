package types

import (
	"encoding/json"
	"fmt"
)

type PollutionLocation struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// PollutionSample is one pressure level reading of the co and so2 datasets.
type PollutionSample struct {
	Precision *float64 `json:"precision,omitempty"`
	Pressure  *float64 `json:"pressure,omitempty"`
	Value     *float64 `json:"value,omitempty"`
}

// PollutionComponent is one named component of the no2 dataset.
type PollutionComponent struct {
	Precision *float64 `json:"precision,omitempty"`
	Value     *float64 `json:"value,omitempty"`
}

// AirPollution is the payload of the pollution area. The shape of Data depends
// on the pollutant: a sample array for co/so2, a number for o3 and a component
// object for no2.
type AirPollution struct {
	Time     *string            `json:"time,omitempty"`
	Location *PollutionLocation `json:"location,omitempty"`
	Data     json.RawMessage    `json:"data,omitempty"`
}

func (a *AirPollution) HasTime() bool { return a != nil && a.Time != nil }
func (a *AirPollution) HasLocation() bool { return a != nil && a.Location != nil }
func (a *AirPollution) HasData() bool { return a != nil && len(a.Data) > 0 && string(a.Data) != "null" }

// Samples decodes Data as a sample array.
func (a *AirPollution) Samples() ([]PollutionSample, error) {
	if !a.HasData() {
		return nil, nil
	}
	var samples []PollutionSample
	if err := json.Unmarshal(a.Data, &samples); err != nil {
		return nil, fmt.Errorf("pollution data is not a sample list: %w", err)
	}
	return samples, nil
}

// Scalar decodes Data as a single value.
func (a *AirPollution) Scalar() (float64, bool, error) {
	if !a.HasData() {
		return 0, false, nil
	}
	var v float64
	if err := json.Unmarshal(a.Data, &v); err != nil {
		return 0, false, fmt.Errorf("pollution data is not a scalar: %w", err)
	}
	return v, true, nil
}

// Components decodes Data as a named component object.
func (a *AirPollution) Components() (map[string]PollutionComponent, error) {
	if !a.HasData() {
		return nil, nil
	}
	var comps map[string]PollutionComponent
	if err := json.Unmarshal(a.Data, &comps); err != nil {
		return nil, fmt.Errorf("pollution data is not a component object: %w", err)
	}
	return comps, nil
}
