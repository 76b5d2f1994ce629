package types

import (
	"fmt"
	"strings"
)

// Units is the measurement system the weather area reports values in.
type Units string

const (
	UnitsStandard Units = "standard"
	UnitsMetric   Units = "metric"
	UnitsImperial Units = "imperial"
)

// IsValid reports whether u is one of the supported unit systems.
func (u Units) IsValid() bool {
	switch u {
	case UnitsStandard, UnitsMetric, UnitsImperial:
		return true
	}
	return false
}

// IsDefault reports whether u is the wire default. The default is never sent.
func (u Units) IsDefault() bool {
	return u == UnitsStandard
}

// ParseUnits resolves a case-insensitive unit name. An empty string maps to standard.
func ParseUnits(s string) (Units, error) {
	if strings.TrimSpace(s) == "" {
		return UnitsStandard, nil
	}
	u := Units(strings.ToLower(strings.TrimSpace(s)))
	if !u.IsValid() {
		return "", fmt.Errorf("unknown units %q", s)
	}
	return u, nil
}

// Accuracy controls how strictly name based lookups match a city.
type Accuracy string

const (
	AccuracyLike     Accuracy = "like"
	AccuracyAccurate Accuracy = "accurate"
)

func (a Accuracy) IsValid() bool {
	return a == AccuracyLike || a == AccuracyAccurate
}

// ParseAccuracy resolves a case-insensitive accuracy name. An empty string maps to like.
func ParseAccuracy(s string) (Accuracy, error) {
	if strings.TrimSpace(s) == "" {
		return AccuracyLike, nil
	}
	a := Accuracy(strings.ToLower(strings.TrimSpace(s)))
	if !a.IsValid() {
		return "", fmt.Errorf("unknown accuracy %q", s)
	}
	return a, nil
}

// HistoryType is the sampling granularity of the historical weather endpoint.
type HistoryType string

const (
	HistoryTick HistoryType = "tick"
	HistoryHour HistoryType = "hour"
	HistoryDay  HistoryType = "day"
)

func (h HistoryType) IsValid() bool {
	switch h {
	case HistoryTick, HistoryHour, HistoryDay:
		return true
	}
	return false
}

// PollutionType selects the pollutant dataset of the air pollution area.
type PollutionType string

const (
	PollutionCO  PollutionType = "co"
	PollutionO3  PollutionType = "o3"
	PollutionSO2 PollutionType = "so2"
	PollutionNO2 PollutionType = "no2"
)

func (p PollutionType) IsValid() bool {
	switch p {
	case PollutionCO, PollutionO3, PollutionSO2, PollutionNO2:
		return true
	}
	return false
}
