package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/logger"
	"github.com/NomadCrew/openweather-go/middleware"
	"github.com/NomadCrew/openweather-go/pkg/owm"
	"github.com/NomadCrew/openweather-go/types"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type WeatherHandler struct {
	client   WeatherClient
	recorder OutcomeRecorder
	log      *zap.SugaredLogger
}

func NewWeatherHandler(client WeatherClient, recorder OutcomeRecorder) *WeatherHandler {
	return &WeatherHandler{
		client:   client,
		recorder: recorder,
		log:      logger.GetLogger(),
	}
}

// CurrentWeatherHandler serves GET /v1/weather/current
func (h *WeatherHandler) CurrentWeatherHandler(c *gin.Context) {
	loc, err := locationFromQuery(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	weather, err := h.client.CurrentWeather(c.Request.Context(), loc)
	h.record(c, err)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, weather)
}

// ForecastHandler serves GET /v1/weather/forecast
func (h *WeatherHandler) ForecastHandler(c *gin.Context) {
	loc, opts, err := forecastRequest(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	forecast, err := h.client.Forecast(c.Request.Context(), loc, opts)
	h.record(c, err)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// DailyForecastHandler serves GET /v1/weather/daily
func (h *WeatherHandler) DailyForecastHandler(c *gin.Context) {
	loc, opts, err := forecastRequest(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	forecast, err := h.client.DailyForecast(c.Request.Context(), loc, opts)
	h.record(c, err)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, forecast)
}

// UVIndexHandler serves GET /v1/uvi
func (h *WeatherHandler) UVIndexHandler(c *gin.Context) {
	lat, lon, err := coordinatesFromQuery(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	uvi, err := h.client.CurrentUVIndex(c.Request.Context(), lat, lon)
	h.record(c, err)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, uvi)
}

func (h *WeatherHandler) record(c *gin.Context, err error) {
	if !errors.IsInvalidArgument(err) {
		middleware.CountUpstreamCall(c)
	}
	if h.recorder != nil {
		h.recorder.Record(err)
	}
	if err != nil && !errors.IsInvalidArgument(err) {
		h.log.Warnw("Weather client call failed", "error", err)
	}
}

func forecastRequest(c *gin.Context) (owm.Location, *owm.ForecastOptions, error) {
	loc, err := locationFromQuery(c)
	if err != nil {
		return owm.Location{}, nil, err
	}
	raw := c.Query("cnt")
	if raw == "" {
		return loc, nil, nil
	}
	count, err := strconv.Atoi(raw)
	if err != nil {
		return owm.Location{}, nil, errors.InvalidArgument("cnt", "must be an integer")
	}
	return loc, &owm.ForecastOptions{Count: count}, nil
}

// locationFromQuery reads exactly one of q, id, zip or lat+lon. country
// qualifies q and zip.
func locationFromQuery(c *gin.Context) (owm.Location, error) {
	q := strings.TrimSpace(c.Query("q"))
	id := strings.TrimSpace(c.Query("id"))
	zip := strings.TrimSpace(c.Query("zip"))
	_, hasLat := c.GetQuery("lat")
	_, hasLon := c.GetQuery("lon")

	given := 0
	for _, set := range []bool{q != "", id != "", zip != "", hasLat || hasLon} {
		if set {
			given++
		}
	}
	if given != 1 {
		return owm.Location{}, errors.InvalidArgument("location", "exactly one of q, id, zip or lat/lon is required")
	}

	var country types.Country
	if raw := c.Query("country"); raw != "" {
		parsed, err := types.ParseCountry(raw)
		if err != nil {
			return owm.Location{}, errors.InvalidArgument("country", err.Error())
		}
		country = parsed
	}

	switch {
	case q != "":
		return owm.CityNameIn(q, country), nil
	case zip != "":
		return owm.ZipCodeIn(zip, country), nil
	case id != "":
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return owm.Location{}, errors.InvalidArgument("id", "must be an integer")
		}
		return owm.CityID(n), nil
	default:
		lat, lon, err := coordinatesFromQuery(c)
		if err != nil {
			return owm.Location{}, err
		}
		return owm.Coordinates(lat, lon), nil
	}
}

func coordinatesFromQuery(c *gin.Context) (float64, float64, error) {
	lat, err := strconv.ParseFloat(c.Query("lat"), 64)
	if err != nil {
		return 0, 0, errors.InvalidArgument("lat", "must be a number")
	}
	lon, err := strconv.ParseFloat(c.Query("lon"), 64)
	if err != nil {
		return 0, 0, errors.InvalidArgument("lon", "must be a number")
	}
	return lat, lon, nil
}
