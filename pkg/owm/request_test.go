package owm

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseMapping(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantErr       bool
		wantStatus    int
		wantMessage   string
		wantDetail    string
		wantPopulated bool
	}{
		{
			name:          "success with body",
			status:        http.StatusOK,
			body:          `{"name":"London","main":{"temp":280.3}}`,
			wantPopulated: true,
		},
		{
			name:   "success with empty body",
			status: http.StatusOK,
			body:   "",
		},
		{
			name:   "success with null body",
			status: http.StatusOK,
			body:   "null",
		},
		{
			name:   "no content",
			status: http.StatusNoContent,
			body:   "",
		},
		{
			name:        "failure without body",
			status:      http.StatusNotFound,
			body:        "",
			wantErr:     true,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Not Found",
		},
		{
			name:        "failure with service message",
			status:      http.StatusUnauthorized,
			body:        `{"cod":401,"message":"Invalid API key."}`,
			wantErr:     true,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized",
			wantDetail:  "Invalid API key.",
		},
		{
			name:        "failure with string cod",
			status:      http.StatusNotFound,
			body:        `{"cod":"404","message":"city not found"}`,
			wantErr:     true,
			wantStatus:  http.StatusNotFound,
			wantMessage: "Not Found",
			wantDetail:  "city not found",
		},
		{
			name:        "failure with non json body",
			status:      http.StatusBadGateway,
			body:        "<html>bad gateway</html>",
			wantErr:     true,
			wantStatus:  http.StatusBadGateway,
			wantMessage: "Bad Gateway",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService(t)
			svc.respond(tt.status, tt.body)
			c := newTestClient(t, svc)

			got, err := c.CurrentWeather(context.Background(), CityName("London"))
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, got)
				apiErr, ok := errors.AsAPIError(err)
				require.True(t, ok, "expected an API error, got %v", err)
				assert.Equal(t, tt.wantStatus, apiErr.HTTPStatus)
				assert.Equal(t, tt.wantMessage, apiErr.Message)
				assert.Equal(t, tt.wantDetail, apiErr.Detail)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantPopulated, got.HasCityName())
			assert.Equal(t, tt.wantPopulated, got.HasMain())
		})
	}
}

func TestDecodeErrorIsWrapped(t *testing.T) {
	svc := newFakeService(t)
	svc.respond(http.StatusOK, `{"name":`)
	c := newTestClient(t, svc)

	_, err := c.CurrentWeather(context.Background(), CityID(1))
	require.Error(t, err)
	_, isAPI := errors.AsAPIError(err)
	assert.False(t, isAPI)

	var syntaxErr *json.SyntaxError
	assert.True(t, stderrors.As(err, &syntaxErr))
	assert.Contains(t, err.Error(), "current_weather: decode response")
}

func TestTransportFaultsAreWrapped(t *testing.T) {
	svc := newFakeService(t)
	c := newTestClient(t, svc)
	svc.server.Close()

	_, err := c.CurrentWeather(context.Background(), CityID(1))
	require.Error(t, err)
	_, isAPI := errors.AsAPIError(err)
	assert.False(t, isAPI)
	assert.False(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "current_weather: request failed")
}

func TestCanceledContext(t *testing.T) {
	svc := newFakeService(t)
	c := newTestClient(t, svc)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.CurrentWeather(ctx, CityID(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, svc.count())
}

func TestRequestHeadersAndMetrics(t *testing.T) {
	svc := newFakeService(t)
	reg := prometheus.NewRegistry()
	c := newTestClient(t, svc, WithRegisterer(reg))

	_, err := c.CurrentWeather(context.Background(), CityID(1))
	require.NoError(t, err)

	r := svc.last(t)
	assert.NotEmpty(t, r.Header.Get(requestIDHeader))
	assert.Equal(t, userAgent, r.Header.Get("User-Agent"))
	assert.Equal(t, "application/json", r.Header.Get("Accept"))

	svc.respond(http.StatusTooManyRequests, "")
	_, err = c.CurrentWeather(context.Background(), CityID(1))
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.requestsTotal.WithLabelValues("weather", "current_weather", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.requestsTotal.WithLabelValues("weather", "current_weather", "api_error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.apiErrorsTotal.WithLabelValues("weather", "429")))
}

func TestRequestDurationHistogram(t *testing.T) {
	svc := newFakeService(t)
	reg := prometheus.NewRegistry()
	c := newTestClient(t, svc, WithRegisterer(reg))

	for i := 0; i < 3; i++ {
		_, err := c.CurrentUVIndex(context.Background(), 1, 2)
		require.NoError(t, err)
	}

	families, err := reg.Gather()
	require.NoError(t, err)

	var hist *dto.Histogram
	for _, mf := range families {
		if mf.GetName() != "owm_client_request_duration_seconds" {
			continue
		}
		require.Equal(t, dto.MetricType_HISTOGRAM, mf.GetType())
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["area"] == "misc" && labels["operation"] == "uv_index" {
				hist = m.GetHistogram()
			}
		}
	}
	require.NotNil(t, hist, "no duration sample for the UV index call")
	assert.Equal(t, uint64(3), hist.GetSampleCount())
}

func TestRequestIDFollowsContext(t *testing.T) {
	svc := newFakeService(t)
	c := newTestClient(t, svc)

	ctx := logger.WithRequestID(context.Background(), "caller-123")
	_, err := c.CurrentWeather(ctx, CityID(1))
	require.NoError(t, err)
	assert.Equal(t, "caller-123", svc.last(t).Header.Get(requestIDHeader))

	_, err = c.CurrentWeather(context.Background(), CityID(1))
	require.NoError(t, err)
	generated := svc.last(t).Header.Get(requestIDHeader)
	assert.NotEmpty(t, generated)
	assert.NotEqual(t, "caller-123", generated)
}
