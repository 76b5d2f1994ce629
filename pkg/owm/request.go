package owm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/NomadCrew/openweather-go/errors"
	"github.com/NomadCrew/openweather-go/logger"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const requestIDHeader = "X-Request-ID"

// call describes one GET against a service area.
type call struct {
	area      Area
	operation string
	path      string
	query     map[string]string
}

// execute performs c and decodes the body into a fresh T. A 2xx response with
// an empty body yields the zero T.
func execute[T any](ctx context.Context, client *Client, c call) (*T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	t := client.transport(c.area)

	ctx, span := client.tracer.startSpan(ctx, "owm."+c.operation,
		attribute.String("owm.area", c.area.String()),
		attribute.String("owm.operation", c.operation),
		attribute.String("http.route", c.path),
	)
	defer span.End()

	// Prefer the correlation id the caller put in ctx.
	requestID := logger.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	client.log.Debugw("Sending weather service request",
		"area", c.area.String(),
		"operation", c.operation,
		"path", c.path,
		"requestID", requestID)

	start := time.Now()
	resp, err := t.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID).
		SetQueryParams(c.query).
		Get(c.path)
	if err != nil {
		client.metrics.recordRequest(c.area, c.operation, "transport_error", start)
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		client.log.Warnw("Weather service request failed",
			"area", c.area.String(),
			"operation", c.operation,
			"requestID", requestID,
			"error", err)
		return nil, fmt.Errorf("%s: request failed: %w", c.operation, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))

	if !resp.IsSuccess() {
		apiErr := apiFailure(resp)
		client.metrics.recordRequest(c.area, c.operation, "api_error", start)
		client.metrics.recordAPIError(c.area, resp.StatusCode())
		span.SetStatus(codes.Error, apiErr.Message)
		client.log.Warnw("Weather service returned an error",
			"area", c.area.String(),
			"operation", c.operation,
			"requestID", requestID,
			"status", apiErr.HTTPStatus,
			"message", apiErr.Message,
			"detail", apiErr.Detail)
		return nil, apiErr
	}

	out := new(T)
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		client.metrics.recordRequest(c.area, c.operation, "empty", start)
		client.log.Debugw("Weather service returned no data",
			"area", c.area.String(),
			"operation", c.operation,
			"requestID", requestID)
		return out, nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		client.metrics.recordRequest(c.area, c.operation, "decode_error", start)
		span.RecordError(err)
		span.SetStatus(codes.Error, "decode error")
		return nil, fmt.Errorf("%s: decode response: %w", c.operation, err)
	}

	client.metrics.recordRequest(c.area, c.operation, "success", start)
	return out, nil
}

// apiFailure maps a non-2xx response. Message is the HTTP reason phrase and
// Detail the service's own message, when the body carries one.
func apiFailure(resp *resty.Response) *errors.AppError {
	code := resp.StatusCode()
	message := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(code)))
	if message == "" {
		message = http.StatusText(code)
	}

	var body struct {
		Message string `json:"message"`
	}
	detail := ""
	if raw := bytes.TrimSpace(resp.Body()); len(raw) > 0 {
		if json.Unmarshal(raw, &body) == nil {
			detail = body.Message
		}
	}

	return errors.APIFailure(code, message, detail)
}

func setCount(q map[string]string, count int) {
	if count > 0 {
		q["cnt"] = strconv.Itoa(count)
	}
}
