package middleware

import (
	"strconv"
	"time"

	"github.com/NomadCrew/openweather-go/logger"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// UsageKey is the Redis counter shared by every gateway replica.
const UsageKey = "usage:owm:calls"

// UsageHeader reports how many calls all replicas forwarded in the current window.
const UsageHeader = "X-Upstream-Usage"

const usageMeterKey = "upstream_usage_meter"

type usageMeter struct {
	redis  redis.Cmdable
	window time.Duration
}

// UpstreamUsage arms metering of calls forwarded to the weather service in
// fixed windows. Handlers report a forwarded call with CountUpstreamCall, so
// requests rejected locally are never counted. It never rejects a request.
func UpstreamUsage(redisClient redis.Cmdable, window time.Duration) gin.HandlerFunc {
	meter := &usageMeter{redis: redisClient, window: window}
	return func(c *gin.Context) {
		c.Set(usageMeterKey, meter)
		c.Next()
	}
}

// CountUpstreamCall records one call that reached the weather service and
// sets UsageHeader. It must run before the response is written. Without
// UpstreamUsage in the chain it does nothing; Redis failures only drop the header.
func CountUpstreamCall(c *gin.Context) {
	v, ok := c.Get(usageMeterKey)
	if !ok {
		return
	}
	meter := v.(*usageMeter)
	ctx := c.Request.Context()

	count, err := meter.redis.Incr(ctx, UsageKey).Result()
	if err != nil {
		logger.GetLogger().Debugw("Usage counter unavailable", "error", err)
		return
	}
	if count == 1 {
		if err := meter.redis.Expire(ctx, UsageKey, meter.window).Err(); err != nil {
			logger.GetLogger().Warnw("Failed to set usage window", "error", err)
		}
	}
	c.Header(UsageHeader, strconv.FormatInt(count, 10))
}
