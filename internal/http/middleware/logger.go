package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/trace"
)

// Logger writes one access log line per request. It also puts a request-scoped logger carrying
// request_id (and trace_id when a span is active) into the user context, where downstream code
// picks it up with zerolog.Ctx.
func Logger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		lc := log.With().Str("request_id", GetRequestID(c))
		if sc := trace.SpanContextFromContext(c.UserContext()); sc.HasTraceID() {
			lc = lc.Str("trace_id", sc.TraceID().String())
		}
		reqLog := lc.Logger()
		c.SetUserContext(reqLog.WithContext(c.UserContext()))

		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}

		var ev *zerolog.Event
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = reqLog.Error()
		case status >= fiber.StatusBadRequest:
			ev = reqLog.Warn()
		default:
			ev = reqLog.Info()
		}

		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Float64("latency", float64(time.Since(start).Microseconds())/1000).
			Msg("request")

		return err
	}
}
