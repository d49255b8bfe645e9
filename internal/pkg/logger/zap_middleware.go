package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ActorIDKey is the echo context key holding the authenticated actor id
const ActorIDKey = "actor_id"

// ZapEchoMiddleware logs every request served by echo
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())

			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// let echo write the error response so the logged status is the real one
				c.Error(err)
			}

			actorID, _ := c.Get(ActorIDKey).(string)
			if actorID == "" {
				actorID = "anonymous"
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			if txn != nil {
				txn.AddAttribute("actor_id", actorID)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, HTTPRequestLog{
				Method:    c.Request().Method,
				Path:      path,
				ClientIP:  c.RealIP(),
				ActorID:   actorID,
				RequestID: requestID,
				Status:    c.Response().Status,
				Latency:   time.Since(start),
				Err:       err,
			})

			return nil
		}
	}
}
