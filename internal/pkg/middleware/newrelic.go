package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// SetUserID sets the acting identity on the current transaction
func SetUserID(c echo.Context, userID string) {
	AddAttribute(c, "actor.id", userID)
}

// SetRequestID sets the service request id on the current transaction
func SetRequestID(c echo.Context, requestID string) {
	AddAttribute(c, "service_request.id", requestID)
}
