package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/lapakin/lapakin/internal/pkg/logger"
	"github.com/lapakin/lapakin/internal/utils"
)

// PanicRecoveryMiddleware recovers from panics in handlers, records the
// panic in New Relic with its stack trace, and returns a generic 500 to the
// client
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) {
	stackTrace := string(debug.Stack())

	req := c.Request()
	requestID := getRequestID(c)

	orgID := "anonymous"
	if oid := c.Get("org_id"); oid != nil {
		orgID = fmt.Sprintf("%v", oid)
	}

	fields := []logger.Field{
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", stackTrace),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("org_id", orgID),
		logger.String("request_id", requestID),
	}

	if txn := newrelic.FromContext(req.Context()); txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic recovered: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.value":    fmt.Sprintf("%v", r),
				"panic.type":     fmt.Sprintf("%T", r),
				"http.method":    req.Method,
				"http.path":      req.URL.Path,
				"http.client_ip": c.RealIP(),
				"org_id":         orgID,
				"request_id":     requestID,
			},
		})
		txn.AddAttribute("panic.recovered", true)

		zapLogger.WithNewRelicContext(txn).Error("Panic recovered during request processing", fields...)
	} else {
		zapLogger.Error("Panic recovered during request processing", fields...)
	}

	if !c.Response().Committed {
		if err := utils.ErrorResponseHandler(c, http.StatusInternalServerError,
			"An unexpected error occurred while processing your request"); err != nil {
			c.String(http.StatusInternalServerError, "Internal Server Error")
		}
	}
}

func getRequestID(c echo.Context) string {
	if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	if requestID := c.Request().Header.Get(echo.HeaderXRequestID); requestID != "" {
		return requestID
	}
	if requestID := c.Get("request_id"); requestID != nil {
		return fmt.Sprintf("%v", requestID)
	}
	return ""
}
