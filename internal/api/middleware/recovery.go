package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime"

	"github.com/labstack/echo/v4"

	"github.com/pricewar-labs/price-guardian/internal/api/handlers"
)

// recoveryStackSize bounds the captured stack trace in the panic log.
const recoveryStackSize = 4096

// Recovery returns Echo middleware that converts a handler panic into a 500
// response. The panic value, request ID, and stack trace go to the log; the
// client only ever sees the generic error body.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					buf := make([]byte, recoveryStackSize)
					n := runtime.Stack(buf, false)

					reqID, _ := c.Get("request_id").(string)
					log.Error("panic recovered",
						"error", fmt.Sprint(r),
						"method", c.Request().Method,
						"path", c.Request().URL.Path,
						"request_id", reqID,
						"stack", string(buf[:n]),
					)

					err = c.JSON(http.StatusInternalServerError, handlers.ErrorResponse{
						Error: "internal server error",
					})
				}
			}()
			return next(c)
		}
	}
}
