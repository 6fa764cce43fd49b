package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Jayem09/coduxa-sub002/internal/utils"
)

const (
	// CallbackTokenHeader carries the gateway's shared webhook secret
	CallbackTokenHeader = "X-Callback-Token"
)

// VerifyCallbackToken middleware validates the payment gateway's callback
// token before any webhook processing happens. When no token is configured
// the check is skipped entirely.
func VerifyCallbackToken(expectedToken string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if expectedToken == "" {
				return next(c)
			}

			token := c.Request().Header.Get(CallbackTokenHeader)
			if subtle.ConstantTimeCompare([]byte(token), []byte(expectedToken)) != 1 {
				return utils.ErrorResponseHandler(c, http.StatusUnauthorized, "Invalid callback token")
			}

			return next(c)
		}
	}
}
