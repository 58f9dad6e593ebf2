package middleware

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"wisekey/internal/auth"
	apperrors "wisekey/internal/errors"
)

// Authenticate validates the Authorization bearer token as an access-class
// credential. Missing, malformed, expired, tampered and refresh-class
// tokens all collapse into the same generic 401.
func Authenticate(tokens *auth.JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ParseTokenFunc: func(c echo.Context, raw string) (interface{}, error) {
			return tokens.ValidateToken(raw, auth.TokenClassAccess)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: "invalid or missing credentials",
				Code:  "UNAUTHORIZED",
			})
		},
	})
}
