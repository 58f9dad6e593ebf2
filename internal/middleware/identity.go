package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"wisekey/internal/auth"
	apperrors "wisekey/internal/errors"
	"wisekey/internal/model"
	"wisekey/internal/service"
)

// UserContextKey is where CurrentUser stores the resolved *model.User.
const UserContextKey = "current_user"

// CurrentUser resolves the authenticated identity from validated token
// claims: the subject must parse as a positive user id and correspond to a
// stored user. Any failure, including an unknown user, is the same generic
// 401 as an invalid token.
func CurrentUser(users service.UserService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get("user").(*auth.Claims)
			if !ok {
				return unauthorized()
			}

			id, err := strconv.ParseUint(claims.Subject, 10, 64)
			if err != nil || id == 0 {
				return unauthorized()
			}

			user, err := users.GetUser(c.Request().Context(), uint(id))
			if err != nil {
				return unauthorized()
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// UserFrom returns the user resolved by CurrentUser, if any.
func UserFrom(c echo.Context) (*model.User, bool) {
	user, ok := c.Get(UserContextKey).(*model.User)
	return user, ok
}

func unauthorized() error {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: "invalid or missing credentials",
		Code:  "UNAUTHORIZED",
	})
}
