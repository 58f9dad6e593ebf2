package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"wisekey/internal/auth"
	"wisekey/internal/handler"
	"wisekey/internal/middleware"
	"wisekey/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	userService service.UserService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	propertyHandler *handler.PropertyHandler,
) {
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/refresh", authHandler.Refresh)

	// Secured routes: token validation, then identity resolution
	secured := api.Group("",
		middleware.Authenticate(jwtService),
		middleware.CurrentUser(userService),
	)

	secured.GET("/users/me", userHandler.Me)

	secured.POST("/properties", propertyHandler.Create)
	secured.GET("/properties", propertyHandler.List)
	secured.GET("/properties/search", propertyHandler.Search)
	secured.GET("/properties/:id", propertyHandler.Get)
	secured.PUT("/properties/:id", propertyHandler.Update)
	secured.DELETE("/properties/:id", propertyHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
