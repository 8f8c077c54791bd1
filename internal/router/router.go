package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"taskhub/internal/auth"
	"taskhub/internal/errors"
	"taskhub/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	jwtService *auth.JWTService,
	tokenStore auth.TokenStoreInterface,
	authHandler *handler.AuthHandler,
	projectHandler *handler.ProjectHandler,
	taskHandler *handler.TaskHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Public routes
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/test", authHandler.Test)

	// Secured routes: signature, lifetime, issuer, audience and the
	// revocation list are all checked before any handler runs.
	jwtConfig := echojwt.Config{
		TokenLookup: "header:" + echo.HeaderAuthorization,
		// Every failure mode surfaces as the same generic 401; the
		// response never says which check failed.
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: errors.ErrInvalidToken.Error(),
				Code:  "INVALID_TOKEN",
			})
		},
		ParseTokenFunc: func(c echo.Context, tokenString string) (interface{}, error) {
			claims, err := jwtService.ValidateToken(tokenString)
			if err != nil {
				return nil, err
			}
			if claims.ID != "" {
				revoked, _ := tokenStore.IsTokenBlacklisted(c.Request().Context(), claims.ID)
				if revoked {
					return nil, errors.ErrInvalidToken
				}
			}
			return claims, nil
		},
	}
	secured := e.Group("", echojwt.WithConfig(jwtConfig))

	secured.POST("/auth/logout", authHandler.Logout)

	// Project routes
	secured.GET("/projects", projectHandler.List)
	secured.POST("/projects", projectHandler.Create)
	secured.GET("/projects/:projectId", projectHandler.Get)
	secured.PUT("/projects/:projectId", projectHandler.Update)
	secured.DELETE("/projects/:projectId", projectHandler.Delete)
	secured.GET("/projects/:projectId/progress", projectHandler.Progress)

	// Task routes, nested under a project
	secured.GET("/projects/:projectId/tasks", taskHandler.List)
	secured.POST("/projects/:projectId/tasks", taskHandler.Create)
	secured.GET("/projects/:projectId/tasks/:taskId", taskHandler.Get)
	secured.PUT("/projects/:projectId/tasks/:taskId", taskHandler.Update)
	secured.PATCH("/projects/:projectId/tasks/:taskId/complete", taskHandler.Complete)
	secured.DELETE("/projects/:projectId/tasks/:taskId", taskHandler.Delete)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
