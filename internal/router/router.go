// Package router defines how HTTP routes are registered for the API.
package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/rdharshinir/student-app/internal/config"
	"github.com/rdharshinir/student-app/internal/handler"
)

// RegisterRoutes wires every route onto the Echo instance.  CORS is locked
// to the configured frontend origin and the rate limiter guards the two
// credential-bearing POST routes.  All responses, including errors and
// unmatched routes, are JSON.
func RegisterRoutes(e *echo.Echo, cfg config.Config, student *handler.StudentHandler, admin *handler.AdminHandler, limit echo.MiddlewareFunc) {
	e.HTTPErrorHandler = newHTTPErrorHandler(cfg.Env)

	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.FrontendURL},
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	e.GET("/healthz", handler.Health)

	api := e.Group("/api")
	api.GET("/student", student.GetSeating)

	adm := api.Group("/admin")
	adm.POST("/login", admin.Login, limit)
	adm.POST("/upload", admin.Upload, limit)
	adm.GET("/seating", admin.ListSeating)
	adm.DELETE("/seating", admin.DeleteSeating)
	adm.GET("/debug/student/:regno", admin.DebugStudent)
}

// newHTTPErrorHandler reduces uncaught errors to the portal's JSON envelope.
// Unmatched routes (and wrong methods on known paths) come back as 404, and
// anything else as a generic 500 whose detail is only attached in dev.
func newHTTPErrorHandler(env string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := "Something went wrong!"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusNotFound, http.StatusMethodNotAllowed:
				code = http.StatusNotFound
				msg = "Route not found"
			default:
				code = he.Code
				if s, ok := he.Message.(string); ok {
					msg = s
				}
			}
		}

		resp := echo.Map{"error": msg}
		if env == "dev" {
			resp["details"] = err.Error()
		}
		if jsonErr := c.JSON(code, resp); jsonErr != nil {
			c.Logger().Error(jsonErr)
		}
	}
}
