package router

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"paygate/internal/handler"
)

// Setup configures the routes for the local development server. The invoke
// route mimics the Lambda runtime: the request body is the raw event and
// the envelope is always delivered with an outer 200, errors included.
func Setup(e *echo.Echo, h *handler.Handler) {
	e.Use(echomw.Recover())

	e.POST("/invoke", func(c echo.Context) error {
		raw, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "unreadable request body")
		}
		env, _ := h.Handle(c.Request().Context(), raw)
		return c.JSON(http.StatusOK, env)
	})

	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
}
