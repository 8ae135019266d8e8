package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes mounts the order routes under prefix+"/orders" and the
// liveness route at /health.
func RegisterRoutes(e *echo.Echo, prefix string, s *Server, auth []echo.MiddlewareFunc) {
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	orders := e.Group(prefix+"/orders", auth...)
	orders.GET("", s.ListOrders)
	orders.POST("", s.CreateOrder)
	orders.GET("/:id", s.GetOrder)
	orders.PATCH("/:id/status", s.UpdateOrderStatus)
}
