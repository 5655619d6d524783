package routes

import (
	"github.com/labstack/echo/v4"

	"scheduling-system/internal/controllers"
)

func runAvailabilityRouter(g *echo.Group, ctrl *controllers.AvailabilityController) {
	g.POST("/availability", ctrl.SetUnavailability)
	g.DELETE("/availability", ctrl.ClearUnavailability)
	g.GET("/resources/:id/availability", ctrl.GetAvailability)
	g.GET("/resources/:id/availability/check", ctrl.CheckDay)
}
