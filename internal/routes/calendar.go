package routes

import (
	"github.com/labstack/echo/v4"

	"scheduling-system/internal/controllers"
)

func runCalendarRouter(g *echo.Group, ctrl *controllers.CalendarController) {
	g.GET("/resources/:id/calendar", ctrl.GetResourceCalendar)
	g.GET("/resources/:id/utilization", ctrl.GetResourceUtilization)
	g.GET("/utilization", ctrl.GetFleetUtilization)
}
