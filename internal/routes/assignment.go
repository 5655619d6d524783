package routes

import (
	"github.com/labstack/echo/v4"

	"scheduling-system/internal/controllers"
)

func runAssignmentRouter(g *echo.Group, ctrl *controllers.AssignmentController) {
	g.GET("/assignments", ctrl.GetAssignments)
	g.GET("/assignments/:id", ctrl.FindAssignment)
	g.POST("/assignments", ctrl.CreateAssignment)
	g.PATCH("/assignments/:id/status", ctrl.UpdateAssignmentStatus)

	// Предпросмотр конфликтов, ничего не создаёт
	g.POST("/assignments/check-conflicts", ctrl.CheckConflicts)
}
