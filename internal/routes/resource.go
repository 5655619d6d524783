package routes

import (
	"github.com/labstack/echo/v4"

	"scheduling-system/internal/controllers"
)

func runResourceRouter(g *echo.Group, ctrl *controllers.ResourceController) {
	g.GET("/resources", ctrl.GetResources)
	g.GET("/resources/:id", ctrl.FindResource)
	g.POST("/resources", ctrl.CreateResource)
	g.PUT("/resources/:id", ctrl.UpdateResource)
	g.DELETE("/resources/:id", ctrl.RetireResource)

	g.POST("/resources/search", ctrl.SearchResources)
	g.POST("/resources/:id/certifications", ctrl.AddCertification)
	g.POST("/resources/import", ctrl.ImportResources)
}
