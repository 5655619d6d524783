package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"scheduling-system/internal/controllers"
	"scheduling-system/internal/repositories"
	"scheduling-system/internal/services"
	"scheduling-system/pkg/config"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, cfg *config.Config, logger *zap.Logger) {
	logger.Info("InitRouter: Начало создания маршрутов")

	api := e.Group("/api")

	// --- 1. РЕПОЗИТОРИИ ---
	resourceRepo := repositories.NewResourceRepository(dbConn)
	assignmentRepo := repositories.NewAssignmentRepository(dbConn)
	availabilityRepo := repositories.NewAvailabilityRepository(dbConn)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)

	// --- 2. СЕРВИСЫ ---
	resourceService := services.NewResourceService(dbConn, resourceRepo, logger)
	assignmentService := services.NewAssignmentService(dbConn, assignmentRepo, resourceRepo, availabilityRepo, logger)
	availabilityService := services.NewAvailabilityService(dbConn, availabilityRepo, assignmentRepo, resourceRepo, logger)
	calendarService := services.NewCalendarService(dbConn, resourceRepo, assignmentRepo, availabilityRepo, cacheRepo, cfg, logger)
	resourceImporter := services.NewResourceImporter(resourceService, logger)

	// --- 3. КОНТРОЛЛЕРЫ ---
	resourceCtrl := controllers.NewResourceController(resourceService, resourceImporter, logger)
	assignmentCtrl := controllers.NewAssignmentController(assignmentService, logger)
	availabilityCtrl := controllers.NewAvailabilityController(availabilityService, logger)
	calendarCtrl := controllers.NewCalendarController(calendarService, logger)

	// --- 4. РОУТЕРЫ ---
	runResourceRouter(api, resourceCtrl)
	runAssignmentRouter(api, assignmentCtrl)
	runAvailabilityRouter(api, availabilityCtrl)
	runCalendarRouter(api, calendarCtrl)

	logger.Info("InitRouter: Создание маршрутов завершено")
}
