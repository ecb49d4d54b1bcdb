package router

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "kanban-board-api/docs"
	"kanban-board-api/internal/config"
	"kanban-board-api/internal/handler"
	"kanban-board-api/internal/metrics"
	"kanban-board-api/internal/middleware"
	"kanban-board-api/internal/repository"
	"kanban-board-api/internal/service"
)

// Setup wires repositories, services and handlers and returns the engine.
// redisClient may be nil when caching is disabled.
func Setup(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, m *metrics.Metrics, logger *zap.Logger) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	if m != nil {
		r.Use(middleware.Metrics(m))
	}

	// Repositories
	boardRepo := repository.NewBoardRepository(db, redisClient, cfg.Redis.TTL, logger)
	configRepo := repository.NewConfigRepository(db)
	templateRepo := repository.NewTemplateRepository(db)

	// Services
	locker := service.NewBoardLocker()
	boardService := service.NewBoardService(boardRepo, configRepo, locker, m, logger)
	cardService := service.NewCardService(boardRepo, locker, m, logger)
	columnService := service.NewColumnService(boardRepo, locker, m, logger)
	configService := service.NewConfigService(configRepo, cfg.Backup.Dir, logger)
	templateService := service.NewTemplateService(templateRepo, boardRepo, m, logger)

	// Handlers
	boardHandler := handler.NewBoardHandler(boardService)
	cardHandler := handler.NewCardHandler(cardService)
	columnHandler := handler.NewColumnHandler(columnService)
	configHandler := handler.NewConfigHandler(configService)
	templateHandler := handler.NewTemplateHandler(templateService)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	// Health and observability endpoints (no auth)
	r.GET("/health", healthHandler.Health)
	r.GET("/ready", healthHandler.Ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group(cfg.Server.BasePath)
	if cfg.Auth.Enabled {
		api.Use(middleware.Auth(cfg.Auth.Secret))
	}
	{
		boards := api.Group("/boards")
		{
			boards.POST("", boardHandler.CreateBoard)
			boards.GET("", boardHandler.ListBoards)
			boards.POST("/import", boardHandler.ImportBoard)
			boards.GET("/:boardId", boardHandler.GetBoard)
			boards.PATCH("/:boardId", boardHandler.UpdateBoard)
			boards.DELETE("/:boardId", boardHandler.DeleteBoard)
			boards.POST("/:boardId/duplicate", boardHandler.DuplicateBoard)
			boards.GET("/:boardId/export", boardHandler.ExportBoard)
			boards.GET("/:boardId/validate", boardHandler.ValidateBoard)

			boards.POST("/:boardId/columns", columnHandler.CreateColumn)
			boards.PATCH("/:boardId/columns/:columnId", columnHandler.UpdateColumn)
			boards.DELETE("/:boardId/columns/:columnId", columnHandler.DeleteColumn)
			boards.PUT("/:boardId/column-order", columnHandler.ReorderColumns)

			boards.POST("/:boardId/cards", cardHandler.CreateCard)
			boards.GET("/:boardId/cards", cardHandler.ListCards)
			boards.GET("/:boardId/cards/:cardId", cardHandler.GetCard)
			boards.PATCH("/:boardId/cards/:cardId", cardHandler.UpdateCard)
			boards.DELETE("/:boardId/cards/:cardId", cardHandler.DeleteCard)
			boards.POST("/:boardId/cards/:cardId/move", cardHandler.MoveCard)
		}

		configGroup := api.Group("/config")
		{
			configGroup.GET("", configHandler.GetConfig)
			configGroup.PATCH("", configHandler.UpdateConfig)
			configGroup.POST("/reset", configHandler.ResetConfig)
		}

		templates := api.Group("/templates")
		{
			templates.GET("", templateHandler.ListTemplates)
			templates.POST("/instantiate", templateHandler.CreateBoardFromTemplate)
		}
	}

	return r
}
