package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/character-api/docs"
	"github.com/rafabene/character-api/internal/domain/ports"
	"github.com/rafabene/character-api/internal/handlers/dto"
	"github.com/rafabene/character-api/internal/handlers/middleware"
	"github.com/rafabene/character-api/internal/infrastructure/i18n"
	"github.com/rafabene/character-api/internal/infrastructure/metrics"
)

// RouterDeps reúne o que o router precisa para montar as rotas
type RouterDeps struct {
	Env              string
	EnableSwagger    bool
	AllowedOrigins   string
	Logger           ports.Logger
	I18n             *i18n.Service
	Metrics          *metrics.HTTPMetrics
	CharacterHandler *CharacterHandler
}

// NewRouter cria o engine Gin com middlewares e rotas da API
func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	if err := dto.RegisterValidations(); err != nil {
		return nil, err
	}

	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(deps.Logger.With("component", "http")))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		deps.Logger.Error("panic recovered", "error", recovered, "path", c.Request.URL.Path)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.InternalError(dto.T(c, "error.internal"), nil))
	}))
	router.Use(middleware.Metrics(deps.Metrics))
	router.Use(middleware.NewI18nMiddleware(deps.I18n).DetectLanguage())
	router.Use(middleware.CORS(deps.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.OK(gin.H{
			"status": "ok",
			"env":    deps.Env,
		}, dto.T(c, "health.ok")))
	})

	router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))

	if deps.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// API routes
	api := router.Group("/api")
	{
		characters := api.Group("/characters")
		{
			characters.POST("", deps.CharacterHandler.CreateCharacter)
			characters.GET("", deps.CharacterHandler.GetCharacters)
			characters.GET("/:id", deps.CharacterHandler.GetCharacter)
			characters.PATCH("/:id", deps.CharacterHandler.UpdateCharacter)
			characters.DELETE("/:id", deps.CharacterHandler.DeleteCharacter)
		}
	}

	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.NotFound(dto.T(c, "error.route_not_found", map[string]any{"Path": c.Request.URL.Path})))
	}
	router.NoRoute(notFound)
	router.NoMethod(notFound)

	return router, nil
}
