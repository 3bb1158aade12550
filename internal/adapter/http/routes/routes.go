package routes

import (
	"context"
	"fmt"
	"net/http"

	_ "major_home/docs" // swagger docs, generated by swag
	"major_home/internal/adapter/http/handlers"
	"major_home/internal/adapter/persistence/repository"
	"major_home/internal/config"
	"major_home/internal/infrastructure/automation"
	"major_home/internal/infrastructure/database"
	"major_home/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the full request path and starts the server. It blocks until
// the listener fails.
func Run(cfg *config.Config, log zerolog.Logger) error {
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := registerRoutes(router, cfg, log); err != nil {
		return err
	}

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Str("env", cfg.Environment).Msg("starting http server")
	return router.Run(addr)
}

func registerRoutes(router *gin.Engine, cfg *config.Config, log zerolog.Logger) error {
	ddb, err := database.ConnectDynamoDB(context.Background(), cfg.Dynamo)
	if err != nil {
		return fmt.Errorf("connect dynamodb: %w", err)
	}

	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.Dynamo)
	leadRepo := repository.NewLeadDynamoRepository(ddb, cfg.Dynamo)
	appointmentRepo := repository.NewAppointmentDynamoRepository(ddb, cfg.Dynamo)

	notifier := automation.NewZapierNotifier(cfg.Automation, log)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, notifier, log)
	leadUseCase := usecase.NewLeadUseCase(leadRepo, notifier, log)
	appointmentUseCase := usecase.NewAppointmentUseCase(appointmentRepo, leadRepo, notifier, log)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	leadHandler := handlers.NewLeadHandler(leadUseCase)
	appointmentHandler := handlers.NewAppointmentHandler(appointmentUseCase)
	serviceHandler := handlers.NewServiceHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, quoteHandler, serviceHandler)
	addCRMRoutes(v1, leadHandler, appointmentHandler, quoteHandler)
	return nil
}

func setMiddlewares(router *gin.Engine, log zerolog.Logger) {
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error().Interface("panic", recovered).Msg("recovered from panic")
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	// The wizard and the marketing site are served from other origins.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	router.Use(cors.New(corsCfg))
}
