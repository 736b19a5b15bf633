package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/studypulse/backend/config"
	"github.com/studypulse/backend/database"
	_ "github.com/studypulse/backend/docs" // Swagger docs - auto-generated
	"github.com/studypulse/backend/internal/clock"
	"github.com/studypulse/backend/internal/controller"
	"github.com/studypulse/backend/internal/logger"
	"github.com/studypulse/backend/internal/model"
	"github.com/studypulse/backend/internal/repository"
	"github.com/studypulse/backend/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title StudyPulse Progress API
// @version 1.0
// @description Student progress reconciliation service: consumes study-session submission batches and keeps solved/attempted records, points, and the activity calendar consistent.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			clock.NewSystem,      // Provides clock.Clock (UTC)
			NewGinEngine,         // Provides *gin.Engine
		),

		// Repositories Layer
		fx.Provide(
			repository.NewSolvedRecordRepository,
			repository.NewAttemptedRecordRepository,
			repository.NewProgressIndexRepository,
			repository.NewMonthlyProgressRepository,
			repository.NewQuestionRepository,
			repository.NewStudentRepository,
			repository.NewSubmissionReceiptRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewScoringService,
			service.NewReconcileService,
			service.NewProgressQueryService,
		),

		// API Controllers Layer
		fx.Provide(
			controller.NewProgressController,
		),

		// Invokers - Functions that are executed by Fx
		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	// Route gin's request log through zerolog.
	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Be more specific in production
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Student-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	progressCtrl *controller.ProgressController,
) {
	api := router.Group("/api/v1")
	progress := api.Group("/progress", controller.StudentAuth())
	{
		progress.POST("/submissions", progressCtrl.SubmitProgress)
		progress.GET("/summary", progressCtrl.GetSummary)
		progress.GET("/solved", progressCtrl.GetSolved)
		progress.GET("/attempted", progressCtrl.GetAttempted)
		progress.GET("/calendar", progressCtrl.GetCalendar)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("StudyPulse progress server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Question{},
		&model.Student{},
		&model.SolvedRecord{},
		&model.AttemptedRecord{},
		&model.MonthlyProgress{},
		&model.StudentProgressIndex{},
		&model.SubmissionReceipt{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
