package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillmatrix/internal/config"
	"skillmatrix/internal/controller"
	"skillmatrix/internal/repository"
	"skillmatrix/internal/service"
	"skillmatrix/pkg/configwatcher"
	"skillmatrix/pkg/database"
	"skillmatrix/pkg/logger"
	"skillmatrix/pkg/monitoring"
	"skillmatrix/pkg/security"
	"skillmatrix/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user           *repository.UserRepository
	team           *repository.TeamRepository
	project        *repository.ProjectRepository
	component      *repository.ComponentRepository
	question       *repository.QuestionRepository
	assessment     *repository.AssessmentRepository
	invite         *repository.InviteRepository
	attempt        *repository.AttemptRepository
	developerLevel *repository.DeveloperLevelRepository
}

type services struct {
	selector   *service.QuestionSelector
	assessment *service.AssessmentService
	grading    *service.GradingService
	catalog    *service.CatalogService
	user       *service.UserService
}

type controllers struct {
	assessment *controller.AssessmentController
	grade      *controller.GradeController
	catalog    *controller.CatalogController
	user       *controller.UserController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig runs all registered reload callbacks with a fresh config.
func (a *App) ApplyConfig(cfg *config.Config) {
	a.Config = cfg
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:           repository.NewUserRepository(db),
		team:           repository.NewTeamRepository(db),
		project:        repository.NewProjectRepository(db),
		component:      repository.NewComponentRepository(db),
		question:       repository.NewQuestionRepository(db),
		assessment:     repository.NewAssessmentRepository(db),
		invite:         repository.NewInviteRepository(db),
		attempt:        repository.NewAttemptRepository(db),
		developerLevel: repository.NewDeveloperLevelRepository(db),
	}
}

func (a *App) initServices(repos *repositories, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.selector = service.NewQuestionSelector(repos.question)
	s.assessment = service.NewAssessmentService(
		repos.user,
		repos.assessment,
		repos.invite,
		repos.attempt,
		repos.question,
		s.selector,
		db,
	)
	s.grading = service.NewGradingService(
		repos.attempt,
		repos.assessment,
		repos.user,
		repos.component,
		repos.question,
		s.assessment,
		db,
	)
	s.catalog = service.NewCatalogService(
		repos.team,
		repos.project,
		repos.component,
		repos.question,
		repos.assessment,
		rdb,
	)
	s.user = service.NewUserService(
		repos.user,
		repos.developerLevel,
		repos.attempt,
		repos.invite,
		repos.assessment,
		repos.component,
	)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		assessment: controller.NewAssessmentController(s.assessment),
		grade:      controller.NewGradeController(s.grading),
		catalog:    controller.NewCatalogController(s.catalog),
		user:       controller.NewUserController(s.user),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	var rdb *redis.Client
	rdb, err = database.InitRedis(&cfg.Redis)
	if err != nil {
		// The catalog cache degrades to direct reads without Redis.
		logger.Log.Warn("Redis unavailable, running without cache", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, db, rdb)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("skillmatrix", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Config reloaded")
		app.ApplyConfig(newCfg)
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
