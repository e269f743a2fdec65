package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yourusername/musicquiz-api/internal/config"
	"github.com/yourusername/musicquiz-api/internal/data"
	"github.com/yourusername/musicquiz-api/internal/handler"
	"github.com/yourusername/musicquiz-api/internal/middleware"
	pgRepo "github.com/yourusername/musicquiz-api/internal/repository/postgres"
	redisRepo "github.com/yourusername/musicquiz-api/internal/repository/redis"
	"github.com/yourusername/musicquiz-api/internal/service"
	"github.com/yourusername/musicquiz-api/internal/service/selection"
	"github.com/yourusername/musicquiz-api/pkg/database"
)

func main() {
	// Загружаем конфигурацию
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	log.Printf("Загрузка конфигурации из %s", configPath)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к PostgreSQL
	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	// Применяем миграции
	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Инициализируем подключение к Redis
	redisClient, err := database.NewUniversalRedisClient(cfg.Redis)
	if err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	log.Println("Successfully connected to Redis")

	// Инициализируем репозитории
	questionSource := pgRepo.NewQuestionSourceRepo(db)
	leaderboardRepo := pgRepo.NewLeaderboardRepo(db)

	kvRepo, err := redisRepo.NewKVRepo(redisClient)
	if err != nil {
		log.Printf("Failed to initialize KVRepo: %v", err)
		os.Exit(1)
	}

	// Конфигурация подсистемы выбора вопросов
	selectionConfig := selection.DefaultConfig()
	if ttl := cfg.Quiz.CacheTTL(); ttl > 0 {
		selectionConfig.CacheTTL = ttl
	}
	if cfg.Quiz.DefaultBatchSize > 0 {
		selectionConfig.DefaultBatchSize = cfg.Quiz.DefaultBatchSize
	}

	selector := selection.NewSelector(&selection.Dependencies{
		Source: questionSource,
		KV:     kvRepo,
		Static: data.NewSet(),
		Config: selectionConfig,
	})

	// Контекст жизненного цикла фоновых горутин
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Прогрев кеша всех комбинаций категория x тип x вид контента.
	// Оптимизация старта: ошибки не фатальны, комбинации обходятся последовательно.
	if cfg.Quiz.PrefetchEnabled {
		go selector.WarmCaches(ctx)
	}

	// Инициализируем сервисы и обработчики
	leaderboardService := service.NewLeaderboardService(leaderboardRepo)

	questionHandler := handler.NewQuestionHandler(selector)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)

	// Инициализируем роутер Gin
	router := gin.Default()

	isProduction := gin.Mode() == gin.ReleaseMode
	if isProduction {
		// Production: не доверять прокси-заголовкам
		if err := router.SetTrustedProxies(nil); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	} else {
		// Development: доверяем localhost
		if err := router.SetTrustedProxies([]string{"127.0.0.1", "::1"}); err != nil {
			log.Printf("Warning: failed to set trusted proxies: %v", err)
		}
	}

	// Настройка CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8081", "http://localhost:19006"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Настраиваем маршруты API
	api := router.Group("/api")
	{
		// Батчи вопросов для игровой сессии
		api.GET("/questions", questionHandler.GetQuestions)

		// Регистрация устройства
		api.POST("/devices", leaderboardHandler.RegisterDevice)

		// Лидерборд
		api.GET("/leaderboard", leaderboardHandler.GetOverallLeaderboard)
		api.POST("/leaderboard/score", leaderboardHandler.SubmitScore)

		category := api.Group("/leaderboard/:category")
		category.Use(middleware.ExtractCategoryParam("category", "category"))
		{
			category.GET("", leaderboardHandler.GetCategoryLeaderboard)
		}
	}

	// Настраиваем HTTP сервер с тайм-аутами для защиты от slow client attacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Failed to start server: %v", err)
		}
	}()

	// Ожидаем сигнал остановки
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Отправляем сигнал завершения для всех горутин
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
