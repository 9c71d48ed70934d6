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

	"github.com/yourusername/quizcraft-api/internal/config"
	"github.com/yourusername/quizcraft-api/internal/handler"
	"github.com/yourusername/quizcraft-api/internal/handler/helper"
	"github.com/yourusername/quizcraft-api/internal/middleware"
	pgRepo "github.com/yourusername/quizcraft-api/internal/repository/postgres"
	"github.com/yourusername/quizcraft-api/internal/service"
	"github.com/yourusername/quizcraft-api/pkg/auth"
	"github.com/yourusername/quizcraft-api/pkg/database"
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

	// Инициализируем репозитории
	userRepo := pgRepo.NewUserRepo(db)
	testRepo := pgRepo.NewTestRepo(db)
	questionRepo := pgRepo.NewQuestionRepo(db)
	answerRepo := pgRepo.NewAnswerRepo(db)

	// Инициализируем сервис подписи токенов доступа
	jwtService, err := auth.NewJWTService(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.ExpirationMin)
	if err != nil {
		log.Printf("Failed to initialize JWTService: %v", err)
		os.Exit(1)
	}

	// Инициализируем проверку Google ID-токенов
	googleService, err := service.NewGoogleOAuthService(cfg.Google)
	if err != nil {
		log.Printf("Failed to initialize GoogleOAuthService: %v", err)
		os.Exit(1)
	}

	// Инициализируем сервисы
	authService, err := service.NewAuthService(userRepo, googleService, jwtService)
	if err != nil {
		log.Printf("Failed to initialize AuthService: %v", err)
		os.Exit(1)
	}
	userService := service.NewUserService(userRepo)
	testService := service.NewTestService(testRepo)
	questionService := service.NewQuestionService(questionRepo)
	answerService := service.NewAnswerService(answerRepo)

	// Инициализируем обработчики
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	testHandler := handler.NewTestHandler(testService)
	questionHandler := handler.NewQuestionHandler(questionService)
	answerHandler := handler.NewAnswerHandler(answerService)
	healthHandler := handler.NewHealthHandler(db)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	// Инициализируем роутер Gin
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Паника в обработчике запроса: %v", recovered)
		helper.Error(c, http.StatusInternalServerError, helper.MsgInternal)
	}))

	// Настройка CORS: API публичный, куки не используются
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{helper.PaginationCountHeader, helper.PaginationOffsetHeader, helper.PaginationLimitHeader},
		MaxAge:        12 * time.Hour,
	}))

	// Публичные маршруты
	router.GET("/auth", authHandler.Login)
	router.GET("/health", healthHandler.Check)
	router.HEAD("/health", healthHandler.Check)

	extractID := middleware.ExtractUUIDParam("id", middleware.ContextEntityGUID)

	// Маршруты, требующие аутентификации
	userGroup := router.Group("/user")
	userGroup.Use(authMiddleware.RequireAuth())
	{
		userGroup.POST("", userHandler.CreateUser)
		userGroup.GET("", userHandler.ListUsers)
		userGroup.GET("/email/:email", userHandler.GetUserByEmail)
		userGroup.GET("/:id", extractID, userHandler.GetUser)
		userGroup.PUT("/:id", extractID, userHandler.UpdateUser)
		userGroup.PATCH("/:id", extractID, userHandler.PatchUser)
		userGroup.DELETE("/:id", extractID, userHandler.DeleteUser)
	}

	testGroup := router.Group("/test")
	testGroup.Use(authMiddleware.RequireAuth())
	{
		testGroup.POST("", testHandler.CreateTest)
		testGroup.GET("", testHandler.ListTests)
		testGroup.GET("/:id", extractID, testHandler.GetTest)
		testGroup.PUT("/:id", extractID, testHandler.UpdateTest)
		testGroup.PATCH("/:id", extractID, testHandler.PatchTest)
		testGroup.DELETE("/:id", extractID, testHandler.DeleteTest)
	}

	questionGroup := router.Group("/question")
	questionGroup.Use(authMiddleware.RequireAuth())
	{
		questionGroup.POST("", questionHandler.CreateQuestion)
		questionGroup.GET("", questionHandler.ListQuestions)
		questionGroup.GET("/:id", extractID, questionHandler.GetQuestion)
		questionGroup.PUT("/:id", extractID, questionHandler.UpdateQuestion)
		questionGroup.PATCH("/:id", extractID, questionHandler.PatchQuestion)
		questionGroup.DELETE("/:id", extractID, questionHandler.DeleteQuestion)
	}

	answerGroup := router.Group("/answer")
	answerGroup.Use(authMiddleware.RequireAuth())
	{
		answerGroup.POST("", answerHandler.CreateAnswer)
		answerGroup.GET("", answerHandler.ListAnswers)
		answerGroup.GET("/:id", extractID, answerHandler.GetAnswer)
		answerGroup.PUT("/:id", extractID, answerHandler.UpdateAnswer)
		answerGroup.PATCH("/:id", extractID, answerHandler.PatchAnswer)
		answerGroup.DELETE("/:id", extractID, answerHandler.DeleteAnswer)
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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
		os.Exit(1)
	}

	log.Println("Server exited properly")
}
