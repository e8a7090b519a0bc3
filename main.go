// File: edspire/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"edspire/config"
	"edspire/cron"
	"edspire/database"
	availabilityRepoPkg "edspire/database/repository/availability"
	sessionRepoPkg "edspire/database/repository/session"
	tutorRepoPkg "edspire/database/repository/tutor"
	userRepoPkg "edspire/database/repository/user"
	"edspire/handlers"
	"edspire/middleware"
	"edspire/routes"
	"edspire/services/assistant"
	availabilitySvc "edspire/services/availability"
	"edspire/services/notification"
	sessionSvc "edspire/services/session"
	tutorSvc "edspire/services/tutor"
	userSvc "edspire/services/user"
	walletSvc "edspire/services/wallet"
	"edspire/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	mongoClient, err := database.Connect(config.AppConfig.DatabaseURL)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to mongo: %v", err)
	}

	utils.InitCache()
	utils.InitAuthCache()
	utils.InitAIContextCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	slotRepo := availabilityRepoPkg.NewMongoSlotRepo(mongoClient, database.DatabaseName)
	userRepo := userRepoPkg.NewMongoUserRepo(mongoClient, database.DatabaseName)
	tutorRepo := tutorRepoPkg.NewMongoTutorRepo(mongoClient, database.DatabaseName)
	sessRepo := sessionRepoPkg.NewMongoSessionRepo(mongoClient, database.DatabaseName)

	indexCtx, cancelIndexes := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelIndexes()
	for name, ensure := range map[string]func(context.Context) error{
		"availability": slotRepo.EnsureIndexes,
		"tutors":       tutorRepo.EnsureIndexes,
		"sessions":     sessRepo.EnsureIndexes,
	} {
		if err := ensure(indexCtx); err != nil {
			logger.Sugar().Warnf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	availabilityService := &availabilitySvc.DefaultAvailabilityService{
		Repo: slotRepo,
	}

	userService := &userSvc.DefaultUserService{
		Repo:      userRepo,
		AuthCache: utils.GetAuthCacheClient(),
	}

	tutorService := &tutorSvc.DefaultTutorService{
		Repo:         tutorRepo,
		Availability: availabilityService,
		Storage:      cloudinaryStorageService,
	}

	walletService := &walletSvc.DefaultWalletService{
		Repo:  userRepo,
		Chain: walletSvc.NewRPCBalanceFetcher(config.AppConfig.RPCURL),
	}

	reminderClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})
	defer reminderClient.Close()

	sessionService := &sessionSvc.DefaultSessionService{
		Sessions:  sessRepo,
		Slots:     slotRepo,
		Reminders: reminderClient,
	}

	ctxStore := assistant.NewRedisContextStore(utils.GetAIContextCacheClient(), 30*time.Minute)
	assistantService := assistant.NewDefaultAssistantService(config.AppConfig.GeminiAPIKey, ctxStore)

	notificationService := &notification.DefaultNotificationService{
		User: userService,
	}
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Availability: handlers.NewAvailabilityHandler(availabilityService),
		Tutor:        handlers.NewTutorHandler(tutorService),
		User:         handlers.NewUserHandler(userService),
		Wallet:       handlers.NewWalletHandler(walletService, utils.GetCacheClient(), config.AppConfig.StripeWebhookSecret),
		Session:      handlers.NewSessionHandler(sessionService),
		Assistant:    handlers.NewAssistantHandler(assistantService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(map[string]*redis.Client{
		"cache":     utils.CacheClient,
		"auth":      utils.AuthCacheClient,
		"aiContext": utils.AIContextCacheClient,
	}, mongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}
	database.Disconnect(mongoClient)

	logger.Sugar().Info("main: server stopped gracefully")
}
