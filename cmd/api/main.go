package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/hyperlocal-backend/internal/domain/ports"
	httphandlers "github.com/rafabene/hyperlocal-backend/internal/handlers/http"
	"github.com/rafabene/hyperlocal-backend/internal/handlers/middleware"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/config"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/i18n"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/logging"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/messaging"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/realtime"
	"github.com/rafabene/hyperlocal-backend/internal/infrastructure/security"
	"github.com/rafabene/hyperlocal-backend/internal/services"
)

// @title                       Hyperlocal API
// @version                     1.0
// @description                 Gestão da rede de franquias Hyperlocal.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting hyperlocal backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService(cfg.I18n.LocalesDir, cfg.I18n.DefaultLanguage)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Segurança
	tokens, err := security.NewJWTTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)
	if err != nil {
		log.Fatal(err)
	}
	hasher := security.NewBcryptHasher(bcrypt.DefaultCost)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	franchiseRepo := postgres.NewFranchiseRepository(db)
	customerRepo := postgres.NewCustomerRepository(db)
	productRepo := postgres.NewProductRepository(db)
	saleRepo := postgres.NewSaleRepository(db)
	ticketRepo := postgres.NewTicketRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Publishers de eventos de ticket
	hub := realtime.NewHub(logger, middleware.WebSocketOriginCheck(cfg.CORS.AllowedOrigins))
	publishers := []ports.TicketPublisher{httphandlers.NewTicketFeedPublisher(hub)}
	var kafkaPublisher *messaging.KafkaTicketPublisher
	if cfg.Kafka.Enabled() {
		kafkaPublisher = messaging.NewKafkaTicketPublisher(cfg.Kafka.Brokers, cfg.Kafka.TicketTopic, logger)
		publishers = append(publishers, kafkaPublisher)
		logger.Info("kafka ticket publisher enabled",
			"brokers", cfg.Kafka.Brokers,
			"topic", cfg.Kafka.TicketTopic,
		)
	}

	// Inicializar services
	scopes := services.NewScopeResolver(franchiseRepo)
	scores := services.NewScoreAggregator(saleRepo, productRepo, franchiseRepo, services.DefaultLookupConcurrency, logger)
	authService := services.NewAuthService(userRepo, hasher, tokens, logger)

	if cfg.Seed.Enabled() {
		created, err := authService.SeedManager(context.Background(), services.SeedManagerInput{
			Name:     cfg.Seed.Name,
			Email:    cfg.Seed.Email,
			Password: cfg.Seed.Password,
		})
		if err != nil {
			logger.Error("failed to seed manager account", "error", err)
			log.Fatal(err)
		}
		if created {
			logger.Info("manager account created", "email", cfg.Seed.Email)
		}
	}

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:              cfg.Env,
		BaseURL:          cfg.Server.BaseURL,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		Logger:           logger,
		I18n:             i18nService,
		Hub:              hub,
		AuthService:      authService,
		UserService:      services.NewUserService(userRepo, franchiseRepo, hasher, uow, logger),
		FranchiseService: services.NewFranchiseService(franchiseRepo, userRepo, scopes, scores, uow, logger),
		CustomerService:  services.NewCustomerService(customerRepo, franchiseRepo, scopes, logger),
		ProductService:   services.NewProductService(productRepo, logger),
		SaleService:      services.NewSaleService(saleRepo, userRepo, customerRepo, franchiseRepo, productRepo, scopes, scores, logger),
		TicketService:    services.NewTicketService(ticketRepo, franchiseRepo, scopes, logger, publishers...),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// Conexões WebSocket não são encerradas pelo Shutdown
	hub.Close()
	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			logger.Error("failed to close kafka publisher", "error", err)
		}
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}
