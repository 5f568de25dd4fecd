package server

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	awsclient "github.com/clubhouse/clubhouse-api/internal/client/aws"
	"github.com/clubhouse/clubhouse-api/internal/client/directdebit"
	emailclient "github.com/clubhouse/clubhouse-api/internal/client/email"
	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/handlers"
	"github.com/clubhouse/clubhouse-api/internal/helpers"
	"github.com/clubhouse/clubhouse-api/internal/logger"
	"github.com/clubhouse/clubhouse-api/internal/services"
)

var (
	subscriptionHandler *handlers.SubscriptionHandler
	mandateHandler      *handlers.MandateHandler
	tierHandler         *handlers.TierHandler
	webhookHandler      *handlers.WebhookHandler

	dbQueries      *db.Queries
	commonServices *handlers.CommonServices
)

// InitializeHandlers wires configuration, clients and services. It must run
// once before NewRouter.
func InitializeHandlers() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	logger.InitLogger(stage)
	logger.Info("Initializing handlers for stage", zap.String("stage", stage))

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	var dsn string
	if stage == helpers.StageProd || stage == helpers.StageDev {
		logger.Info("Running in deployed stage, fetching DB credentials from Secrets Manager", zap.String("stage", stage))

		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSSLMode := os.Getenv("DB_SSLMODE")
		if dbEndpoint == "" || dbName == "" {
			logger.Fatal("Missing required DB environment variables for deployed stage (DB_HOST, DB_NAME)")
		}
		if dbSSLMode == "" {
			dbSSLMode = "require"
		}

		username, err := secretsClient.GetSecretString(ctx, "DB_USERNAME_ARN", "DB_USERNAME")
		if err != nil || username == "" {
			logger.Fatal("Failed to get DB username", zap.Error(err))
		}
		password, err := secretsClient.GetSecretString(ctx, "DB_PASSWORD_ARN", "DB_PASSWORD")
		if err != nil || password == "" {
			logger.Fatal("Failed to get DB password", zap.Error(err))
		}

		dsn = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(username), url.QueryEscape(password), dbEndpoint, dbName, dbSSLMode)
	} else {
		logger.Info("Running in local stage, using DATABASE_URL from env/secrets")
		dsn, err = secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
		if err != nil || dsn == "" {
			logger.Fatal("Failed to get DATABASE_URL", zap.Error(err))
		}
	}

	ddAccessToken, err := secretsClient.GetSecretString(ctx, "DD_ACCESS_TOKEN_ARN", "DD_ACCESS_TOKEN")
	if err != nil || ddAccessToken == "" {
		logger.Fatal("Failed to get Direct Debit access token", zap.Error(err))
	}
	ddWebhookSecret, err := secretsClient.GetSecretString(ctx, "DD_WEBHOOK_SECRET_ARN", "DD_WEBHOOK_SECRET")
	if err != nil || ddWebhookSecret == "" {
		logger.Fatal("Failed to get Direct Debit webhook secret", zap.Error(err))
	}
	ddBaseURL := os.Getenv("DD_BASE_URL")
	if ddBaseURL == "" {
		ddBaseURL = "https://api.gocardless.com"
	}

	stateSecret, err := secretsClient.GetSecretString(ctx, "STATE_TOKEN_SECRET_ARN", "STATE_TOKEN_SECRET")
	if err != nil || stateSecret == "" {
		logger.Fatal("Failed to get state token secret", zap.Error(err))
	}

	encryptionKeyHex, err := secretsClient.GetSecretString(ctx, "ENCRYPTION_KEY_ARN", "ENCRYPTION_KEY")
	if err != nil || encryptionKeyHex == "" {
		logger.Fatal("Failed to get encryption key", zap.Error(err))
	}
	encryptionKey, err := hex.DecodeString(encryptionKeyHex)
	if err != nil {
		logger.Fatal("Encryption key must be hex encoded", zap.Error(err))
	}
	cipher, err := helpers.NewCipher(encryptionKey)
	if err != nil {
		logger.Fatal("Failed to initialize cipher", zap.Error(err))
	}

	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil || resendAPIKey == "" {
		logger.Log.Warn("Failed to get Resend API Key. Email notifications will be disabled.", zap.Error(err))
		resendAPIKey = ""
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30
	poolConfig.MaxConnIdleTime = time.Minute * 15

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool with config", zap.Error(err))
	}

	dbQueries = db.New(dbpool)

	ddClient, err := directdebit.NewClient(directdebit.Config{
		BaseURL:       ddBaseURL,
		AccessToken:   ddAccessToken,
		WebhookSecret: ddWebhookSecret,
	}, logger.Log)
	if err != nil {
		logger.Fatal("Failed to initialize Direct Debit client", zap.Error(err))
	}

	clock := helpers.RealClock{}

	var notifier services.Notifier = services.NoopNotifier{}
	if resendAPIKey != "" {
		fromEmail := os.Getenv("NOTIFY_FROM_EMAIL")
		if fromEmail == "" {
			fromEmail = "billing@clubhouse.app"
		}
		fromName := os.Getenv("NOTIFY_FROM_NAME")
		if fromName == "" {
			fromName = "Clubhouse Billing"
		}
		notifier = emailclient.NewResendNotifier(resendAPIKey, dbQueries, cipher, ddClient.ProviderName(), fromEmail, fromName)
	}

	prorationCalculator := services.NewProrationCalculator(logger.Log)
	eventService := services.NewSubscriptionEventService(dbQueries)
	subscriptionService := services.NewSubscriptionService(dbQueries, prorationCalculator, eventService, clock, ddClient.ProviderName())
	mandateService := services.NewMandateService(dbQueries, ddClient, cipher, clock, stateSecret)
	tierService := services.NewTierService(dbQueries)
	reconciler := services.NewPaymentReconciler(dbQueries, eventService, notifier, clock)
	webhookService := services.NewWebhookService(dbQueries, dbpool, ddClient, cipher, reconciler, subscriptionService, clock)

	var webhookQueue handlers.WebhookQueue
	if queueURL := os.Getenv("WEBHOOK_QUEUE_URL"); queueURL != "" {
		sqsClient, qerr := awsclient.NewSQSClient(ctx, queueURL)
		if qerr != nil {
			logger.Fatal("Failed to initialize SQS client", zap.Error(qerr))
		}
		webhookQueue = sqsClient
		logger.Info("Webhook deliveries will be enqueued for async processing")
	}

	commonServices = handlers.NewCommonServices(handlers.CommonServicesConfig{
		DB:                  dbQueries,
		DBPool:              dbpool,
		Logger:              logger.Log,
		SubscriptionService: subscriptionService,
		MandateService:      mandateService,
		TierService:         tierService,
		WebhookService:      webhookService,
		Reconciler:          reconciler,
		WebhookQueue:        webhookQueue,
	})

	subscriptionHandler = handlers.NewSubscriptionHandler(commonServices)
	mandateHandler = handlers.NewMandateHandler(commonServices, ddClient.ProviderName())
	tierHandler = handlers.NewTierHandler(commonServices)
	webhookHandler = handlers.NewWebhookHandler(commonServices)

	logger.Info("Handlers initialized")
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS())
	router.Use(requestLogger())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		// Provider callbacks are unauthenticated; the HMAC signature is the
		// authentication.
		v1.POST("/webhooks/direct-debit", webhookHandler.HandleDirectDebitWebhook)
		v1.GET("/webhooks/events", webhookHandler.ListWebhookEvents)

		v1.POST("/subscriptions", subscriptionHandler.CreateSubscription)
		v1.GET("/subscriptions/:subscription_id", subscriptionHandler.GetSubscription)
		v1.POST("/subscriptions/:subscription_id/activate", subscriptionHandler.ActivateSubscription)
		v1.POST("/subscriptions/:subscription_id/pause", subscriptionHandler.PauseSubscription)
		v1.POST("/subscriptions/:subscription_id/resume", subscriptionHandler.ResumeSubscription)
		v1.POST("/subscriptions/:subscription_id/cancel", subscriptionHandler.CancelSubscription)
		v1.PUT("/subscriptions/:subscription_id/tier", subscriptionHandler.ChangeTier)
		v1.GET("/subscriptions/:subscription_id/events", subscriptionHandler.ListSubscriptionEvents)
		v1.GET("/clubs/:club_id/subscriptions", subscriptionHandler.ListClubSubscriptions)
		v1.GET("/members/:child_user_id/subscriptions", subscriptionHandler.ListMemberSubscriptions)

		v1.POST("/mandates/setup", mandateHandler.SetupMandate)
		v1.POST("/mandates/complete", mandateHandler.CompleteMandate)
		v1.DELETE("/mandates/:mandate_id", mandateHandler.CancelMandate)
		v1.GET("/users/:user_id/mandates", mandateHandler.ListMandates)

		v1.POST("/tiers", tierHandler.CreateTier)
		v1.GET("/tiers/:tier_id", tierHandler.GetTier)
		v1.PUT("/tiers/:tier_id", tierHandler.UpdateTier)
		v1.DELETE("/tiers/:tier_id", tierHandler.DeactivateTier)
		v1.GET("/clubs/:club_id/tiers", tierHandler.ListClubTiers)
	}

	return router
}

// requestLogger logs one line per request with latency and status.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)))
	}
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", "Webhook-Signature"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
