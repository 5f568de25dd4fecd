package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	awsclient "github.com/clubhouse/clubhouse-api/internal/client/aws"
	"github.com/clubhouse/clubhouse-api/internal/client/directdebit"
	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/helpers"
	"github.com/clubhouse/clubhouse-api/internal/logger"
	"github.com/clubhouse/clubhouse-api/internal/services"
)

// Application holds all dependencies for the webhook processor Lambda handler
type Application struct {
	webhookService *services.WebhookService
}

// HandleSQSEvent runs the webhook pipeline for each queued delivery. A failed
// record stops the batch and is returned to the queue for redelivery; the
// (provider, event_id) dedupe makes redelivery safe.
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) error {
	logger.Info("Webhook processor handling SQS event",
		zap.Int("record_count", len(event.Records)))

	for _, record := range event.Records {
		if err := app.processRecord(ctx, record); err != nil {
			logger.Error("Failed to process webhook record",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			return fmt.Errorf("failed to process message %s: %w", record.MessageId, err)
		}
	}

	logger.Info("Successfully processed all webhook records",
		zap.Int("count", len(event.Records)))
	return nil
}

func (app *Application) processRecord(ctx context.Context, record events.SQSMessage) error {
	var signature string
	if attr, exists := record.MessageAttributes[awsclient.SignatureAttribute]; exists && attr.StringValue != nil {
		signature = *attr.StringValue
	}

	result, err := app.webhookService.ProcessWebhook(ctx, []byte(record.Body), signature)
	if err != nil {
		return err
	}

	logger.Info("Processed queued webhook delivery",
		zap.String("message_id", record.MessageId),
		zap.Int("received", result.Received),
		zap.Int("processed", result.Processed),
		zap.Int("skipped", result.Skipped),
		zap.Int("failed", result.Failed))

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d events failed", result.Failed, result.Received)
	}
	return nil
}

func main() {
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
		log.Fatalf("Invalid STAGE environment variable: '%s'", stage)
	}

	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing webhook processor", zap.String("stage", stage))
	defer func() {
		_ = logger.Sync()
	}()

	ctx := context.Background()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	var dsn string
	if stage == helpers.StageProd || stage == helpers.StageDev {
		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSSLMode := os.Getenv("DB_SSLMODE")
		if dbEndpoint == "" || dbName == "" {
			logger.Fatal("Missing required DB environment variables (DB_HOST, DB_NAME)")
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

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 5
	poolConfig.MaxConnLifetime = time.Minute * 30

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	dbQueries := db.New(dbpool)

	ddClient, err := directdebit.NewClient(directdebit.Config{
		BaseURL:       ddBaseURL,
		AccessToken:   ddAccessToken,
		WebhookSecret: ddWebhookSecret,
	}, logger.Log)
	if err != nil {
		logger.Fatal("Failed to initialize Direct Debit client", zap.Error(err))
	}

	clock := helpers.RealClock{}
	prorationCalculator := services.NewProrationCalculator(logger.Log)
	eventService := services.NewSubscriptionEventService(dbQueries)
	subscriptionService := services.NewSubscriptionService(dbQueries, prorationCalculator, eventService, clock, ddClient.ProviderName())
	reconciler := services.NewPaymentReconciler(dbQueries, eventService, nil, clock)
	webhookService := services.NewWebhookService(dbQueries, dbpool, ddClient, cipher, reconciler, subscriptionService, clock)

	app := &Application{webhookService: webhookService}

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(app.HandleSQSEvent)
	} else {
		logger.Fatal("webhook-processor must run inside AWS Lambda; set AWS_LAMBDA_FUNCTION_NAME")
	}
}
