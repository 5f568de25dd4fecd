package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/clubhouse/clubhouse-api/internal/db"
	"github.com/clubhouse/clubhouse-api/internal/helpers"
	"github.com/clubhouse/clubhouse-api/internal/logger"
	"github.com/clubhouse/clubhouse-api/internal/services"
	"github.com/clubhouse/clubhouse-api/internal/types/api/responses"
)

// WebhookQueue decouples webhook receipt from processing. When configured,
// the receive endpoint enqueues the raw delivery instead of processing inline.
type WebhookQueue interface {
	SendWebhookMessage(ctx context.Context, body []byte, signature string) (string, error)
}

// CommonServices holds common dependencies used across handlers
type CommonServices struct {
	db     db.Querier
	dbPool *pgxpool.Pool
	logger *zap.Logger

	SubscriptionService *services.SubscriptionService
	MandateService      *services.MandateService
	TierService         *services.TierService
	WebhookService      *services.WebhookService
	Reconciler          *services.PaymentReconciler
	WebhookQueue        WebhookQueue
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	DB     db.Querier
	DBPool *pgxpool.Pool
	Logger *zap.Logger

	SubscriptionService *services.SubscriptionService
	MandateService      *services.MandateService
	TierService         *services.TierService
	WebhookService      *services.WebhookService
	Reconciler          *services.PaymentReconciler
	WebhookQueue        WebhookQueue
}

func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}
	return &CommonServices{
		db:                  config.DB,
		dbPool:              config.DBPool,
		logger:              config.Logger,
		SubscriptionService: config.SubscriptionService,
		MandateService:      config.MandateService,
		TierService:         config.TierService,
		WebhookService:      config.WebhookService,
		Reconciler:          config.Reconciler,
		WebhookQueue:        config.WebhookQueue,
	}
}

// GetLogger returns the logger
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// GetDB returns the query interface
func (s *CommonServices) GetDB() db.Querier {
	return s.db
}

// WithTransaction runs fn inside one database transaction.
func (s *CommonServices) WithTransaction(ctx context.Context, fn helpers.TransactionFunc) error {
	return helpers.WithTransaction(ctx, s.dbPool, fn)
}

// HandleError is a helper method to handle errors consistently
func (s *CommonServices) HandleError(c *gin.Context, err error, message string, statusCode int, logger *zap.Logger) {
	if err != nil {
		logger.Error(message,
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method))
	}

	c.JSON(statusCode, responses.ErrorResponse{
		Error: message,
	})
}

// HandleServiceError maps the service error taxonomy onto HTTP status codes.
func (s *CommonServices) HandleServiceError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, pgx.ErrNoRows):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		status = http.StatusConflict
	case services.IsInvalidTransition(err):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, helpers.ErrInvalidToken), errors.Is(err, helpers.ErrTokenSignature), errors.Is(err, helpers.ErrTokenExpired):
		status = http.StatusBadRequest
	}
	s.HandleError(c, err, message, status, s.logger)
}

// parsePathUUID reads a uuid path parameter, replying 400 on failure.
func (s *CommonServices) parsePathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		s.HandleError(c, err, "Invalid "+name+" format", http.StatusBadRequest, s.logger)
		return uuid.Nil, false
	}
	return id, true
}

// parsePagination reads limit/offset query parameters with bounds.
func parsePagination(c *gin.Context) (limit, offset int32) {
	limit = 50
	offset = 0
	if v, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil && v > 0 && v <= 200 {
		limit = int32(v)
	}
	if v, err := strconv.Atoi(c.DefaultQuery("offset", "0")); err == nil && v >= 0 {
		offset = int32(v)
	}
	return limit, offset
}
