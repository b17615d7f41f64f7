package routes

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "webquote/docs"
	"webquote/internal/adapter/http/handlers"
	"webquote/internal/adapter/persistence/memory"
	"webquote/internal/adapter/persistence/repository"
	"webquote/internal/domain/catalog"
	"webquote/internal/domain/entities"
	"webquote/internal/infrastructure/catalogfile"
	"webquote/internal/infrastructure/config"
	"webquote/internal/infrastructure/database"
	"webquote/internal/infrastructure/metrics"
	"webquote/internal/infrastructure/payments"
	"webquote/internal/usecase"
	"webquote/internal/usecase/interfaces"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Catalog  *handlers.CatalogHandler
	Session  *handlers.SessionHandler
	Quote    *handlers.QuoteHandler
	Payment  *handlers.DepositPaymentHandler
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer
}

// Run wires the service from cfg and serves it until the listener fails.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	h, err := buildHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}

	router := NewRouter(h, logger)
	addr := ":" + strconv.Itoa(cfg.Port)
	logger.Info("http server starting", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the application: %w", err)
	}
	return nil
}

// NewRouter mounts the v1 API, swagger and /metrics on a fresh engine.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(requestLogger(logger.Named("http")))
	router.Use(recovery(logger))
	router.Use(h.Metrics.Middleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if h.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)
	addSessionRoutes(v1, h.Session)
	addQuoteRoutes(v1, h.Quote, h.Payment)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config, logger *zap.Logger) (Handlers, error) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)

	cat, err := loadCatalog(cfg, logger)
	if err != nil {
		return Handlers{}, err
	}

	sessionRepo, err := memory.NewSessionLRURepository(cfg.SessionCapacity)
	if err != nil {
		return Handlers{}, err
	}

	ddb, err := database.ConnectDynamoDB(ctx, logger)
	if err != nil {
		return Handlers{}, err
	}
	quoteRepo := repository.NewQuoteDynamoRepository(ddb, cfg.QuotesTable)
	paymentRepo := repository.NewDepositPaymentDynamoRepository(ddb, cfg.PaymentsTable)

	var gateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MPAccessToken, cfg.PaymentMock, logger)
	if err != nil {
		logger.Warn("mercado pago gateway not configured", zap.Error(err))
	} else {
		gateway = mpGateway
	}

	sessionUseCase := usecase.NewSessionUseCase(sessionRepo, cat, m, logger)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, sessionRepo, m, logger)
	paymentUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, quoteRepo, gateway, usecase.DepositPaymentOptions{
		MockMode:        cfg.PaymentMock,
		AccessToken:     cfg.MPAccessToken,
		TestPayerEmail:  cfg.MPTestPayerEmail,
		TestPayerUserID: cfg.MPTestPayerUserID,
	}, m, logger)

	return Handlers{
		Catalog:  handlers.NewCatalogHandler(cat),
		Session:  handlers.NewSessionHandler(sessionUseCase),
		Quote:    handlers.NewQuoteHandler(quoteUseCase, sessionUseCase),
		Payment:  handlers.NewDepositPaymentHandler(paymentUseCase, cfg.PaymentMock, logger),
		Metrics:  m,
		Gatherer: registry,
	}, nil
}

func loadCatalog(cfg config.Config, logger *zap.Logger) (entities.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Default(), nil
	}
	cat, err := catalogfile.Load(cfg.CatalogPath, logger)
	if err != nil {
		return entities.Catalog{}, fmt.Errorf("load catalog %s: %w", cfg.CatalogPath, err)
	}
	logger.Info("catalog loaded", zap.String("path", cfg.CatalogPath))
	return cat, nil
}
