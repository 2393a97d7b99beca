package server

import (
	"context"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/0xgeorgemathew/splithub-sub001/internal/chain"
	"github.com/0xgeorgemathew/splithub-sub001/internal/config"
	"github.com/0xgeorgemathew/splithub-sub001/internal/db"
	"github.com/0xgeorgemathew/splithub-sub001/internal/handlers"
	"github.com/0xgeorgemathew/splithub-sub001/internal/logger"
	"github.com/0xgeorgemathew/splithub-sub001/internal/middleware"
	"github.com/0xgeorgemathew/splithub-sub001/internal/services"
)

// Handler definitions
var (
	relayHandler          *handlers.RelayHandler
	paymentRequestHandler *handlers.PaymentRequestHandler
	circleHandler         *handlers.CircleHandler
	expenseHandler        *handlers.ExpenseHandler
	userHandler           *handlers.UserHandler
	healthHandler         *handlers.HealthHandler

	chainClient *chain.Client
	dbPool      *pgxpool.Pool
)

// InitializeHandlers loads configuration, connects the database and the
// chain, and wires every service behind the HTTP handlers.
func InitializeHandlers() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	dbPool, err = pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	dbQueries := db.New(dbPool)

	chainClient, err = chain.Dial(context.Background(), cfg.RPCURL, cfg.ChainID, logger.Log)
	if err != nil {
		logger.Fatal("Unable to connect to network RPC", zap.Error(err))
	}

	relayer, err := chain.NewRelayer(chainClient, cfg.RelayerPrivateKey, cfg.ReceiptTimeout, logger.Log)
	if err != nil {
		logger.Fatal("Unable to load relayer wallet", zap.Error(err))
	}

	payments := common.HexToAddress(cfg.PaymentsContract)
	credits := common.HexToAddress(cfg.CreditsContract)
	registry := common.HexToAddress(cfg.RegistryContract)
	multicall := common.HexToAddress(cfg.MulticallContract)

	nonceOracle := chain.NewNonceOracle(chainClient, payments)
	chipResolver := chain.NewRegistryResolver(chainClient, registry)

	notificationService := services.NewNotificationService(
		cfg.ResendAPIKey, cfg.FromEmail, cfg.FromName, cfg.BaseURL, logger.Log)
	paymentRequestService := services.NewPaymentRequestService(dbQueries, notificationService, logger.Log)
	circleService := services.NewCircleService(dbPool, dbQueries, paymentRequestService, logger.Log)
	relayService := services.NewRelayService(
		relayer, nonceOracle, chipResolver, circleService, paymentRequestService,
		services.RelayConfig{
			ChainID:   cfg.ChainID,
			Payments:  payments,
			Credits:   credits,
			Registry:  registry,
			Multicall: multicall,
		},
		logger.Log,
	)

	relayHandler = handlers.NewRelayHandler(relayService)
	paymentRequestHandler = handlers.NewPaymentRequestHandler(paymentRequestService, cfg.BaseURL)
	circleHandler = handlers.NewCircleHandler(circleService)
	expenseHandler = handlers.NewExpenseHandler(circleService)
	userHandler = handlers.NewUserHandler(dbQueries)
	healthHandler = handlers.NewHealthHandler(relayer.Address().Hex())
}

// InitializeRoutes attaches middleware and the API routes to the router.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())

	router.GET("/health", healthHandler.Health)

	v1 := router.Group("/api/v1")
	{
		relay := v1.Group("/relay")
		{
			relay.POST("/payment", relayHandler.RelayPayment)
			relay.POST("/batch-payment", relayHandler.RelayBatchPayment)
			relay.POST("/credit-purchase", relayHandler.RelayCreditPurchase)
			relay.POST("/credit-spend", relayHandler.RelayCreditSpend)
			relay.POST("/register-chip", relayHandler.RegisterChip)
			relay.GET("/resolve-chip/:chip", relayHandler.ResolveChip)
			relay.GET("/nonce/:wallet", relayHandler.GetNonce)
			relay.GET("/status", relayHandler.GetStatus)
		}

		requests := v1.Group("/payment-requests")
		{
			requests.POST("", paymentRequestHandler.CreatePaymentRequest)
			requests.GET("", paymentRequestHandler.ListPaymentRequests)
			requests.GET("/:id", paymentRequestHandler.GetPaymentRequest)
			requests.GET("/:id/qr", paymentRequestHandler.GetPaymentRequestQR)
			requests.POST("/:id/complete", paymentRequestHandler.CompletePaymentRequest)
		}

		v1.GET("/expenses/:id", expenseHandler.GetExpense)

		circles := v1.Group("/circles")
		{
			circles.POST("", circleHandler.CreateCircle)
			circles.GET("/active/:wallet", circleHandler.GetActiveCircle)
			circles.POST("/:id/deactivate", circleHandler.DeactivateCircle)
			circles.GET("/:id/members", circleHandler.ListMembers)
			circles.POST("/:id/members", circleHandler.AddMember)
			circles.DELETE("/:id/members/:wallet", circleHandler.RemoveMember)
		}

		users := v1.Group("/users")
		{
			users.POST("", userHandler.UpsertUser)
			users.GET("/:wallet", userHandler.GetUser)
		}
	}
}

// Shutdown releases the database pool and the RPC connection.
func Shutdown() {
	if dbPool != nil {
		dbPool.Close()
	}
	if chainClient != nil {
		chainClient.Close()
	}
	logger.Info("Server shut down")
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

	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
