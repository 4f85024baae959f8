package main

import (
	"fmt"
	"net/http"
	"os"

	_ "fleetadmin/api/swagger" // swagger docs
	"fleetadmin/internal/config"
	"fleetadmin/internal/database"
	"fleetadmin/internal/handler"
	"fleetadmin/internal/logger"
	"fleetadmin/internal/middleware"
	"fleetadmin/internal/repository"
	"fleetadmin/internal/service"
	"fleetadmin/internal/tax"
	"fleetadmin/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Fleet Admin Tax API
// @version         1.0
// @description     Tax settings and tax calculation for ride and delivery charges.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Server.Mode != "release")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.NewConnection(cfg, log)
	if err != nil {
		log.Fatalw("database connection failed", "error", err)
	}
	log.Infow("connected to PostgreSQL", "host", cfg.Postgres.Host, "db", cfg.Postgres.DBName)

	auth := middleware.NewAuth(cfg.Auth.JWTSecret)

	wsHub := websocket.NewHub(log, middleware.RoleAdmin, middleware.RoleManager, middleware.RoleStaff)
	go wsHub.Run()

	// Repository -> RuleSource -> Engine -> Service -> Handler
	taxRuleRepo := repository.NewTaxRuleRepository(db)
	ruleSource := repository.NewCachedRuleSource(repository.NewTaxRuleSource(taxRuleRepo), cfg.Cache.RuleTTL)
	engine := tax.NewEngine(ruleSource, tax.WithBatchConcurrency(cfg.Engine.BatchConcurrency))

	params := service.ServiceParams{
		Logger:      log,
		TaxRuleRepo: taxRuleRepo,
		ChargeRepo:  repository.NewChargeRepository(db),
		AuditRepo:   repository.NewAuditRepository(db),
		TxManager:   repository.NewTransactionManager(db),
		Engine:      engine,
		RuleCache:   ruleSource,
		Events:      wsHub,
	}

	taxHandler := handler.NewTaxHandler(service.NewTaxService(params), auth, log)
	chargeHandler := handler.NewChargeHandler(service.NewChargeService(params), auth, log)
	auditHandler := handler.NewAuditHandler(service.NewAuditService(params), auth, log)

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, auth, c)
	})

	api := router.Group("")
	taxHandler.RegisterRoutes(api)
	chargeHandler.RegisterRoutes(api)
	auditHandler.RegisterRoutes(api)

	log.Infow("server listening", "port", cfg.Server.Port, "mode", cfg.Server.Mode)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalw("server failed", "error", err)
	}
}
