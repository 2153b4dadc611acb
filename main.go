package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"cablepathapi/bootstrap"
	"cablepathapi/config"
	"cablepathapi/controllers"
	_ "cablepathapi/docs"
	"cablepathapi/pkg/logger"
	"cablepathapi/services"
	"cablepathapi/services/job"
	"cablepathapi/utils"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           cablepathapi
// @version         1.0
// @description     Cable Path API

// @BasePath  /api

func main() {
	// 1) Load config
	if err := config.LoadConfig(); err != nil {
		log.Fatalf("LoadConfig error: %v", err)
	}

	// 2) Connect DB (GORM)
	if err := config.ConnectDB(); err != nil {
		log.Fatalf("ConnectDB error: %v", err)
	}
	if config.DB == nil {
		log.Fatal("Database is nil after ConnectDB")
	}

	if err := bootstrap.LoadData(); err != nil {
		log.Fatalf("Load data error: %v", err)
	}

	controllers.SetDeviceService(services.NewDeviceService())
	controllers.SetCircuitService(services.NewCircuitService())
	controllers.SetTerminationService(services.NewTerminationService())
	controllers.SetCableService(services.NewCableService())
	controllers.SetPortMappingService(services.NewPortMappingService())
	controllers.SetTraceService(services.NewTraceService())

	// 3) Init structured logger with config
	logLevel := logger.ParseLogLevel(config.Cfg.LogLevel)
	logger.InitWithConfig(
		config.Cfg.LogFile,
		logLevel,
		config.Cfg.LogMaxSize,
		config.Cfg.LogMaxBackups,
		config.Cfg.LogMaxAge,
		config.Cfg.LogCompress,
	)
	logger.Infof("Starting Cable Path API with log level: %s", config.Cfg.LogLevel)

	// 4) Setup Gin
	router := gin.Default()
	router.Use(utils.LoggerMiddleware())

	v1 := router.Group("/api")
	{
		queries := v1.Group("/queries")
		{
			controllers.RegisterDeviceRoutes(queries)
			controllers.RegisterCircuitRoutes(queries)
			controllers.RegisterTerminationRoutes(queries)
			controllers.RegisterCableRoutes(queries)
			controllers.RegisterPortMappingRoutes(queries)
			controllers.RegisterTraceRoutes(queries)
		}

		// Bulk trace job routes
		controllers.RegisterTraceJobRoutes(v1)
	}

	// 5) Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 6) Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Infof("Received shutdown signal, stopping bulk trace service...")

		bulkTrace := job.GetBulkTraceService()
		bulkTrace.Stop()

		logger.Infof("Application shutdown complete")
		os.Exit(0)
	}()

	// 7) Run
	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	logger.Infof("Starting server at port %s", port)
	router.Run("0.0.0.0:" + port)
}
