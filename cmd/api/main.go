package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appconfig "conesites/cmd/internal/config"
	"conesites/cmd/internal/domain/fixtures"
	"conesites/cmd/internal/domain/sqlite"
	"conesites/cmd/internal/domain/sqlite/repository"
	"conesites/cmd/internal/domain/store"
	"conesites/cmd/internal/http/handler"
	"conesites/cmd/internal/infrastructure/aws/storage"
	"conesites/cmd/internal/infrastructure/aws/websocket"
	"conesites/cmd/internal/infrastructure/gemini"
	"conesites/cmd/internal/infrastructure/minhareceita"
	"conesites/cmd/internal/service"
	"conesites/cmd/internal/service/jobs"
	"conesites/cmd/internal/utils/uid"
	"conesites/cmd/internal/utils/validators"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
)

const envVarsPrefix = "/conesites/prod/"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	validate := validator.New()
	validators.Register(validate)

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv(ctx) // AWS SSM Parameter Store
	} else if err := godotenv.Load(); err != nil {
		log.Warnf("no .env file loaded: %v", err)
	}

	cfg, err := appconfig.Load()
	if err != nil {
		log.Fatalf("unable to read configuration, %v", err)
	}

	// Init SQLite (CNPJ cache and websocket connections)
	db, err := sqlite.Init(cfg.CacheDBPath)
	if err != nil {
		panic(err)
	}

	seed, err := fixtures.Load(cfg.FixturesPath)
	if err != nil {
		panic(err)
	}
	st := store.New(seed)

	ids, err := uid.NewGenerator(cfg.SnowflakeNode)
	if err != nil {
		panic(err)
	}

	// Optional collaborators stay nil interfaces when not configured
	var generator service.TextGenerator
	if cfg.AIEnabled() {
		g, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			panic(err)
		}
		generator = g
	} else {
		log.Warn("GEMINI_API_KEY not set, AI features will answer with fallbacks")
	}

	var s3Client storage.S3Client
	if cfg.ExportEnabled() {
		s3Client, err = storage.NewStorageClient(ctx, cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			panic(err)
		}
	}

	var gateway websocket.GatewayClient
	if cfg.LiveEventsEnabled() {
		gw, err := websocket.NewAWSGatewayClient(ctx, cfg.WSGatewayEndpoint, cfg.WSGatewayRegion)
		if err != nil {
			panic(err)
		}
		gateway = gw
	}

	// Getting repos
	companyRepo := repository.NewCompanyRepository(db)
	connRepo := repository.NewConnectionRepository(db)

	// Getting services
	wsService := service.NewWebSocketService(connRepo, gateway)
	clientService := service.NewClientService(st, ids, wsService, validate)
	projectService := service.NewProjectService(st, ids, wsService, validate)
	collaboratorService := service.NewCollaboratorService(st, ids, wsService, validate)
	siteService := service.NewSiteService(st, wsService, validate)
	candidateService := service.NewCandidateService(st, ids, wsService, validate)
	dashboardService := service.NewDashboardService(st)
	reportService := service.NewReportService(st, s3Client)
	assistantService := service.NewAssistantService(st, generator, validate)
	utilService := service.NewUtilService(minhareceita.NewClient(), companyRepo)

	// Getting handlers
	clientRoutes := handler.NewClientDefault(clientService)
	projectRoutes := handler.NewProjectDefault(projectService)
	collaboratorRoutes := handler.NewCollaboratorDefault(collaboratorService)
	siteRoutes := handler.NewSiteDefault(siteService)
	candidateRoutes := handler.NewCandidateDefault(candidateService)
	dashboardRoutes := handler.NewDashboardDefault(dashboardService)
	reportRoutes := handler.NewReportDefault(reportService)
	assistantRoutes := handler.NewAssistantDefault(assistantService)
	utilRoutes := handler.NewUtilRoute(utilService)
	wsRoutes := handler.NewWSDefault(wsService)

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("2M"))

	// Sites
	e.GET("/api/sites", siteRoutes.GetSites)
	e.GET("/api/sites/:id", siteRoutes.GetSite)
	e.POST("/api/sites", siteRoutes.CreateSite)

	// Candidates
	e.GET("/api/candidates", candidateRoutes.GetCandidates)
	e.GET("/api/candidates/:id", candidateRoutes.GetCandidate)
	e.POST("/api/candidates", candidateRoutes.CreateCandidate)

	// Registry
	e.GET("/api/clients", clientRoutes.GetClients)
	e.GET("/api/clients/:id", clientRoutes.GetClient)
	e.POST("/api/clients", clientRoutes.CreateClient)
	e.GET("/api/projects", projectRoutes.GetProjects)
	e.GET("/api/projects/:id", projectRoutes.GetProject)
	e.POST("/api/projects", projectRoutes.CreateProject)
	e.GET("/api/collaborators", collaboratorRoutes.GetCollaborators)
	e.GET("/api/collaborators/:id", collaboratorRoutes.GetCollaborator)
	e.POST("/api/collaborators", collaboratorRoutes.CreateCollaborator)

	// Dashboard and reports
	e.GET("/api/dashboard", dashboardRoutes.GetDashboard)
	e.GET("/api/reports/:kind", reportRoutes.GetReport)
	e.POST("/api/reports/:kind/export", reportRoutes.ExportReport)

	// AI
	e.POST("/api/sites/:id/ai/clause", assistantRoutes.GenerateClause)
	e.POST("/api/sites/:id/ai/risks", assistantRoutes.AnalyzeRisks)
	e.POST("/api/assistant/chat", assistantRoutes.Chat)

	// Utils
	e.GET("/api/utils/cnpj/:cnpj", utilRoutes.GetCompany)

	// API Gateway websocket integration
	e.POST("/api/ws/connect", wsRoutes.HandleConnect)
	e.POST("/api/ws/heartbeat", wsRoutes.HandleHeartbeat)
	e.POST("/api/ws/disconnect", wsRoutes.HandleDisconnect)

	// Docker Compose healthcheck
	e.GET("/health", healthCheckRoute)

	go jobs.NewConnectionCleaner(wsService).Start(ctx)
	go jobs.NewCompanyCacheCleaner(companyRepo).Start(ctx)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped, %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Errorf("failed to shut down server: %v", err)
	}
}

func loadProdEnv(ctx context.Context) {
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("us-east-2"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	paginator := ssm.NewGetParametersByPathPaginator(client, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})

	prefixLength := len(envVarsPrefix)
	loaded := 0
	for paginator.HasMorePages() {
		out, err := paginator.NextPage(ctx)
		if err != nil {
			log.Fatalf("unable to load prod environment, %v", err)
		}

		// Export vars
		for _, param := range out.Parameters {
			key := (*param.Name)[prefixLength:]
			if err := os.Setenv(key, *param.Value); err != nil {
				log.Fatalf("unable to set environment variable, %v", err)
			}
			loaded++
		}
	}
	log.Infof("loaded %d prod environment variables", loaded)
}

func healthCheckRoute(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}
