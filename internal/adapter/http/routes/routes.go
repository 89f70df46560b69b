package routes

import (
	"context"
	"log"
	"os"
	"strconv"

	_ "dockmaster/docs" // This will be auto-generated
	"dockmaster/internal/adapter/http/handlers"
	repository2 "dockmaster/internal/adapter/persistence/repository"
	"dockmaster/internal/infrastructure/ai"
	"dockmaster/internal/infrastructure/database"
	"dockmaster/internal/infrastructure/payments"
	"dockmaster/internal/observability/metrics"
	"dockmaster/internal/usecase"
	"dockmaster/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// The API contract distinguishes wrong-method (405) from not-found (404).
	router.HandleMethodNotAllowed = true

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	workOrderRepo := repository2.NewWorkOrderDynamoRepository(ddb)
	paymentRepo := repository2.NewDepositPaymentDynamoRepository(ddb)
	outreachRepo := repository2.NewOutreachDynamoRepository(ddb)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var scopeGateway interfaces.IScopeGateway
	openAIGateway, err := ai.NewOpenAIGateway(os.Getenv("OPENAI_API_KEY"))
	if err != nil {
		log.Printf("OpenAI gateway not configured: %v", err)
	} else {
		scopeGateway = openAIGateway
	}

	var narrativeGateway interfaces.INarrativeGateway
	anthropicGateway, err := ai.NewAnthropicGateway(os.Getenv("ANTHROPIC_API_KEY"))
	if err != nil {
		log.Printf("Anthropic gateway not configured: %v", err)
	} else {
		narrativeGateway = anthropicGateway
	}

	reviewUseCase := usecase.NewReviewUseCase(workOrderRepo)
	workOrderUseCase := usecase.NewWorkOrderUseCase(workOrderRepo)
	scopeUseCase := usecase.NewScopeUseCase(scopeGateway, narrativeGateway)
	outreachUseCase := usecase.NewOutreachUseCase(outreachRepo)
	paymentUseCase := usecase.NewDepositPaymentUseCase(paymentRepo, workOrderRepo, paymentGateway)
	documentsUseCase := usecase.NewDocumentsUseCase(workOrderRepo, outreachRepo)

	metrics.Init(reviewUseCase)
	router.Use(metrics.GinMiddleware())

	if err := outreachUseCase.SeedIfEmpty(context.Background()); err != nil {
		log.Printf("Outreach seed skipped: %v", err)
	}

	catalogHandler := handlers.NewCatalogHandler()
	scopeHandler := handlers.NewScopeHandler(scopeUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderUseCase, documentsUseCase)
	outreachHandler := handlers.NewOutreachHandler(outreachUseCase, documentsUseCase)
	depositPaymentHandler := handlers.NewDepositPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addDockMasterRoutes(v1, catalogHandler, scopeHandler, reviewHandler, workOrderHandler, outreachHandler, depositPaymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
