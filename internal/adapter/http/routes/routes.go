package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	_ "certificados_xpto/docs" // This will be auto-generated
	"certificados_xpto/internal/adapter/gateway"
	"certificados_xpto/internal/adapter/http/handlers"
	repository2 "certificados_xpto/internal/adapter/persistence/repository"
	"certificados_xpto/internal/infrastructure/click2pay"
	"certificados_xpto/internal/usecase"
	"certificados_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	upstream := click2pay.NewFromEnv()
	store := buildStatusStore()

	paymentUseCase := usecase.NewPaymentUseCase(
		upstream,
		gateway.NewPixGateway(upstream),
		gateway.NewBoletoGateway(upstream),
		gateway.NewCardGateway(upstream),
	)
	statusUseCase := usecase.NewStatusUseCase(store, upstream)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	statusHandler := handlers.NewStatusHandler(statusUseCase)
	catalogHandler := handlers.NewCatalogHandler()

	// Rotas publicas
	api := router.Group("/api")
	addPingRoutes(api)
	addPaymentRoutes(api, paymentHandler, statusHandler, catalogHandler)
}

// buildStatusStore selects the durable DynamoDB store when configured and
// falls back to the single shared in-memory map otherwise. The fallback is a
// dev/test affordance; statuses do not survive a restart.
func buildStatusStore() interfaces.IStatusStore {
	use := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_STATUS_STORE")))
	if use == "dynamodb" {
		log.Printf("[status][store] using dynamodb table=%s", os.Getenv("PAYMENTS_TABLE"))
		return repository2.NewStatusDynamoRepository(repository2.ConnectDynamoDB())
	}

	log.Printf("[status][store] no durable binding configured, using in-memory store")
	return repository2.NewStatusMemoryRepository()
}

func setMiddlewares() {
	router.HandleMethodNotAllowed = true
	router.NoMethod(methodNotAllowed())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(corsMiddleware())
}

// methodNotAllowed answers a known path hit with the wrong verb: 405 plus an
// Allow header listing the verbs the path actually serves.
func methodNotAllowed() gin.HandlerFunc {
	return func(c *gin.Context) {
		var allowed []string
		for _, route := range router.Routes() {
			if route.Path == c.Request.URL.Path {
				allowed = append(allowed, route.Method)
			}
		}
		if len(allowed) > 0 {
			c.Header("Allow", strings.Join(allowed, ", "))
		}
		c.AbortWithStatus(http.StatusMethodNotAllowed)
	}
}

// corsMiddleware mirrors the permissive headers the storefront relies on and
// answers preflight requests directly.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
