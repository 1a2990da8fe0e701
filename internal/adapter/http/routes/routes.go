package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "chatorder/docs" // This will be auto-generated
	"chatorder/internal/adapter/http/handlers"
	repository2 "chatorder/internal/adapter/persistence/repository"
	"chatorder/internal/infrastructure/commerce"
	"chatorder/internal/infrastructure/database"
	"chatorder/internal/infrastructure/llm"
	"chatorder/internal/usecase"
	"chatorder/internal/usecase/interfaces"

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
	cfg := loadConfig()

	commerceClient, err := commerce.NewAPIClient(os.Getenv("COMMERCE_API_BASE_URL"), os.Getenv("COMMERCE_API_KEY"))
	if err != nil {
		log.Fatalf("Commerce client not configured: %v", err)
	}

	var primary, fallback interfaces.IInferenceProvider
	gemini, err := llm.NewGeminiClient(context.Background(), os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Printf("Gemini client not configured: %v", err)
	} else {
		primary = gemini
	}
	groq, err := llm.NewGroqClient(os.Getenv("GROQ_API_KEY"), os.Getenv("GROQ_MODEL"))
	if err != nil {
		log.Printf("Groq client not configured: %v", err)
	} else {
		fallback = groq
	}

	replier := primary
	if replier == nil {
		replier = fallback
	}

	var orderLog interfaces.IOrderLogRepository
	if !isOrderLogDisabled() {
		ddb := database.ConnectDynamoDB()
		orderLog = repository2.NewOrderLogDynamoRepository(ddb)
	} else {
		log.Printf("Order log disabled; submissions will not be recorded")
	}

	catalogCache := usecase.NewCatalogCache(commerceClient, cfg.DefaultPlaceID, cfg.CatalogFreshness)
	extractor := usecase.NewOrderExtractor(primary, fallback, cfg.ExtractionTimeout)
	assembler := usecase.NewOrderAssembler()
	sessions := usecase.NewSessionStore(cfg.SessionHistoryLimit)

	conversationUseCase := usecase.NewConversationUseCase(
		catalogCache, extractor, assembler, sessions, replier, commerceClient, orderLog, cfg)

	chatHandler := handlers.NewChatHandler(conversationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addChatRoutes(v1, chatHandler)
	if orderLog != nil {
		orderLogHandler := handlers.NewOrderLogHandler(usecase.NewOrderLogUseCase(orderLog))
		addOrderRoutes(v1, orderLogHandler)
	}
}

func loadConfig() usecase.Config {
	cfg := usecase.DefaultConfig()
	if v := os.Getenv("PLACE_ID"); v != "" {
		cfg.DefaultPlaceID = v
	}
	if v := os.Getenv("CATALOG_FRESHNESS_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.CatalogFreshness = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("EXTRACTION_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.ExtractionTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("SUBMISSION_TIMEOUT_SECONDS"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.SubmissionTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv("SESSION_HISTORY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.SessionHistoryLimit = n
		}
	}
	return cfg
}

func isOrderLogDisabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ORDER_LOG_DISABLED")))
	switch v {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
