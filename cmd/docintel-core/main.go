package main

// @title           DocIntel Core API
// @version         1.0
// @description     Document intelligence API. Upload contracts and reports, then ask questions or run fixed analytical templates over them with cited answers.

// @contact.name   DocIntel OSS
// @contact.url    https://github.com/docintel-labs/docintel-core/issues

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Google OAuth token. Format: "Bearer {token}"

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/docintel-labs/docintel-core/internal/adapters/driven/ai"
	googleauth "github.com/docintel-labs/docintel-core/internal/adapters/driven/auth"
	"github.com/docintel-labs/docintel-core/internal/adapters/driven/memory"
	"github.com/docintel-labs/docintel-core/internal/adapters/driven/postgres"
	"github.com/docintel-labs/docintel-core/internal/adapters/driven/qdrant"
	redisadapter "github.com/docintel-labs/docintel-core/internal/adapters/driven/redis"
	httpserver "github.com/docintel-labs/docintel-core/internal/adapters/driving/http"
	"github.com/docintel-labs/docintel-core/internal/chunker"
	"github.com/docintel-labs/docintel-core/internal/config"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driven"
	"github.com/docintel-labs/docintel-core/internal/core/services"
	"github.com/docintel-labs/docintel-core/internal/extract"
	"github.com/docintel-labs/docintel-core/internal/runtime"

	_ "github.com/docintel-labs/docintel-core/docs"
)

var version = "dev"

func main() {
	cfg := config.Load()
	if cfg.Version != "" {
		version = cfg.Version
	}

	log.Printf("docintel-core %s starting (%s)", version, cfg.Environment)

	ctx := context.Background()

	// ===== PostgreSQL document registry (optional) =====
	var db *postgres.DB
	var registry driven.DocumentRegistry
	if cfg.DatabaseURL != "" {
		log.Println("Connecting to PostgreSQL...")
		var err error
		db, err = postgres.Connect(ctx, postgres.DefaultConfig(cfg.DatabaseURL))
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.InitSchema(ctx); err != nil {
			log.Fatalf("Failed to initialize schema: %v", err)
		}
		registry = postgres.NewDocumentRegistry(db)
		log.Println("PostgreSQL connected and schema initialized")
	} else {
		log.Println("No DATABASE_URL set, document listing disabled")
	}

	// ===== Redis answer cache (optional) =====
	var redisClient *redis.Client
	var cache driven.AnswerCache
	if cfg.RedisURL != "" {
		log.Println("Connecting to Redis...")
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to parse Redis URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		cache = redisadapter.NewAnswerCache(redisClient, redisadapter.DefaultAnswerTTL)
		log.Println("Redis connected, answer cache enabled")
	}

	// ===== AI services =====
	factory := ai.NewFactory()
	runtimeServices := runtime.NewServices()
	defer runtimeServices.Close()

	embedder, err := factory.CreateEmbedder(cfg.EmbeddingProvider, embeddingKey(cfg), cfg.EmbeddingModel, "")
	if err != nil {
		log.Fatalf("Failed to create embedder: %v", err)
	}
	if embedder != nil {
		runtimeServices.SetEmbedder(embedder)
		log.Printf("Embedding provider: %s (%s, %d dims)", cfg.EmbeddingProvider, embedder.Model(), embedder.Dimensions())
	} else {
		log.Println("No embedding provider configured, ingestion and search disabled")
	}

	var generators []driven.Generator
	if cfg.GroqAPIKey != "" {
		groq, err := factory.CreateGenerator(ai.ProviderGroq, cfg.GroqAPIKey, cfg.GroqModel)
		if err != nil {
			log.Fatalf("Failed to create Groq generator: %v", err)
		}
		generators = append(generators, groq)
	}
	if cfg.GeminiAPIKey != "" {
		gemini, err := factory.CreateGenerator(ai.ProviderGemini, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to create Gemini generator: %v", err)
		}
		generators = append(generators, gemini)
	}
	if len(generators) > 0 {
		generator, err := ai.NewFallbackGenerator(generators...)
		if err != nil {
			log.Fatalf("Failed to create generator chain: %v", err)
		}
		runtimeServices.SetGenerator(generator)
		log.Printf("Generation enabled with %d provider(s), primary %s", len(generators), generator.Model())
	} else {
		log.Println("No generation provider configured, answers disabled")
	}

	// ===== Vector store =====
	var store driven.VectorStore
	switch cfg.VectorDBType {
	case "memory":
		store = memory.NewStore()
		log.Println("Using in-memory vector store")
	case "qdrant":
		qdrantStore := qdrant.NewStore(qdrant.Config{
			URL:        cfg.QdrantURL,
			APIKey:     cfg.QdrantAPIKey,
			Collection: cfg.QdrantCollection,
		})
		if embedder != nil {
			if err := qdrantStore.EnsureCollection(ctx, embedder.Dimensions()); err != nil {
				log.Fatalf("Failed to ensure Qdrant collection: %v", err)
			}
		}
		store = qdrantStore
		log.Printf("Using Qdrant vector store at %s", cfg.QdrantURL)
	default:
		log.Fatalf("Unknown VECTOR_DB_TYPE: %s (use: qdrant or memory)", cfg.VectorDBType)
	}

	// ===== Core services =====
	verifier := googleauth.NewGoogleVerifier(cfg.GoogleClientID)
	authService := services.NewAuthService(verifier)
	ingestService := services.NewIngestService(
		extract.DefaultRegistry(),
		chunker.New(cfg.ChunkSize, cfg.ChunkOverlap),
		store,
		registry,
		runtimeServices,
	)
	queryService := services.NewQueryService(store, cache, runtimeServices, cfg.TopKResults, cfg.TopKComplex)
	decisionService := services.NewDecisionService(store, runtimeServices, cfg.TopKComplex)
	documentService := services.NewDocumentService(store, registry)

	// ===== HTTP server =====
	serverCfg := httpserver.Config{
		Host:              cfg.Host,
		Port:              cfg.Port,
		Version:           version,
		AllowedOrigins:    cfg.AllowedOrigins(),
		AllowedExtensions: cfg.AllowedExtensions,
		MaxFileSize:       cfg.MaxFileSize,
	}

	var dbPinger, cachePinger httpserver.Pinger
	if db != nil {
		dbPinger = db
	}
	if redisClient != nil {
		cachePinger = redisPinger{client: redisClient}
	}

	server := httpserver.NewServer(
		serverCfg,
		authService,
		ingestService,
		queryService,
		decisionService,
		documentService,
		dbPinger,
		cachePinger,
	)

	log.Printf("API server starting on :%d", cfg.Port)
	if err := server.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// embeddingKey picks the API key matching the configured embedding provider
func embeddingKey(cfg *config.Config) string {
	if cfg.EmbeddingProvider == ai.ProviderOpenAI {
		return cfg.OpenAIAPIKey
	}
	return ""
}

// redisPinger adapts the Redis client to the server's health check interface
type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
