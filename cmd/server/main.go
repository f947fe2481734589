package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"omniassist/internal/chunker"
	"omniassist/internal/config"
	"omniassist/internal/domain"
	"omniassist/internal/embedding/openai"
	"omniassist/internal/llm/groq"
	"omniassist/internal/loader"
	"omniassist/internal/server"
	"omniassist/internal/service"
	"omniassist/internal/vectorstore/memory"
	"omniassist/internal/vectorstore/qdrant"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file")
	flag.Parse()

	logger := log.New(os.Stderr)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	emb, err := openai.NewClient(openai.Config{
		BaseURL:   cfg.Embedder.BaseURL,
		APIKeyEnv: cfg.Embedder.APIKeyEnv,
		Model:     cfg.Embedder.Model,
		Timeout:   time.Duration(cfg.Embedder.TimeoutSecs) * time.Second,
	})
	if err != nil {
		logger.Fatal("embedder init failed", "error", err)
	}

	gen, err := groq.NewClient(groq.Config{
		BaseURL:   cfg.LLM.BaseURL,
		APIKeyEnv: cfg.LLM.APIKeyEnv,
		Model:     cfg.LLM.Model,
		Timeout:   time.Duration(cfg.LLM.TimeoutSecs) * time.Second,
	})
	if err != nil {
		logger.Fatal("llm client init failed", "error", err)
	}

	st := buildStore(cfg, logger)
	svc := service.NewRAGService(loader.Default(), chunker.NewRecursiveSplitter(), emb, st, gen, cfg.Retrieval.TopK, logger)

	srv := server.New(svc, cfg.Server, logger)
	if err := srv.Run(); err != nil {
		logger.Fatal("server exited", "error", err)
	}
}

func buildStore(cfg *config.AppConfig, logger *log.Logger) domain.VectorStore {
	switch cfg.VectorStore.Type {
	case "memory":
		return memory.NewStorage()
	case "qdrant", "":
		return qdrant.NewStorage(qdrant.Config{
			URL:        cfg.VectorStore.Qdrant.URL,
			APIKey:     cfg.VectorStore.Qdrant.APIKey,
			Collection: cfg.VectorStore.Qdrant.Collection,
			Timeout:    time.Duration(cfg.VectorStore.Qdrant.TimeoutSecs) * time.Second,
		})
	default:
		logger.Fatal("unknown vector store", "type", cfg.VectorStore.Type)
		return nil
	}
}
