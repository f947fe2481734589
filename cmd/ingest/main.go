package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"omniassist/internal/chunker"
	"omniassist/internal/config"
	"omniassist/internal/domain"
	"omniassist/internal/embedding/openai"
	"omniassist/internal/loader"
	"omniassist/internal/service"
	"omniassist/internal/vectorstore/memory"
	"omniassist/internal/vectorstore/qdrant"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	var reset bool
	flag.StringVar(&cfgPath, "config", "config.yaml", "Path to YAML config file")
	flag.BoolVar(&reset, "reset", false, "Drop the vector collection before ingesting (re-ingesting without this duplicates entries)")
	flag.Parse()

	logger := log.New(os.Stderr)
	ctx := context.Background()

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

	st := buildStore(cfg, logger)
	if reset {
		if err := st.Clear(ctx); err != nil {
			logger.Fatal("failed to clear collection", "error", err)
		}
		logger.Info("cleared vector collection")
	}

	// Generator is not needed on the ingestion path.
	svc := service.NewRAGService(loader.Default(), chunker.NewRecursiveSplitter(), emb, st, nil, cfg.Retrieval.TopK, logger)

	report, err := svc.IngestCorpus(ctx, cfg.Corpus.Dir)
	if err != nil {
		logger.Fatal("ingestion failed", "error", err)
	}
	logger.Info("ingestion complete",
		"files", report.FilesProcessed,
		"failed", report.FilesFailed,
		"skipped", report.FilesSkipped,
		"chunks", report.Chunks,
	)
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
