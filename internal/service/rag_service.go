package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"omniassist/internal/domain"
	"omniassist/internal/enrich"
	"omniassist/internal/loader"
	"omniassist/internal/prompts"
	"omniassist/internal/strategy"
)

// RAGServiceImpl wires the ingestion and query pipelines. All collaborators
// are injected, so tests can substitute the embedder, vector store and
// language model. It holds no mutable state between queries.
type RAGServiceImpl struct {
	loaders   []domain.Loader
	splitter  domain.Splitter
	embedder  domain.Embedder
	store     domain.VectorStore
	generator domain.Generator
	topK      int
	logger    *log.Logger
}

func NewRAGService(
	loaders []domain.Loader,
	splitter domain.Splitter,
	embedder domain.Embedder,
	store domain.VectorStore,
	generator domain.Generator,
	topK int,
	logger *log.Logger,
) *RAGServiceImpl {
	if topK <= 0 {
		topK = 4
	}
	if logger == nil {
		logger = log.Default()
	}
	return &RAGServiceImpl{
		loaders:   loaders,
		splitter:  splitter,
		embedder:  embedder,
		store:     store,
		generator: generator,
		topK:      topK,
		logger:    logger,
	}
}

// IngestCorpus loads every supported file under dir, chunks it with the
// policy selected for its filename, enriches and embeds the chunks, and
// upserts them into the vector store. Per-file load failures are logged and
// counted without aborting the run; embedding and store failures are fatal.
func (s *RAGServiceImpl) IngestCorpus(ctx context.Context, dir string) (domain.IngestReport, error) {
	var report domain.IngestReport
	entries, err := os.ReadDir(dir)
	if err != nil {
		return report, fmt.Errorf("read corpus dir: %w", err)
	}

	var allChunks []domain.Chunk
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		l, ok := loader.For(s.loaders, path)
		if !ok {
			report.FilesSkipped++
			continue
		}
		pages, err := l.Load(path)
		if err != nil {
			s.logger.Error("failed to load file", "file", e.Name(), "error", err)
			report.FilesFailed++
			continue
		}
		if len(pages) == 0 {
			s.logger.Warn("no extractable text, skipping", "file", e.Name())
			report.FilesSkipped++
			continue
		}
		category, policy := strategy.Select(e.Name())
		var fileChunks []domain.Chunk
		for _, page := range pages {
			for _, text := range s.splitter.Split(page.Text, policy) {
				ch := domain.Chunk{Text: text}
				enrich.Apply(&ch, page)
				fileChunks = append(fileChunks, ch)
			}
		}
		s.logger.Info("processed file", "file", e.Name(), "strategy", category, "chunks", len(fileChunks))
		allChunks = append(allChunks, fileChunks...)
		report.FilesProcessed++
	}

	if len(allChunks) == 0 {
		s.logger.Warn("no chunks to ingest")
		return report, nil
	}
	s.logger.Info("embedding chunks", "total", len(allChunks))

	vectors := make([][]float64, len(allChunks))
	for i := range allChunks {
		vec, err := s.embedder.Embed(ctx, allChunks[i].Text)
		if err != nil {
			return report, fmt.Errorf("embed chunk: %w", err)
		}
		vectors[i] = vec
	}
	if err := s.store.Init(ctx, len(vectors[0])); err != nil {
		return report, fmt.Errorf("init vector store: %w", err)
	}
	if err := s.store.Upsert(ctx, allChunks, vectors); err != nil {
		return report, fmt.Errorf("upsert chunks: %w", err)
	}
	report.Chunks = len(allChunks)
	return report, nil
}

// Answer retrieves the chunks most similar to the query, fills the prompt
// template for the requested role, and returns the model's answer verbatim.
// Zero retrieved chunks is not an error: the model answers from general
// knowledge per the prompt's own instructions.
func (s *RAGServiceImpl) Answer(ctx context.Context, query, role string) (string, error) {
	tpl := prompts.ForRole(role)

	vec, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return "", fmt.Errorf("embed query: %w", err)
	}
	results, err := s.store.Search(ctx, vec, s.topK)
	if err != nil {
		return "", fmt.Errorf("search vector store: %w", err)
	}
	texts := make([]string, 0, len(results))
	for _, r := range results {
		texts = append(texts, r.Chunk.Text)
	}
	system, user := tpl.Fill(strings.Join(texts, "\n\n"), query)

	answer, err := s.generator.Generate(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	return answer, nil
}
