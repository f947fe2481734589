package domain

import "context"

// SourcePage is one page of raw text extracted from a corpus file.
type SourcePage struct {
	Text       string
	Page       int
	SourceFile string
}

// Metadata carries provenance and advisory topic tags for a chunk.
type Metadata struct {
	SourceFile string `json:"source_file"`
	Page       int    `json:"page"`
	Topic      string `json:"topic,omitempty"`
}

// Chunk is a bounded span of document text stored and retrieved as one unit.
type Chunk struct {
	Text     string
	Metadata Metadata
}

// ChunkPolicy controls how a document is split into chunks. Separators are
// tried in order; a piece still longer than TargetSize after the last
// separator is hard-cut. Overlap must be smaller than TargetSize.
type ChunkPolicy struct {
	TargetSize int
	Overlap    int
	Separators []string
}

// SearchResult is a retrieved chunk with its similarity score.
type SearchResult struct {
	Chunk Chunk
	Score float64
}

// IngestReport summarizes one ingestion run over a corpus directory.
// Per-file failures do not abort the run; they are counted here.
type IngestReport struct {
	FilesProcessed int
	FilesSkipped   int
	FilesFailed    int
	Chunks         int
}

// Loader extracts pages of text from a single corpus file.
type Loader interface {
	Supports(path string) bool
	Load(path string) ([]SourcePage, error)
}

// Splitter cuts page text into chunk texts according to a policy.
type Splitter interface {
	Split(text string, policy ChunkPolicy) []string
}

// Embedder converts free text into a fixed-dimension vector representation.
// The same embedder must be used at ingestion and query time, or the vectors
// are not comparable.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// VectorStore persists embedded chunks and supports similarity search over
// a single named collection.
type VectorStore interface {
	Init(ctx context.Context, dimension int) error
	Upsert(ctx context.Context, chunks []Chunk, vectors [][]float64) error
	Search(ctx context.Context, vector []float64, topK int) ([]SearchResult, error)
	Clear(ctx context.Context) error
}

// Generator produces answer text from a filled system prompt and user input.
type Generator interface {
	Generate(ctx context.Context, system, user string) (string, error)
}

// RAGService defines the operations exposed by the application core.
type RAGService interface {
	IngestCorpus(ctx context.Context, dir string) (IngestReport, error)
	Answer(ctx context.Context, query, role string) (string, error)
}
